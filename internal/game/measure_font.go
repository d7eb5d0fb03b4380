//go:build !js

package game

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontMeasurer measures text with the Go Regular sans-serif face, standing in
// for the browser's canvas measureText outside the browser.
type FontMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

func NewFontMeasurer() (*FontMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	return &FontMeasurer{font: f, faces: make(map[int]font.Face)}, nil
}

func (m *FontMeasurer) Measure(text string, fontSize float64) float64 {
	face, err := m.face(int(math.Round(fontSize)))
	if err != nil {
		return FixedMeasurer(0.55).Measure(text, fontSize)
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64
}

func (m *FontMeasurer) face(size int) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}
