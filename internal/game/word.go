package game

import "math"

// FallingWord is one word descending the canvas.
type FallingWord struct {
	Text     string
	X, Y     float64
	Speed    float64 // px per frame at 60 fps
	FontSize float64
	Width    float64
	Height   float64
	Active   bool
}

// CenterX is the horizontal midpoint used for bucket hit testing.
func (w *FallingWord) CenterX() float64 {
	return w.X + w.Width/2
}

// Bottom is the y coordinate of the word's lower edge.
func (w *FallingWord) Bottom() float64 {
	return w.Y + w.Height
}

// advance moves the word down for dt seconds and reports whether its bottom
// edge reached the floor.
func (w *FallingWord) advance(dt, floor float64) bool {
	w.Y += w.Speed * dt * FrameRateScale
	return w.Bottom() >= floor
}

// wrap shifts the word horizontally by dx, wrapping around the canvas so that
// a word leaving one side re-enters from the other with any overshoot kept.
func (w *FallingWord) wrap(dx, canvasWidth float64) {
	total := canvasWidth + w.Width
	if total <= 0 {
		return
	}
	x := w.X + dx + w.Width
	x = math.Mod(math.Mod(x, total)+total, total)
	w.X = x - w.Width
}
