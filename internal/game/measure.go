package game

// Measurer reports the rendered width of text at a pixel font size.
type Measurer interface {
	Measure(text string, fontSize float64) float64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string, fontSize float64) float64

func (f MeasureFunc) Measure(text string, fontSize float64) float64 {
	return f(text, fontSize)
}

// FixedMeasurer treats every glyph as a fixed fraction of the font size.
type FixedMeasurer float64

func (m FixedMeasurer) Measure(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * fontSize * float64(m)
}
