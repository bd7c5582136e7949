package render

// FontSizing holds the ratio math used to fit a character grid into a pixel
// container. The defaults match a typical monospace face.
type FontSizing struct {
	// CharWidthRatio is the glyph advance as a fraction of the font size.
	CharWidthRatio float64
	// LineHeightRatio is the line advance as a fraction of the font size.
	LineHeightRatio float64
	MinFontSize     float64
	MaxFontSize     float64
	// Padding is subtracted from both container dimensions before fitting.
	Padding float64
}

// DefaultSizing returns the standard monospace ratios.
func DefaultSizing() FontSizing {
	return FontSizing{
		CharWidthRatio:  0.6,
		LineHeightRatio: 1.11,
		MinFontSize:     1.0,
		MaxFontSize:     50.0,
		Padding:         20.0,
	}
}

// CalculateFontSize returns the largest font size at which cols x rows
// characters fit inside the container, clamped to [MinFontSize, MaxFontSize].
func (s FontSizing) CalculateFontSize(cols, rows int, containerWidth, containerHeight float64) float64 {
	if cols == 0 || rows == 0 {
		return s.MinFontSize
	}

	availableWidth := containerWidth - s.Padding
	availableHeight := containerHeight - s.Padding
	if availableWidth <= 0 || availableHeight <= 0 {
		return s.MinFontSize
	}

	fromWidth := availableWidth / (float64(cols) * s.CharWidthRatio)
	fromHeight := availableHeight / (float64(rows) * s.LineHeightRatio)

	optimal := min(fromWidth, fromHeight)
	return min(max(optimal, s.MinFontSize), s.MaxFontSize)
}

// CharWidth returns the glyph advance in pixels at the given font size.
func (s FontSizing) CharWidth(fontSize float64) float64 {
	return fontSize * s.CharWidthRatio
}

// LineHeight returns the line advance in pixels at the given font size.
func (s FontSizing) LineHeight(fontSize float64) float64 {
	return fontSize * s.LineHeightRatio
}

// CanvasDimensions returns the pixel size of a cols x rows grid at the given
// font size.
func (s FontSizing) CanvasDimensions(cols, rows int, fontSize float64) (width, height float64) {
	return float64(cols) * s.CharWidth(fontSize), float64(rows) * s.LineHeight(fontSize)
}
