// Package render turns decoded color frames into minimized draw instructions
// for a rendering backend (terminal, canvas, anything that can place colored
// text at a pixel position).
package render

import (
	"fmt"

	"flick/cframe"
)

// Config carries the sizing inputs for one batch pass.
type Config struct {
	FontSize float64
	Sizing   FontSizing
}

// NewConfig returns a config with default sizing ratios.
func NewConfig(fontSize float64) Config {
	return Config{FontSize: fontSize, Sizing: DefaultSizing()}
}

// CharWidth returns the glyph advance for this config.
func (c Config) CharWidth() float64 {
	return c.Sizing.CharWidth(c.FontSize)
}

// LineHeight returns the line advance for this config.
func (c Config) LineHeight() float64 {
	return c.Sizing.LineHeight(c.FontSize)
}

// RGB is one draw color.
type RGB struct {
	R, G, B byte
}

// Batch is a maximal horizontal run of same-colored visible characters,
// emitted as a single draw instruction.
type Batch struct {
	Text  string
	X     float64
	Y     float64
	Color RGB
}

// ColorString formats the batch color as a CSS-style "rgb(r,g,b)" string.
func (b Batch) ColorString() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", b.Color.R, b.Color.G, b.Color.B)
}

// Result is the full draw list for one frame plus the canvas pixel size.
type Result struct {
	Width   float64
	Height  float64
	Batches []Batch
}

// BatchFrame converts a decoded frame into draw batches. Per row, cells that
// are spaces or darker than the threshold on every channel are skipped;
// consecutive visible cells sharing the exact same color merge into one
// batch. Batches never span rows.
func BatchFrame(d *cframe.Data, config Config) Result {
	charWidth := config.CharWidth()
	lineHeight := config.LineHeight()
	width := int(d.Width)
	height := int(d.Height)

	var batches []Batch
	for row := 0; row < height; row++ {
		for col := 0; col < width; {
			if d.ShouldSkip(row, col) {
				col++
				continue
			}
			idx := row*width + col
			color := RGB{d.RGB[idx*3], d.RGB[idx*3+1], d.RGB[idx*3+2]}

			startCol := col
			text := []byte{d.Chars[idx]}
			col++
			for col < width && !d.ShouldSkip(row, col) {
				next := row*width + col
				if d.RGB[next*3] != color.R || d.RGB[next*3+1] != color.G || d.RGB[next*3+2] != color.B {
					break
				}
				text = append(text, d.Chars[next])
				col++
			}

			batches = append(batches, Batch{
				Text:  string(text),
				X:     float64(startCol) * charWidth,
				Y:     float64(row) * lineHeight,
				Color: color,
			})
		}
	}

	return Result{
		Width:   float64(width) * charWidth,
		Height:  float64(height) * lineHeight,
		Batches: batches,
	}
}
