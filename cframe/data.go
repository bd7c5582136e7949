package cframe

import (
	"strconv"
	"strings"
)

// DarknessThreshold is the per-channel cutoff below which a colored cell is
// considered invisible on a black background and skipped during rendering.
const DarknessThreshold = 5

// FrameFile identifies a single frame on the storage medium.
type FrameFile struct {
	Path  string
	Name  string
	Index uint32
}

// ExtractIndex derives a frame ordering index from a filename stem.
// "frame_0001" parses the suffix after the prefix; otherwise every digit
// character in the stem is collected and parsed. When the stem carries no
// digits at all, fallback is returned.
func ExtractIndex(stem string, fallback uint32) uint32 {
	if suffix, ok := strings.CutPrefix(stem, "frame_"); ok {
		n, err := strconv.ParseUint(suffix, 10, 32)
		if err != nil {
			return 0
		}
		return uint32(n)
	}
	var digits strings.Builder
	for _, r := range stem {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.ParseUint(digits.String(), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(n)
}

// Data holds the decoded contents of a .cframe file: one ASCII character and
// one RGB triple per cell, row-major. Chars has Width*Height entries and RGB
// has three bytes per cell laid out [r g b].
type Data struct {
	Width  uint32
	Height uint32
	Chars  []byte
	RGB    []byte
}

// CharAt returns the character at (row, col), or false when out of bounds.
func (d *Data) CharAt(row, col int) (byte, bool) {
	if row < 0 || col < 0 || row >= int(d.Height) || col >= int(d.Width) {
		return 0, false
	}
	return d.Chars[row*int(d.Width)+col], true
}

// RGBAt returns the color triple at (row, col), or false when out of bounds.
func (d *Data) RGBAt(row, col int) (r, g, b byte, ok bool) {
	if row < 0 || col < 0 || row >= int(d.Height) || col >= int(d.Width) {
		return 0, 0, 0, false
	}
	idx := (row*int(d.Width) + col) * 3
	return d.RGB[idx], d.RGB[idx+1], d.RGB[idx+2], true
}

// ShouldSkip reports whether the cell at (row, col) is invisible when drawn:
// a space character, or all three channels below DarknessThreshold.
func (d *Data) ShouldSkip(row, col int) bool {
	idx := row*int(d.Width) + col
	ch := d.Chars[idx]
	r := d.RGB[idx*3]
	g := d.RGB[idx*3+1]
	b := d.RGB[idx*3+2]
	return ch == ' ' || (r < DarknessThreshold && g < DarknessThreshold && b < DarknessThreshold)
}

// PixelCount returns the number of cells in the frame.
func (d *Data) PixelCount() int {
	return int(d.Width) * int(d.Height)
}

// Frame pairs the plain text of one animation frame with its optional decoded
// color data. Color arrives later than text and the frame is upgraded in
// place, never downgraded.
type Frame struct {
	Content string
	CFrame  *Data
}

// TextOnly builds a frame that has no color data yet.
func TextOnly(content string) Frame {
	return Frame{Content: content}
}

// HasColor reports whether color data has been attached to this frame.
func (f *Frame) HasColor() bool {
	return f.CFrame != nil
}

// Dimensions derives (cols, rows) from the text content: the number of lines
// and the widest line in characters.
func (f *Frame) Dimensions() (cols, rows int) {
	for line := range strings.Lines(f.Content) {
		rows++
		n := len([]rune(strings.TrimRight(line, "\n")))
		if n > cols {
			cols = n
		}
	}
	return cols, rows
}
