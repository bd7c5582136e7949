package conf

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"flick/render"
)

var namedColors = map[string]render.RGB{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"gray":    {R: 128, G: 128, B: 128},
	"grey":    {R: 128, G: 128, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
	"purple":  {R: 128, G: 0, B: 128},
	"pink":    {R: 255, G: 192, B: 203},
	"brown":   {R: 139, G: 69, B: 19},
}

// ParseColor turns a color string into an RGB triple. Named CSS-style colors
// and #RGB / #RRGGBB hex values are accepted; matching is case-insensitive
// and surrounding whitespace is ignored.
func ParseColor(s string) (render.RGB, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return render.RGB{}, false
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return render.RGB{}, false
		}
		r, g, b := c.RGB255()
		return render.RGB{R: r, G: g, B: b}, true
	}
	rgb, ok := namedColors[strings.ToLower(s)]
	return rgb, ok
}

// FrameColors is the foreground/background pair used to paint frames that
// have no per-cell color data.
type FrameColors struct {
	Foreground render.RGB
	Background render.RGB
}

// FrameColorsFromStrings parses both colors, falling back to white on black
// for anything invalid.
func FrameColorsFromStrings(fg, bg string) FrameColors {
	colors := FrameColors{
		Foreground: render.RGB{R: 255, G: 255, B: 255},
		Background: render.RGB{R: 0, G: 0, B: 0},
	}
	if c, ok := ParseColor(fg); ok {
		colors.Foreground = c
	}
	if c, ok := ParseColor(bg); ok {
		colors.Background = c
	}
	return colors
}
