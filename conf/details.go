package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Details is the project metadata stored next to the frames as details.toml.
// Every field is optional so the player stays compatible with files written
// by older and newer exporters.
type Details struct {
	Version         *string  `toml:"version"`
	Frames          *int     `toml:"frames"`
	Luminance       *uint8   `toml:"luminance"`
	FontRatio       *float32 `toml:"font_ratio"`
	Columns         *uint32  `toml:"columns"`
	FPS             *int     `toml:"fps"`
	Output          *string  `toml:"output"`
	Audio           *bool    `toml:"audio"`
	BackgroundColor *string  `toml:"background_color"`
	Color           *string  `toml:"color"`
}

// ParseDetails decodes a details.toml document.
func ParseDetails(data string) (*Details, error) {
	var d Details
	if _, err := toml.Decode(data, &d); err != nil {
		return nil, fmt.Errorf("parse details: %w", err)
	}
	return &d, nil
}

// LoadDetails reads details.toml from a frame directory. A missing file is
// not an error: the zero-value metadata is returned instead.
func LoadDetails(directory string) (*Details, error) {
	path := filepath.Join(directory, "details.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Details{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseDetails(string(data))
}

// FrameColors extracts the display colors: the color field paints text-only
// frames, background_color fills behind them. Missing or invalid values fall
// back to white on black.
func (d *Details) FrameColors() FrameColors {
	fg, bg := "white", "black"
	if d.Color != nil {
		fg = *d.Color
	}
	if d.BackgroundColor != nil {
		bg = *d.BackgroundColor
	}
	return FrameColorsFromStrings(fg, bg)
}
