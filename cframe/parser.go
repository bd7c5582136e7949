package cframe

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const headerSize = 8

// DecodeError is implemented by all structural decode failures so callers can
// distinguish them from I/O errors.
type DecodeError interface {
	error
	decodeError()
}

// ErrFileTooSmall reports a buffer shorter than the 8-byte header.
type ErrFileTooSmall struct {
	Expected int
	Actual   int
}

func (e ErrFileTooSmall) Error() string {
	return fmt.Sprintf("file too small: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

// ErrSizeMismatch reports a buffer shorter than the size implied by the header.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e ErrSizeMismatch) Error() string {
	return fmt.Sprintf("file size mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimensions reports a zero width or height in the header.
type ErrInvalidDimensions struct {
	Width  uint32
	Height uint32
}

func (e ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("invalid dimensions: %dx%d", e.Width, e.Height)
}

func (ErrFileTooSmall) decodeError()      {}
func (ErrSizeMismatch) decodeError()      {}
func (ErrInvalidDimensions) decodeError() {}

// Decode parses a .cframe binary buffer.
//
// Layout (little-endian):
//
//	offset 0..4   u32 width
//	offset 4..8   u32 height
//	offset 8..    width*height records of 4 bytes: [char r g b]
//
// Dimensions are validated before the payload size, so a zero width is
// reported as ErrInvalidDimensions even when the buffer is also short.
// Trailing bytes beyond the expected size are ignored.
func Decode(data []byte) (*Data, error) {
	width, height, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	pixelCount := int(width) * int(height)
	chars := make([]byte, 0, pixelCount)
	rgb := make([]byte, 0, pixelCount*3)
	for i := 0; i < pixelCount; i++ {
		rec := data[headerSize+i*4:]
		chars = append(chars, rec[0])
		rgb = append(rgb, rec[1], rec[2], rec[3])
	}

	return &Data{Width: width, Height: height, Chars: chars, RGB: rgb}, nil
}

// DecodeText reconstructs the plain text of a .cframe buffer, taking only the
// character byte of each record and terminating every row with a newline.
// Used when a frame exists only in binary form.
func DecodeText(data []byte) (string, error) {
	width, height, err := decodeHeader(data)
	if err != nil {
		return "", err
	}

	w, h := int(width), int(height)
	var text strings.Builder
	text.Grow(w*h + h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			text.WriteByte(data[headerSize+(row*w+col)*4])
		}
		text.WriteByte('\n')
	}
	return text.String(), nil
}

func decodeHeader(data []byte) (width, height uint32, err error) {
	if len(data) < headerSize {
		return 0, 0, ErrFileTooSmall{Expected: headerSize, Actual: len(data)}
	}
	width = binary.LittleEndian.Uint32(data[0:4])
	height = binary.LittleEndian.Uint32(data[4:8])
	if width == 0 || height == 0 {
		return 0, 0, ErrInvalidDimensions{Width: width, Height: height}
	}
	expected := headerSize + int(width)*int(height)*4
	if len(data) < expected {
		return 0, 0, ErrSizeMismatch{Expected: expected, Actual: len(data)}
	}
	return width, height, nil
}
