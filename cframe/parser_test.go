package cframe

import (
	"bytes"
	"errors"
	"testing"
)

func buildFrame(width, height uint32, records ...byte) []byte {
	buf := []byte{
		byte(width), byte(width >> 8), byte(width >> 16), byte(width >> 24),
		byte(height), byte(height >> 8), byte(height >> 16), byte(height >> 24),
	}
	return append(buf, records...)
}

func TestDecode(t *testing.T) {
	data := buildFrame(2, 1,
		'A', 255, 0, 0,
		'B', 0, 255, 0,
	)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if d.Width != 2 || d.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", d.Width, d.Height)
	}
	if !bytes.Equal(d.Chars, []byte{'A', 'B'}) {
		t.Errorf("chars = %q, want AB", d.Chars)
	}
	if !bytes.Equal(d.RGB, []byte{255, 0, 0, 0, 255, 0}) {
		t.Errorf("rgb = %v", d.RGB)
	}
}

func TestDecodeTooSmall(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		_, err := Decode(make([]byte, n))
		var tooSmall ErrFileTooSmall
		if !errors.As(err, &tooSmall) {
			t.Fatalf("Decode(%d bytes) = %v, want ErrFileTooSmall", n, err)
		}
		if tooSmall.Expected != 8 || tooSmall.Actual != n {
			t.Errorf("ErrFileTooSmall = %+v", tooSmall)
		}
	}
}

func TestDecodeInvalidDimensions(t *testing.T) {
	// Zero dimensions win over the size check even though the payload is
	// also missing.
	_, err := Decode(buildFrame(0, 4))
	var invalid ErrInvalidDimensions
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if invalid.Width != 0 || invalid.Height != 4 {
		t.Errorf("ErrInvalidDimensions = %+v", invalid)
	}
}

func TestDecodeSizeMismatch(t *testing.T) {
	// Header promises 2x2 but only one record follows.
	_, err := Decode(buildFrame(2, 2, 'A', 255, 0, 0))
	var mismatch ErrSizeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
	if mismatch.Expected != 8+2*2*4 || mismatch.Actual != 12 {
		t.Errorf("ErrSizeMismatch = %+v", mismatch)
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	data := buildFrame(1, 1, 'X', 1, 2, 3)
	padded := append(append([]byte{}, data...), 0xde, 0xad, 0xbe, 0xef)

	d, err := Decode(padded)
	if err != nil {
		t.Fatalf("Decode with trailing bytes failed: %v", err)
	}
	if !bytes.Equal(d.Chars, []byte{'X'}) || !bytes.Equal(d.RGB, []byte{1, 2, 3}) {
		t.Errorf("chars=%q rgb=%v", d.Chars, d.RGB)
	}
}

func TestDecodeIsPure(t *testing.T) {
	data := buildFrame(2, 2,
		'A', 255, 0, 0,
		'B', 0, 255, 0,
		'C', 0, 0, 255,
		'D', 128, 128, 128,
	)
	first, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Chars, second.Chars) || !bytes.Equal(first.RGB, second.RGB) {
		t.Error("repeated decode of the same buffer differs")
	}
}

func TestDecodeText(t *testing.T) {
	data := buildFrame(3, 2,
		'A', 0, 0, 0, 'B', 0, 0, 0, 'C', 0, 0, 0,
		'D', 0, 0, 0, 'E', 0, 0, 0, 'F', 0, 0, 0,
	)
	text, err := DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if text != "ABC\nDEF\n" {
		t.Errorf("text = %q, want %q", text, "ABC\nDEF\n")
	}
}

func TestDecodeTextValidation(t *testing.T) {
	if _, err := DecodeText([]byte{1, 2, 3}); err == nil {
		t.Error("short buffer accepted")
	}
	if _, err := DecodeText(buildFrame(0, 1)); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := DecodeText(buildFrame(2, 2, 'A', 0, 0, 0)); err == nil {
		t.Error("truncated payload accepted")
	}
}
