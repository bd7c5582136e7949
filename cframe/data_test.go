package cframe

import "testing"

func TestExtractIndex(t *testing.T) {
	cases := []struct {
		stem     string
		fallback uint32
		want     uint32
	}{
		{"frame_0001", 0, 1},
		{"frame_42", 0, 42},
		{"0042", 0, 42},
		{"my_frame_3", 0, 3},
		{"no_digits", 99, 99},
		{"frame_junk", 0, 0},
	}
	for _, c := range cases {
		if got := ExtractIndex(c.stem, c.fallback); got != c.want {
			t.Errorf("ExtractIndex(%q, %d) = %d, want %d", c.stem, c.fallback, got, c.want)
		}
	}
}

func TestDataAccessors(t *testing.T) {
	d := &Data{
		Width:  2,
		Height: 2,
		Chars:  []byte{'A', 'B', 'C', 'D'},
		RGB:    []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 128, 128, 128},
	}

	if ch, ok := d.CharAt(0, 0); !ok || ch != 'A' {
		t.Errorf("CharAt(0,0) = %q, %v", ch, ok)
	}
	if ch, ok := d.CharAt(1, 1); !ok || ch != 'D' {
		t.Errorf("CharAt(1,1) = %q, %v", ch, ok)
	}
	if _, ok := d.CharAt(2, 0); ok {
		t.Error("CharAt out of bounds reported ok")
	}

	if r, g, b, ok := d.RGBAt(0, 1); !ok || r != 0 || g != 255 || b != 0 {
		t.Errorf("RGBAt(0,1) = %d,%d,%d,%v", r, g, b, ok)
	}
	if _, _, _, ok := d.RGBAt(0, 2); ok {
		t.Error("RGBAt out of bounds reported ok")
	}

	if d.PixelCount() != 4 {
		t.Errorf("PixelCount = %d", d.PixelCount())
	}
}

func TestShouldSkip(t *testing.T) {
	d := &Data{
		Width:  4,
		Height: 1,
		Chars:  []byte{'A', ' ', 'B', 'C'},
		RGB: []byte{
			255, 0, 0, // visible
			200, 200, 200, // space, skipped regardless of color
			2, 2, 2, // below darkness threshold
			0, 0, 200, // visible: one channel above threshold
		},
	}

	want := []bool{false, true, true, false}
	for col, w := range want {
		if got := d.ShouldSkip(0, col); got != w {
			t.Errorf("ShouldSkip(0,%d) = %v, want %v", col, got, w)
		}
	}
}

func TestFrameDimensions(t *testing.T) {
	f := TextOnly("ABC\nDEF\nGHI")
	if cols, rows := f.Dimensions(); cols != 3 || rows != 3 {
		t.Errorf("Dimensions = %d,%d, want 3,3", cols, rows)
	}

	f = TextOnly("ABCD\nEF")
	if cols, rows := f.Dimensions(); cols != 4 || rows != 2 {
		t.Errorf("Dimensions = %d,%d, want 4,2", cols, rows)
	}

	f = TextOnly("AB\nCD\n")
	if cols, rows := f.Dimensions(); cols != 2 || rows != 2 {
		t.Errorf("trailing newline: Dimensions = %d,%d, want 2,2", cols, rows)
	}

	f = TextOnly("")
	if cols, rows := f.Dimensions(); cols != 0 || rows != 0 {
		t.Errorf("empty: Dimensions = %d,%d, want 0,0", cols, rows)
	}
}

func TestFrameHasColor(t *testing.T) {
	f := TextOnly("X")
	if f.HasColor() {
		t.Error("text-only frame reports color")
	}
	f.CFrame = &Data{Width: 1, Height: 1, Chars: []byte{'X'}, RGB: []byte{9, 9, 9}}
	if !f.HasColor() {
		t.Error("upgraded frame reports no color")
	}
}
