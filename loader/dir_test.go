package loader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDirProviderList(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; List sorts by extracted index.
	writeFile(t, dir, "frame_0010.txt", []byte("J"))
	writeFile(t, dir, "frame_0002.txt", []byte("B"))
	writeFile(t, dir, "frame_0001.txt", []byte("A"))
	writeFile(t, dir, "details.toml", []byte("fps = 24"))
	writeFile(t, dir, "frame_0001.cframe", []byte("not listed"))

	var p DirProvider
	files, err := p.List(context.Background(), dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	wantNames := []string{"frame_0001.txt", "frame_0002.txt", "frame_0010.txt"}
	for i, want := range wantNames {
		if files[i].Name != want {
			t.Errorf("files[%d] = %s, want %s", i, files[i].Name, want)
		}
	}
	if files[2].Index != 10 {
		t.Errorf("files[2].Index = %d, want 10", files[2].Index)
	}
}

func TestDirProviderListEmpty(t *testing.T) {
	var p DirProvider
	files, err := p.List(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDirProviderReadText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "frame_0001.txt", []byte("hello\nworld\n"))

	var p DirProvider
	text, err := p.ReadText(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if text != "hello\nworld\n" {
		t.Errorf("text = %q", text)
	}

	if _, err := p.ReadText(context.Background(), filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestDirProviderReadColorBytes(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "frame_0001.txt", []byte("X"))
	payload := []byte{1, 0, 0, 0, 1, 0, 0, 0, 'X', 9, 9, 9}
	writeFile(t, dir, "frame_0001.cframe", payload)

	var p DirProvider
	got, err := p.ReadColorBytes(context.Background(), txt)
	if err != nil {
		t.Fatalf("ReadColorBytes failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %v", got)
	}
}

func TestDirProviderReadColorBytesMissing(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "frame_0001.txt", []byte("X"))

	var p DirProvider
	got, err := p.ReadColorBytes(context.Background(), txt)
	if err != nil || got != nil {
		t.Errorf("missing color file: data=%v err=%v, want nil/nil", got, err)
	}
}

func TestDirProviderReadColorBytesZstd(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "frame_0001.txt", []byte("X"))
	payload := []byte{1, 0, 0, 0, 1, 0, 0, 0, 'X', 9, 9, 9}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "frame_0001.cframe.zst", enc.EncodeAll(payload, nil))

	var p DirProvider
	got, err := p.ReadColorBytes(context.Background(), txt)
	if err != nil {
		t.Fatalf("ReadColorBytes failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("decompressed payload = %v, want %v", got, payload)
	}
}

func TestDirProviderCorruptZstdSkips(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "frame_0001.txt", []byte("X"))
	writeFile(t, dir, "frame_0001.cframe.zst", []byte("garbage"))

	var p DirProvider
	got, err := p.ReadColorBytes(context.Background(), txt)
	if err != nil || got != nil {
		t.Errorf("corrupt zst: data=%v err=%v, want nil/nil", got, err)
	}
}
