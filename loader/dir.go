package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"

	"flick/cframe"
	"flick/logs"
)

// DirProvider reads frames from a directory on the local filesystem.
// Text frames are frame_*.txt files ordered by the index extracted from the
// filename; color data sits next to them as <stem>.cframe, optionally
// zstd-compressed as <stem>.cframe.zst.
type DirProvider struct{}

var sharedZstdDecoder struct {
	once sync.Once
	dec  *zstd.Decoder
	err  error
}

func decompressZstd(data []byte) ([]byte, error) {
	sharedZstdDecoder.once.Do(func() {
		sharedZstdDecoder.dec, sharedZstdDecoder.err = zstd.NewReader(nil)
	})
	if sharedZstdDecoder.err != nil {
		return nil, sharedZstdDecoder.err
	}
	return sharedZstdDecoder.dec.DecodeAll(data, nil)
}

// List returns the frame_*.txt files in directory sorted by frame index.
func (DirProvider) List(ctx context.Context, directory string) ([]cframe.FrameFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", directory, err)
	}

	var files []cframe.FrameFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "frame_") || !strings.HasSuffix(name, ".txt") {
			continue
		}
		stem := strings.TrimSuffix(name, ".txt")
		files = append(files, cframe.FrameFile{
			Path:  filepath.Join(directory, name),
			Name:  name,
			Index: cframe.ExtractIndex(stem, uint32(len(files))),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Index < files[j].Index
	})
	return files, nil
}

// ReadText returns the text body of the frame at path.
func (DirProvider) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read frame %s: %w", path, err)
	}
	return string(data), nil
}

// ReadColorBytes returns the raw .cframe payload for the text frame at path.
// It tries <stem>.cframe first, then <stem>.cframe.zst which is decompressed
// before being returned. A frame without either file yields (nil, nil).
func (DirProvider) ReadColorBytes(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))

	plain := base + ".cframe"
	data, err := os.ReadFile(plain)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read color frame %s: %w", plain, err)
	}

	compressed := base + ".cframe.zst"
	data, err = os.ReadFile(compressed)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read color frame %s: %w", compressed, err)
	}
	out, err := decompressZstd(data)
	if err != nil {
		// Corrupt compressed color data counts as missing, same as a
		// payload that later fails frame validation.
		logs.LogV("[loader] zstd decode %s: %v", compressed, err)
		return nil, nil
	}
	return out, nil
}
