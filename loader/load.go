package loader

import (
	"context"
	"fmt"

	"flick/cframe"
	"flick/logs"
)

// Provider supplies frame data from a storage medium. Implementations may
// block; every operation takes the session context.
type Provider interface {
	// List returns the ordered frame files in a directory. An empty slice
	// with a nil error means the directory holds no frames.
	List(ctx context.Context, directory string) ([]cframe.FrameFile, error)
	// ReadText returns the plain text body of a frame.
	ReadText(ctx context.Context, path string) (string, error)
	// ReadColorBytes returns the raw .cframe bytes for a text frame path,
	// or (nil, nil) when no color file exists for it.
	ReadColorBytes(ctx context.Context, path string) ([]byte, error)
}

// LoadTextFrames runs phase 1: it fetches the file list and reads every text
// body in order. The first failure aborts the whole phase. The returned file
// list is what phase 2 iterates over.
func LoadTextFrames(ctx context.Context, p Provider, directory string) ([]cframe.Frame, []cframe.FrameFile, error) {
	files, err := p.List(ctx, directory)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no frames found in directory")
	}

	frames := make([]cframe.Frame, 0, len(files))
	for _, f := range files {
		content, err := p.ReadText(ctx, f.Path)
		if err != nil {
			return nil, nil, err
		}
		frames = append(frames, cframe.TextOnly(content))
	}
	return frames, files, nil
}

// LoadColorFrames runs phase 2 over the phase 1 file list. For each entry it
// calls yield, fetches the color bytes, decodes them, hands the result to
// onFrame and yields again, so the host loop can interleave animation ticks
// and input between frames. A missing color file or a failed decode leaves
// the frame text-only; only a provider error aborts.
func LoadColorFrames(ctx context.Context, p Provider, files []cframe.FrameFile, onFrame func(index, total int, data *cframe.Data), yield func()) error {
	if yield == nil {
		yield = func() {}
	}
	total := len(files)
	for i, f := range files {
		yield()

		raw, err := p.ReadColorBytes(ctx, f.Path)
		if err != nil {
			return err
		}
		var data *cframe.Data
		if raw != nil {
			data, err = cframe.Decode(raw)
			if err != nil {
				logs.LogV("[loader] bad color data for %s: %v", f.Name, err)
				data = nil
			}
		}
		onFrame(i, total, data)

		yield()
	}
	return nil
}
