package ui

import (
	"context"
	"time"

	"flick/device"
)

// TermSize represents the terminal size in character cells.
type TermSize struct {
	Cols int
	Rows int
}

const resizePollInterval = 250 * time.Millisecond

// WatchTermSize polls the terminal geometry and delivers a value whenever it
// changes. The current size is delivered immediately when known. Stale values
// are dropped so receivers always see the latest geometry.
func WatchTermSize(ctx context.Context) <-chan TermSize {
	out := make(chan TermSize, 1)

	forward := func(ts TermSize) {
		select {
		case out <- ts:
		default:
			select {
			case <-out:
			default:
			}
			select {
			case out <- ts:
			default:
			}
		}
	}

	go func() {
		defer close(out)
		var last TermSize
		if cols, rows, err := device.GetTermSize(); err == nil && cols > 0 && rows > 0 {
			last = TermSize{Cols: cols, Rows: rows}
			forward(last)
		}

		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cols, rows, err := device.GetTermSize()
				if err != nil || cols <= 0 || rows <= 0 {
					continue
				}
				ts := TermSize{Cols: cols, Rows: rows}
				if ts != last {
					last = ts
					forward(ts)
				}
			}
		}
	}()

	return out
}
