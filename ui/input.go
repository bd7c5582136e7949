package ui

import (
	"bufio"
	"context"
	"os"

	"flick/logs"
)

// Key is one decoded key press from the raw terminal.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyToggle
	KeyStepForward
	KeyStepBackward
	KeyLoopMode
	KeyColorToggle
	KeySeekDigit // carries a 0-9 digit in the event
)

// KeyEvent pairs a decoded key with its digit payload for seek keys.
type KeyEvent struct {
	Key   Key
	Digit int
}

// StartKeyReader consumes raw stdin bytes and delivers decoded key events
// until the context is canceled or stdin closes. The terminal must already
// be in raw mode.
func StartKeyReader(ctx context.Context) <-chan KeyEvent {
	events := make(chan KeyEvent, 8)

	go func() {
		defer close(events)
		reader := bufio.NewReader(os.Stdin)
		for {
			b, err := reader.ReadByte()
			if err != nil {
				logs.LogV("[ui] key reader stopped: %v", err)
				return
			}
			ev, ok := decodeKey(reader, b)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}

func decodeKey(reader *bufio.Reader, b byte) (KeyEvent, bool) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl-C arrives as a raw byte in raw mode
		return KeyEvent{Key: KeyQuit}, true
	case ' ':
		return KeyEvent{Key: KeyToggle}, true
	case '.', '>':
		return KeyEvent{Key: KeyStepForward}, true
	case ',', '<':
		return KeyEvent{Key: KeyStepBackward}, true
	case 'l', 'L':
		return KeyEvent{Key: KeyLoopMode}, true
	case 'c', 'C':
		return KeyEvent{Key: KeyColorToggle}, true
	case 0x1b:
		return decodeEscape(reader)
	}
	if b >= '0' && b <= '9' {
		return KeyEvent{Key: KeySeekDigit, Digit: int(b - '0')}, true
	}
	return KeyEvent{}, false
}

// decodeEscape handles CSI arrow sequences; right steps forward, left steps
// backward. A bare escape quits.
func decodeEscape(reader *bufio.Reader) (KeyEvent, bool) {
	if reader.Buffered() == 0 {
		return KeyEvent{Key: KeyQuit}, true
	}
	next, err := reader.ReadByte()
	if err != nil || next != '[' {
		return KeyEvent{}, false
	}
	final, err := reader.ReadByte()
	if err != nil {
		return KeyEvent{}, false
	}
	switch final {
	case 'C':
		return KeyEvent{Key: KeyStepForward}, true
	case 'D':
		return KeyEvent{Key: KeyStepBackward}, true
	}
	return KeyEvent{}, false
}
