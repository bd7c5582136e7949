// Package loader orchestrates the two-phase progressive load of an animation:
// text bodies first, so playback can start immediately, then color data as a
// best-effort background enhancement.
package loader

import (
	"fmt"
	"sync"

	"flick/cframe"
)

// Phase is the loader's position in a loading session.
type Phase int

const (
	// Idle means no session is active. Failed sessions return here.
	Idle Phase = iota
	LoadingText
	LoadingColors
	Complete
)

func (p Phase) String() string {
	switch p {
	case LoadingText:
		return "loading text"
	case LoadingColors:
		return "loading colors"
	case Complete:
		return "complete"
	default:
		return "idle"
	}
}

// Progress tracks per-phase counters for one loading session.
type Progress struct {
	TextLoaded  int
	TextTotal   int
	ColorLoaded int
	ColorTotal  int
}

// Reset rearms the counters for a session of the given size.
func (p *Progress) Reset(total int) {
	p.TextLoaded = 0
	p.TextTotal = total
	p.ColorLoaded = 0
	p.ColorTotal = total
}

// TextPercent returns the text phase completion, truncated to an integer.
func (p Progress) TextPercent() int {
	if p.TextTotal == 0 {
		return 0
	}
	return p.TextLoaded * 100 / p.TextTotal
}

// ColorPercent returns the color phase completion, truncated to an integer.
func (p Progress) ColorPercent() int {
	if p.ColorTotal == 0 {
		return 0
	}
	return p.ColorLoaded * 100 / p.ColorTotal
}

func (p Progress) TextComplete() bool {
	return p.TextTotal > 0 && p.TextLoaded >= p.TextTotal
}

func (p Progress) ColorComplete() bool {
	return p.ColorTotal > 0 && p.ColorLoaded >= p.ColorTotal
}

// TextMessage formats the phase 1 status line.
func (p Progress) TextMessage() string {
	if p.TextTotal > 0 {
		return fmt.Sprintf("Loading frames... %d / %d (%d%%)", p.TextLoaded, p.TextTotal, p.TextPercent())
	}
	return "Loading frames..."
}

// ColorMessage formats the phase 2 status line, or "" once colors are done
// or no session is active.
func (p Progress) ColorMessage() string {
	if p.ColorTotal > 0 && !p.ColorComplete() {
		return fmt.Sprintf("Loading colors: %d%%", p.ColorPercent())
	}
	return ""
}

// State is the aggregate owned by the loader: phase, progress, the ordered
// frame list and the parallel path list. The loader is the only writer; the
// UI reads it from the playback loop, so access is mutex-guarded.
type State struct {
	mu         sync.RWMutex
	phase      Phase
	progress   Progress
	frames     []cframe.Frame
	framePaths []string
	err        string
}

// NewState returns an idle loader state.
func NewState() *State {
	return &State{}
}

// Reset clears everything back to an idle, empty state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *State) reset() {
	s.phase = Idle
	s.progress = Progress{}
	s.frames = nil
	s.framePaths = nil
	s.err = ""
}

// StartLoading begins a fresh session for the given file list. Any previous
// session state is discarded.
func (s *State) StartLoading(files []cframe.FrameFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.phase = LoadingText
	s.progress.Reset(len(files))
	s.framePaths = make([]string, len(files))
	for i, f := range files {
		s.framePaths[i] = f.Path
	}
}

// AddTextFrame appends a text-only frame during phase 1.
func (s *State) AddTextFrame(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, cframe.TextOnly(content))
	s.progress.TextLoaded++
}

// FinishTextLoading closes phase 1. With no frames the session fails back to
// Idle; otherwise the state moves to LoadingColors and playback may begin.
func (s *State) FinishTextLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		s.err = "No frames found"
		s.phase = Idle
		return
	}
	s.phase = LoadingColors
}

// SetFrameColor attaches decoded color data to the frame at index and counts
// it toward phase 2 completion.
func (s *State) SetFrameColor(index int, data *cframe.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.frames) {
		s.frames[index].CFrame = data
	}
	s.colorLoadedLocked()
}

// SkipFrameColor counts a frame without color data toward phase 2 completion.
func (s *State) SkipFrameColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorLoadedLocked()
}

func (s *State) colorLoadedLocked() {
	s.progress.ColorLoaded++
	if s.progress.ColorComplete() {
		s.phase = Complete
	}
}

// SetError aborts the session: the message is stored for the UI and the
// phase drops back to Idle.
func (s *State) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
	s.phase = Idle
}

// Err returns the stored error message, or "".
func (s *State) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Phase returns the current loading phase.
func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Progress returns a copy of the current counters.
func (s *State) Progress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// CanPlay reports whether playback may start: frames exist and text loading
// is behind us.
func (s *State) CanPlay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames) > 0 && (s.phase == LoadingColors || s.phase == Complete)
}

// HasAnyColor reports whether at least one frame carries color data.
func (s *State) HasAnyColor() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.frames {
		if s.frames[i].HasColor() {
			return true
		}
	}
	return false
}

// FrameCount returns the number of loaded frames.
func (s *State) FrameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// FrameAt returns a copy of the frame at index, or false when out of bounds.
// The color data pointer stays valid: decoded frames are never mutated.
func (s *State) FrameAt(index int) (cframe.Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.frames) {
		return cframe.Frame{}, false
	}
	return s.frames[index], true
}

// FramePath returns the source path recorded for the frame at index.
func (s *State) FramePath(index int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.framePaths) {
		return "", false
	}
	return s.framePaths[index], true
}
