// Package anim drives frame-accurate playback of an ordered frame sequence.
// The controller owns no timer: the host calls Tick at the cadence reported
// by IntervalMS.
package anim

import "math"

// LoopMode selects what happens when playback reaches the end of the range.
type LoopMode int

const (
	// Loop wraps back to the range start.
	Loop LoopMode = iota
	// Once finishes playback at the last frame of the range.
	Once
)

func (m LoopMode) String() string {
	if m == Once {
		return "once"
	}
	return "loop"
}

// State is the playback state of the controller.
type State int

const (
	Stopped State = iota
	Playing
	// Finished is reached only from Playing under LoopMode Once.
	Finished
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "stopped"
	}
}

// Controller is the playback state machine. The playback range is stored as
// normalized 0.0-1.0 bounds so it survives changes to the frame count.
// All methods are synchronous and never block; invalid calls no-op or clamp.
type Controller struct {
	currentFrame int
	frameCount   int
	fps          int
	state        State
	loopMode     LoopMode
	rangeStart   float64
	rangeEnd     float64
}

// New creates a controller playing at the given FPS. FPS below 1 is clamped.
func New(fps int) *Controller {
	return &Controller{
		fps:        max(fps, 1),
		loopMode:   Loop,
		rangeStart: 0.0,
		rangeEnd:   1.0,
	}
}

// SetFrameCount updates the total frame count, clamping the current frame
// down when it falls out of bounds. Playback state is left untouched.
func (c *Controller) SetFrameCount(count int) {
	c.frameCount = count
	if c.currentFrame >= count && count > 0 {
		c.currentFrame = count - 1
	}
}

func (c *Controller) FrameCount() int { return c.frameCount }

// SetFPS updates the playback rate, clamping to a minimum of 1.
func (c *Controller) SetFPS(fps int) {
	c.fps = max(fps, 1)
}

func (c *Controller) FPS() int { return c.fps }

// IntervalMS returns the tick cadence in milliseconds: max(1, round(1000/fps)).
func (c *Controller) IntervalMS() int {
	return max(1, int(math.Round(1000.0/float64(c.fps))))
}

// SetLoopMode switches the loop mode. Switching to Loop while Finished
// re-arms playback by dropping back to Stopped.
func (c *Controller) SetLoopMode(mode LoopMode) {
	c.loopMode = mode
	if mode == Loop && c.state == Finished {
		c.state = Stopped
	}
}

func (c *Controller) LoopMode() LoopMode { return c.loopMode }

// SetRange updates the normalized playback range. Bounds are clamped to
// [0,1] with a minimum span of 0.01, and the current frame is snapped to the
// new start when it falls outside.
func (c *Controller) SetRange(start, end float64) {
	c.rangeStart = clamp01(start)
	c.rangeEnd = math.Max(clamp01(end), c.rangeStart+0.01)

	startFrame, endFrame := c.RangeFrames()
	if c.currentFrame < startFrame || c.currentFrame > endFrame {
		c.currentFrame = startFrame
	}
}

// Range returns the normalized (start, end) bounds.
func (c *Controller) Range() (start, end float64) {
	return c.rangeStart, c.rangeEnd
}

// RangeFrames maps the normalized range onto frame indices by rounding
// against the last valid index.
func (c *Controller) RangeFrames() (start, end int) {
	if c.frameCount == 0 {
		return 0, 0
	}
	maxIdx := float64(c.frameCount - 1)
	return int(math.Round(c.rangeStart * maxIdx)), int(math.Round(c.rangeEnd * maxIdx))
}

// RangeFrameCount returns the number of frames inside the current range.
func (c *Controller) RangeFrameCount() int {
	start, end := c.RangeFrames()
	return end - start + 1
}

// Play starts playback. No-op without frames or when Finished; use Toggle to
// restart a finished animation.
func (c *Controller) Play() {
	if c.frameCount > 0 && c.state != Finished {
		c.state = Playing
	}
}

// Pause stops a playing animation in place.
func (c *Controller) Pause() {
	if c.state == Playing {
		c.state = Stopped
	}
}

// Toggle flips between playing and stopped. From Finished it rewinds to the
// range start and plays again.
func (c *Controller) Toggle() {
	switch c.state {
	case Playing:
		c.Pause()
	case Stopped:
		c.Play()
	case Finished:
		start, _ := c.RangeFrames()
		c.currentFrame = start
		c.state = Playing
	}
}

// Stop halts playback and rewinds to the start of the range.
func (c *Controller) Stop() {
	c.state = Stopped
	start, _ := c.RangeFrames()
	c.currentFrame = start
}

func (c *Controller) State() State { return c.state }

func (c *Controller) IsPlaying() bool { return c.state == Playing }

func (c *Controller) CurrentFrame() int { return c.currentFrame }

// SetCurrentFrame moves to the given frame, clamped into the current range.
func (c *Controller) SetCurrentFrame(frame int) {
	if c.frameCount == 0 {
		c.currentFrame = 0
		return
	}
	start, end := c.RangeFrames()
	c.currentFrame = min(max(frame, start), end)
}

// Seek jumps to a normalized position within the current range.
func (c *Controller) Seek(p float64) {
	if c.frameCount == 0 {
		return
	}
	start, end := c.RangeFrames()
	target := int(math.Round(float64(start) + clamp01(p)*float64(end-start)))
	c.currentFrame = min(max(target, start), end)
}

// Position returns the normalized position of the current frame within the
// range, or 0 when the range collapses to a single frame.
func (c *Controller) Position() float64 {
	start, end := c.RangeFrames()
	if end <= start {
		return 0.0
	}
	return float64(c.currentFrame-start) / float64(end-start)
}

// Tick advances playback by one frame. It reports whether the current frame
// changed. At the range end it wraps under Loop, or transitions to Finished
// under Once.
func (c *Controller) Tick() bool {
	if c.state != Playing || c.frameCount == 0 {
		return false
	}

	start, end := c.RangeFrames()
	if c.currentFrame < start {
		c.currentFrame = start
		return true
	}
	if c.currentFrame >= end {
		if c.loopMode == Loop {
			c.currentFrame = start
			return true
		}
		c.state = Finished
		return false
	}
	c.currentFrame++
	return true
}

// StepForward pauses playback and advances one frame, wrapping at the range
// end.
func (c *Controller) StepForward() {
	if c.frameCount == 0 {
		return
	}
	c.Pause()
	start, end := c.RangeFrames()
	if c.currentFrame >= end {
		c.currentFrame = start
	} else {
		c.currentFrame++
	}
}

// StepBackward pauses playback and goes back one frame, wrapping at the
// range start.
func (c *Controller) StepBackward() {
	if c.frameCount == 0 {
		return
	}
	c.Pause()
	start, end := c.RangeFrames()
	if c.currentFrame <= start {
		c.currentFrame = end
	} else {
		c.currentFrame--
	}
}

// Reset rewinds to frame zero, stops playback and restores the full range.
func (c *Controller) Reset() {
	c.currentFrame = 0
	c.state = Stopped
	c.rangeStart = 0.0
	c.rangeEnd = 1.0
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}
