package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"flick/anim"
	"flick/cframe"
	"flick/conf"
	"flick/device"
	"flick/loader"
	"flick/logs"
	"flick/render"
	"flick/ui"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "[flick] %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := conf.ParseCLI()
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.ShowVersion {
		fmt.Printf("flick %s\n", appVersion())
		return nil
	}

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if closeLog, logErr := initLogSink(opts.Dir); logErr != nil {
		log.SetOutput(io.Discard)
	} else {
		defer closeLog()
	}

	details, err := conf.LoadDetails(opts.Dir)
	if err != nil {
		log.Printf("[cfg] %v", err)
		details = &conf.Details{}
	}
	colors := details.FrameColors()

	appCtx, appCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer appCancel()

	state := loader.NewState()
	provider := loader.DirProvider{}

	// Phase 1: every text body, in order. Failure ends the run before any
	// terminal state is touched.
	frames, files, err := loader.LoadTextFrames(appCtx, provider, opts.Dir)
	if err != nil {
		state.SetError(err.Error())
		return err
	}
	state.StartLoading(files)
	for i := range frames {
		state.AddTextFrame(frames[i].Content)
	}
	state.FinishTextLoading()
	if !state.CanPlay() {
		return fmt.Errorf("%s", state.Err())
	}
	logs.LogV("[loader] %d text frames from %s", state.FrameCount(), opts.Dir)

	ctrl := anim.New(playbackFPS(opts, details))
	ctrl.SetFrameCount(state.FrameCount())
	if opts.Once {
		ctrl.SetLoopMode(anim.Once)
	}
	ctrl.SetRange(opts.RangeStart, opts.RangeEnd)

	if !device.IsTerminal() {
		return fmt.Errorf("flick needs an interactive terminal")
	}
	restore, err := device.MakeRawInput()
	if err != nil {
		return err
	}
	defer restore()

	frameCh := make(chan *device.TerminalFrame, 1)
	stopCh := make(chan struct{})
	terminal, err := device.StartTerminal(frameCh, stopCh, nil)
	if err != nil {
		return err
	}
	defer func() {
		close(stopCh)
		<-terminal.Done()
	}()

	keys := ui.StartKeyReader(appCtx)
	sizes := ui.WatchTermSize(appCtx)

	redrawCh := make(chan struct{}, 1)
	requestRedraw := func() {
		select {
		case redrawCh <- struct{}{}:
		default:
		}
	}

	// Phase 2: colors arrive in the background, upgrading frames in place.
	// The yield hook keeps the decode loop cooperative with the playback
	// goroutines on a busy scheduler.
	colorDone := make(chan error, 1)
	go func() {
		colorDone <- loader.LoadColorFrames(appCtx, provider, files, func(index, total int, data *cframe.Data) {
			if data != nil {
				state.SetFrameColor(index, data)
			} else {
				state.SkipFrameColor()
			}
			requestRedraw()
		}, runtime.Gosched)
	}()

	screen := ui.Screen{Colors: colors}
	if cols, rows, err := device.GetTermSize(); err == nil {
		screen.Cols, screen.Rows = cols, rows
	}
	colorOn := !opts.NoColor

	ctrl.Play()
	ticker := time.NewTicker(time.Duration(ctrl.IntervalMS()) * time.Millisecond)
	defer ticker.Stop()

	draw := func() {
		sendFrame(frameCh, composeFrame(screen, state, ctrl, colorOn))
	}
	draw()

	for {
		select {
		case <-appCtx.Done():
			return nil
		case err := <-colorDone:
			colorDone = nil
			if err != nil && !errors.Is(err, context.Canceled) {
				state.SetError(err.Error())
				log.Printf("[loader] color loading failed: %v", err)
			}
			draw()
		case ts := <-sizes:
			screen.Cols, screen.Rows = ts.Cols, ts.Rows
			draw()
		case <-ticker.C:
			before := ctrl.State()
			if ctrl.Tick() || ctrl.State() != before {
				draw()
			}
		case <-redrawCh:
			draw()
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			switch ev.Key {
			case ui.KeyQuit:
				return nil
			case ui.KeyToggle:
				ctrl.Toggle()
			case ui.KeyStepForward:
				ctrl.StepForward()
			case ui.KeyStepBackward:
				ctrl.StepBackward()
			case ui.KeyLoopMode:
				if ctrl.LoopMode() == anim.Loop {
					ctrl.SetLoopMode(anim.Once)
				} else {
					ctrl.SetLoopMode(anim.Loop)
				}
			case ui.KeyColorToggle:
				if state.HasAnyColor() {
					colorOn = !colorOn
				}
			case ui.KeySeekDigit:
				ctrl.Seek(float64(ev.Digit) / 10.0)
			}
			draw()
		}
	}
}

// playbackFPS picks the playback rate: CLI override, then project metadata,
// then the 24fps default.
func playbackFPS(opts *conf.Options, details *conf.Details) int {
	if opts.FPS > 0 {
		return opts.FPS
	}
	if details.FPS != nil && *details.FPS > 0 {
		return *details.FPS
	}
	return 24
}

// composeFrame builds the full ANSI payload for the current frame and status.
func composeFrame(screen ui.Screen, state *loader.State, ctrl *anim.Controller, colorOn bool) string {
	if msg := state.Err(); msg != "" && !state.CanPlay() {
		return screen.ComposeStatusScreen("Error: " + msg)
	}
	frame, ok := state.FrameAt(ctrl.CurrentFrame())
	if !ok {
		return screen.ComposeStatusScreen(state.Progress().TextMessage())
	}

	progress := state.Progress()
	status := ui.StatusLine(ctrl.CurrentFrame(), ctrl.FrameCount(), ctrl.State().String(),
		progress.ColorMessage(), state.HasAnyColor(), colorOn)

	if colorOn && frame.HasColor() {
		result := render.BatchFrame(frame.CFrame, ui.CellConfig())
		return screen.ComposeColorFrame(result, status)
	}
	return screen.ComposeTextFrame(frame, status)
}

// sendFrame delivers the payload without blocking, replacing a stale frame
// the terminal driver has not picked up yet.
func sendFrame(frameCh chan *device.TerminalFrame, payload string) {
	tf := &device.TerminalFrame{Data: payload}
	select {
	case frameCh <- tf:
	default:
		select {
		case <-frameCh:
		default:
		}
		select {
		case frameCh <- tf:
		default:
		}
	}
}

// initLogSink appends verbose logs to flick.log next to the frames. Without
// -v all logging is discarded so the TTY stays clean.
func initLogSink(dir string) (func() error, error) {
	if !conf.Verbose {
		return nil, fmt.Errorf("verbose logging disabled")
	}
	path := filepath.Join(dir, "flick.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f.Close, nil
}

func appVersion() string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}
	if v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			if ver := strings.TrimSpace(bi.Main.Version); ver != "" && ver != "(devel)" {
				return ver
			}
		}
	}
	return v
}
