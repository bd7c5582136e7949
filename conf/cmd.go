package conf

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Verbose enables the logs.LogV output across the whole player.
var Verbose bool

// Options are the parsed command-line settings for one player run.
type Options struct {
	// Dir is the frame directory to play.
	Dir string
	// FPS overrides the details.toml playback rate when > 0.
	FPS int
	// Once plays the sequence a single time instead of looping.
	Once bool
	// RangeStart/RangeEnd restrict playback to a normalized sub-range.
	RangeStart float64
	RangeEnd   float64
	// NoColor forces monochrome rendering even when color data exists.
	NoColor     bool
	ShowVersion bool
}

// ParseCLI reads the player options from os.Args.
func ParseCLI() (*Options, error) {
	return parseArgs(os.Args[1:])
}

func parseArgs(args []string) (*Options, error) {
	opts := &Options{RangeStart: 0.0, RangeEnd: 1.0}

	fs := flag.NewFlagSet("flick", flag.ContinueOnError)
	fs.IntVar(&opts.FPS, "fps", 0, "playback rate override (frames per second)")
	fs.BoolVar(&opts.Once, "once", false, "play once instead of looping")
	rangeArg := fs.String("range", "", "playback range as start:end, both 0..1")
	fs.BoolVar(&opts.NoColor, "no-color", false, "force monochrome rendering")
	fs.BoolVar(&Verbose, "v", false, "verbose logging")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: flick [flags] <frame directory>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *rangeArg != "" {
		start, end, err := parseRange(*rangeArg)
		if err != nil {
			return nil, err
		}
		opts.RangeStart, opts.RangeEnd = start, end
	}
	if opts.FPS < 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}

	if opts.ShowVersion {
		return opts, nil
	}
	switch fs.NArg() {
	case 0:
		return nil, fmt.Errorf("missing frame directory argument")
	case 1:
		dir, err := resolveDir(fs.Arg(0))
		if err != nil {
			return nil, err
		}
		opts.Dir = dir
	default:
		return nil, fmt.Errorf("unexpected extra arguments: %v", fs.Args()[1:])
	}
	return opts, nil
}

// parseRange parses "start:end" with both bounds normalized to 0..1.
func parseRange(arg string) (start, end float64, err error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("range must be start:end, got %q", arg)
	}
	start, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range start %q: %v", parts[0], err)
	}
	end, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range end %q: %v", parts[1], err)
	}
	if start < 0 || end > 1 || start >= end {
		return 0, 0, fmt.Errorf("range %q out of order or outside 0..1", arg)
	}
	return start, end, nil
}

// resolveDir expands "~" and makes the frame directory absolute.
func resolveDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("empty frame directory")
	}
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return abs, nil
}
