package conf

import (
	"errors"
	"flag"
	"testing"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-fps", "30", "-once", "-no-color", "frames"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.FPS != 30 || !opts.Once || !opts.NoColor {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Dir == "" {
		t.Error("directory not resolved")
	}
	if opts.RangeStart != 0.0 || opts.RangeEnd != 1.0 {
		t.Errorf("default range = %v:%v", opts.RangeStart, opts.RangeEnd)
	}
}

func TestParseArgsRange(t *testing.T) {
	opts, err := parseArgs([]string{"-range", "0.25:0.75", "frames"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.RangeStart != 0.25 || opts.RangeEnd != 0.75 {
		t.Errorf("range = %v:%v", opts.RangeStart, opts.RangeEnd)
	}

	for _, bad := range []string{"0.5", "1:0", "-0.1:0.5", "0:1.5", "a:b"} {
		if _, err := parseArgs([]string{"-range", bad, "frames"}); err == nil {
			t.Errorf("range %q accepted", bad)
		}
	}
}

func TestParseArgsMissingDir(t *testing.T) {
	if _, err := parseArgs(nil); err == nil {
		t.Error("missing directory accepted")
	}
	if _, err := parseArgs([]string{"a", "b"}); err == nil {
		t.Error("extra positional arguments accepted")
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parseArgs([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseArgs(-h) = %v, want flag.ErrHelp", err)
	}
}

func TestParseArgsVersion(t *testing.T) {
	opts, err := parseArgs([]string{"-version"})
	if err != nil {
		t.Fatalf("-version without directory failed: %v", err)
	}
	if !opts.ShowVersion {
		t.Error("ShowVersion not set")
	}
}
