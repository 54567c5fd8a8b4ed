package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/source"
)

func TestDump(t *testing.T) {
	// Default scene: a 320x240 viewer over 40 rows, content 420x1040.
	tests := []struct {
		name      string
		frames    int
		delta     layout.Point
		wantY     []float64
		wantDirty []bool
	}{
		{
			name:      "drag up",
			frames:    3,
			delta:     layout.Point{Y: -40},
			wantY:     []float64{-60, -120, -180},
			wantDirty: []bool{true, true, true},
		},
		{
			name:      "clamped at the end",
			frames:    2,
			delta:     layout.Point{Y: -400},
			wantY:     []float64{-600, -800},
			wantDirty: []bool{true, true},
		},
		{
			name:      "idle",
			frames:    2,
			wantY:     []float64{0, 0},
			wantDirty: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := dump(context.Background(), layout.NewContext(nil), config.Default(), source.Synthetic(40),
				dumpOptions{Frames: tt.frames, Delta: tt.delta})
			if err != nil {
				t.Fatalf("dump failed: %v", err)
			}
			if len(records) != tt.frames {
				t.Fatalf("got %d records; want %d", len(records), tt.frames)
			}
			for i, r := range records {
				if r.Frame != uint64(i) {
					t.Errorf("record %d frame = %d", i, r.Frame)
				}
				if r.Offset.Y != tt.wantY[i] || r.Content.Y != tt.wantY[i] {
					t.Errorf("frame %d: offset y %v content y %v; want %v", i, r.Offset.Y, r.Content.Y, tt.wantY[i])
				}
				if r.Dirty != tt.wantDirty[i] {
					t.Errorf("frame %d: dirty = %v; want %v", i, r.Dirty, tt.wantDirty[i])
				}
				if r.Content.Width != 420 || r.Content.Height != 1040 {
					t.Errorf("frame %d: content size %vx%v", i, r.Content.Width, r.Content.Height)
				}
			}
		})
	}
}

func TestDumpStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lctx := layout.NewContext(nil)
	_, err := dump(ctx, lctx, config.Default(), source.Synthetic(40), dumpOptions{Frames: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v; want context.Canceled", err)
	}
	if lctx.Frame != 0 {
		t.Errorf("ran %d frames after cancellation", lctx.Frame)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDumpCommand(t *testing.T) {
	out, err := execute(t, "dump", "-n", "2", "--dy", "-40")
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	for _, want := range []string{"offset y", "-60.0", "-120.0", "1040.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if _, err := execute(t, "dump", "--png", path); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestDumpCommandConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.toml")
	data := "[viewer]\nvertical = \"disabled\"\n\n[content]\nrows = 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "dump", "--config", path, "--dy", "-40")
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	// Five rows of 26 and no vertical scrolling.
	if !strings.Contains(out, "130.0") {
		t.Errorf("output missing content height 130:\n%s", out)
	}
	if strings.Contains(out, "-60.0") {
		t.Errorf("disabled axis scrolled:\n%s", out)
	}
}

func TestDumpCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no frames", args: []string{"dump", "-n", "0"}},
		{name: "missing config", args: []string{"dump", "--config", filepath.Join(t.TempDir(), "nope.toml")}},
		{name: "missing shapefile", args: []string{"dump", "--shapefile", filepath.Join(t.TempDir(), "nope.shp")}},
		{name: "stray argument", args: []string{"dump", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("command succeeded")
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("empty context did not fall back to the default logger")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("attached logger not returned")
	}
	l.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q", buf.String())
	}
}
