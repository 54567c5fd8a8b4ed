package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpticalFlyer/strata/layout"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(`
[viewer]
width = 100
horizontal = "custom"
vertical = "disabled"

[content]
rows = 3

[theme]
row = "#112233"
`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Viewer.Width != 100 {
		t.Errorf("viewer width = %v; want 100", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != Default().Viewer.Height {
		t.Errorf("viewer height = %v; want default", cfg.Viewer.Height)
	}
	want := layout.ScrollViewerMode{Horizontal: layout.ScrollCustom, Vertical: layout.ScrollDisabled}
	if got := cfg.Viewer.Mode(); got != want {
		t.Errorf("mode = %+v; want %+v", got, want)
	}
	if cfg.Content.Rows != 3 {
		t.Errorf("rows = %d; want 3", cfg.Content.Rows)
	}
	if cfg.Theme.Row != "#112233" || cfg.Theme.Text != Default().Theme.Text {
		t.Errorf("theme not merged over defaults: %+v", cfg.Theme)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "bad mode", data: "[viewer]\nhorizontal = \"sideways\"", wantErr: "decoding config"},
		{name: "zero viewer", data: "[viewer]\nwidth = 0", wantErr: "viewer size"},
		{name: "negative rows", data: "[content]\nrows = -1", wantErr: "content rows"},
		{name: "unknown key", data: "[viewer]\nwidht = 10", wantErr: "unknown key viewer.widht"},
		{name: "bad colour", data: "[theme]\nthumb = \"#12\"", wantErr: "theme thumb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Decode accepted invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strata.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"rows\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Title != "rows" {
		t.Errorf("title = %q; want rows", cfg.Window.Title)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strata.toml")
	if err := os.WriteFile(path, []byte("[viewer]\nwdith = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("Load error = %v; want unknown key", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
