package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/config"
)

func TestParseSweepParam(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		vals    []float64
		wantErr bool
	}{
		{"bounce=0.5,0.7", "bounce", []float64{0.5, 0.7}, false},
		{"gravity= 0 , 0.8", "gravity", []float64{0, 0.8}, false},
		{"count=3", "count", []float64{3}, false},
		{"bounce", "", nil, true},
		{"mass=1,2", "", nil, true},
		{"bounce=0.5,x", "", nil, true},
	}

	for _, tt := range tests {
		name, vals, err := parseSweepParam(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v", tt.in, err)
			continue
		}
		if tt.wantErr {
			continue
		}
		if name != tt.name || len(vals) != len(tt.vals) {
			t.Errorf("%q: got %s %v", tt.in, name, vals)
			continue
		}
		for i := range vals {
			if vals[i] != tt.vals[i] {
				t.Errorf("%q: vals = %v", tt.in, vals)
			}
		}
	}
}

func TestBuildWorldSpawnsConfiguredBodies(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Spawn.Count = 7

	w, ctrl, err := buildWorld(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := w.Stats().Bodies; got != 7 {
		t.Errorf("bodies = %d, want 7", got)
	}
	if !ctrl.Key("a") {
		t.Error("default key map should bind a")
	}
}

func TestBenchRadius(t *testing.T) {
	cfg := config.DefaultConfig()
	if r := benchRadius(cfg, 5); r != cfg.Spawn.Radius {
		t.Errorf("5 bodies should keep radius, got %v", r)
	}
	r := benchRadius(cfg, 250)
	if r >= cfg.Spawn.Radius || 250*r*r*3.14159 > cfg.World.Width*cfg.World.Height/5 {
		t.Errorf("radius %v too large for 250 bodies", r)
	}
}

func TestRequirePositiveTicks(t *testing.T) {
	saved := ticks
	defer func() { ticks = saved }()

	for _, n := range []int{0, -5} {
		ticks = n
		if err := requirePositiveTicks(nil, nil); err == nil {
			t.Errorf("ticks %d accepted", n)
		}
	}
	ticks = 1
	if err := requirePositiveTicks(nil, nil); err != nil {
		t.Errorf("ticks 1 rejected: %v", err)
	}
}

func TestSweepCommandRejectsZeroTicks(t *testing.T) {
	saved := ticks
	defer func() { ticks = saved }()

	cmd := newSweepCmd()
	cmd.SetArgs([]string{"--ticks", "0", "--param", "gravity=0.8"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "--ticks") {
			t.Errorf("err = %v, want --ticks error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sweep with zero ticks did not return")
	}
}

func TestLoadConfigLayersFileOverPreset(t *testing.T) {
	savedPreset, savedFile := preset, configFile
	defer func() { preset, configFile = savedPreset, savedFile }()

	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  bounce: 0.9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	preset, configFile = "moon", path

	cfg, err := loadConfig(&cobra.Command{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Physics.Gravity != 0.13 || cfg.Physics.Bounce != 0.9 {
		t.Errorf("got gravity %v bounce %v, want 0.13 and 0.9", cfg.Physics.Gravity, cfg.Physics.Bounce)
	}
}
