package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0, "")
	c.Set(3, 7, "#ff0000")
	c.Set(-1, 0, "")
	c.Set(100, 100, "")

	if !c.IsSet(0, 0) || !c.IsSet(3, 7) {
		t.Error("expected pixels to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("unexpected pixel at (1,0)")
	}
	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("cell (0,0) = %U", c.Grid[0][0])
	}
	if c.Colors[1][1] != "#ff0000" {
		t.Errorf("cell colour = %q", c.Colors[1][1])
	}

	c.Clear()
	if c.IsSet(0, 0) || c.Colors[1][1] != "" {
		t.Error("clear left state behind")
	}
}

func TestCanvasEllipse(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Ellipse(20, 20, 10, 10, "")

	if !c.IsSet(30, 20) || !c.IsSet(10, 20) || !c.IsSet(20, 30) || !c.IsSet(20, 10) {
		t.Error("ellipse misses its extreme points")
	}
	if c.IsSet(20, 20) {
		t.Error("ellipse outline should not fill the centre")
	}

	c.Clear()
	c.Ellipse(5, 5, 0, 3, "")
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank && r <= 0x28FF }) {
		t.Error("degenerate ellipse drew pixels")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 3 {
			t.Errorf("line %q has wrong width", l)
		}
	}
}
