package sim

import (
	"log"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/san-kum/ballpit/internal/physics"
)

func (w *World) drainLocked() {
	for _, cmd := range w.queue {
		w.applyLocked(cmd)
	}
	w.queue = w.queue[:0]
}

func (w *World) applyLocked(cmd Command) {
	switch cmd.Kind {
	case CmdPick:
		w.pick(cmd.Pos)
	case CmdDrag:
		w.drag(cmd.Pos)
	case CmdRelease:
		w.release()
	case CmdGrow:
		w.resize(w.cfg.GrowFactor)
	case CmdShrink:
		w.resize(w.cfg.ShrinkFactor)
	case CmdDelete:
		w.deleteSelected()
	case CmdSpawn:
		if _, err := w.spawnLocked(cmd.Radius, cmd.ColorIndex); err != nil {
			log.Printf("sim: dropped %s command: %v", cmd.Kind, err)
		}
	}
}

// pick selects and grabs the first body under p; every other body is
// deselected and let go.
func (w *World) pick(p cp.Vector) {
	var hit *physics.Body
	for _, b := range w.bodies {
		if hit == nil && b.Contains(p) {
			hit = b
			b.Selected = true
			b.Dragging = true
			continue
		}
		b.Selected = false
		b.Dragging = false
	}
}

func (w *World) drag(p cp.Vector) {
	for _, b := range w.bodies {
		if b.Dragging {
			b.Pos = p
			b.Vel = cp.Vector{}
		}
	}
}

func (w *World) release() {
	for _, b := range w.bodies {
		if b.Dragging {
			b.Dragging = false
			b.Vel = w.randomVelocity(w.cfg.ThrowSpeed)
		}
	}
}

func (w *World) resize(factor float64) {
	if b := w.selectedLocked(); b != nil {
		b.Scale(factor, w.cfg.MinRadius, w.cfg.Params.MaxRadius())
	}
}

func (w *World) deleteSelected() {
	for i, b := range w.bodies {
		if b.Selected {
			w.bodies = slices.Delete(w.bodies, i, i+1)
			return
		}
	}
}

func (w *World) selectedLocked() *physics.Body {
	for _, b := range w.bodies {
		if b.Selected {
			return b
		}
	}
	return nil
}
