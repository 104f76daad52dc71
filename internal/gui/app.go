package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/sim"
)

var (
	ColBg      = rl.NewColor(245, 245, 245, 255)
	ColText    = rl.NewColor(40, 40, 40, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
	ColPaused  = rl.NewColor(255, 170, 0, 255)
)

const hudHeight = 28

// keyNames maps raylib keys onto the names used by control.KeyMap.
var keyNames = map[int32]string{
	rl.KeyEqual:      "=",
	rl.KeyKpAdd:      "+",
	rl.KeyMinus:      "-",
	rl.KeyKpSubtract: "-",
	rl.KeyDelete:     "delete",
	rl.KeyBackspace:  "backspace",
	rl.KeyA:          "a",
}

type App struct {
	World   *sim.World
	Ctrl    *control.Controller
	Title   string
	Running bool
	width   int32
	height  int32
	fps     int32
}

func NewApp(w *sim.World, ctrl *control.Controller, title string, fps int) *App {
	p := w.Config().Params
	if fps <= 0 {
		fps = 60
	}
	return &App{
		World:   w,
		Ctrl:    ctrl,
		Title:   title,
		Running: true,
		width:   int32(p.Width),
		height:  int32(p.Height),
		fps:     int32(fps),
	}
}

// Run opens a window the size of the world and blocks until it is closed.
func Run(w *sim.World, ctrl *control.Controller, title string, fps int) {
	a := NewApp(w, ctrl, title, fps)
	rl.InitWindow(a.width, a.height+hudHeight, title)
	rl.SetTargetFPS(a.fps)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

// Update feeds mouse and key input to the controller and steps the world.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}

	m := rl.GetMousePosition()
	x, y := float64(m.X), float64(m.Y-hudHeight)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.Ctrl.PointerDown(x, y)
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.Ctrl.PointerUp()
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		a.Ctrl.PointerMove(x, y)
	}

	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			a.Ctrl.Key(name)
		}
	}

	if a.Running || rl.IsKeyPressed(rl.KeyPeriod) {
		a.World.Tick()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.World.Draw(renderer{offsetY: hudHeight})
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	s := a.World.Stats()
	rl.DrawRectangle(0, 0, a.width, hudHeight, rl.RayWhite)
	line := fmt.Sprintf("Objects: %d   Collisions: %d   Avg speed: %.2f", s.Bodies, s.Collisions, s.AverageSpeed)
	rl.DrawText(line, 8, 6, 16, ColText)

	if !a.Running {
		rl.DrawText("PAUSED", a.width-80, 6, 16, ColPaused)
	} else {
		rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), a.width-70, 6, 16, ColTextDim)
	}
}
