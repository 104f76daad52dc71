package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	canvasWidth     = 60
	canvasHeight    = 30
	historyCapacity = 300
)

type TickMsg time.Time

// Model is the bubbletea model of the live sandbox view.
type Model struct {
	world    *sim.World
	ctrl     *control.Controller
	canvas   *Canvas
	proj     *Projector
	trace    *metrics.Trace
	title    string
	frame    time.Duration
	running  bool
	showHelp bool
}

func NewModel(w *sim.World, ctrl *control.Controller, title string, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	p := w.Config().Params
	canvas := NewCanvas(canvasWidth, canvasHeight)
	trace := metrics.NewTrace(historyCapacity)
	w.AddObserver(trace)

	return Model{
		world:   w,
		ctrl:    ctrl,
		canvas:  canvas,
		proj:    NewProjector(canvas, p.Width, p.Height, canvasOffX, canvasOffY),
		trace:   trace,
		title:   title,
		frame:   time.Second / time.Duration(fps),
		running: true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update routes keys and mouse events to the controller and steps the world.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case ".":
			if !m.running {
				m.world.Tick()
			}
		case "?":
			m.showHelp = !m.showHelp
		default:
			m.ctrl.Key(msg.String())
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		if m.running {
			m.world.Tick()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	x, y, inside := m.proj.CellToWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.ctrl.PointerDown(x, y)
		}
	case tea.MouseActionMotion:
		if m.ctrl.Held() && inside {
			m.ctrl.PointerMove(x, y)
		}
	case tea.MouseActionRelease:
		if m.ctrl.Held() {
			m.ctrl.PointerUp()
		}
	}
}

func (m Model) View() string {
	m.canvas.Clear()
	m.world.Draw(m.proj)
	canvasView := canvasStyle.Render(m.canvas.Render())

	stats := m.world.Stats()
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", stats.Tick)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", stats.Bodies)) + "\n")
	s.WriteString(labelStyle.Render("Collisions") + valueStyle.Render(fmt.Sprintf("%d", stats.Collisions)) + "\n")
	s.WriteString(labelStyle.Render("Avg speed") + valueStyle.Render(fmt.Sprintf("%.2f", stats.AverageSpeed)) + "\n")

	if b, ok := m.world.Selected(); ok {
		s.WriteString("\n" + selectStyle.Render(fmt.Sprintf("#%d  r=%.1f  m=%.0f", b.ID, b.Radius(), b.Mass())) + "\n")
	}

	if speeds := m.trace.Speeds(); len(speeds) > 1 {
		chart := asciigraph.Plot(speeds, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("avg speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nDRAG:Throw  SP:Pause  Q:Quit\n+/-:Resize  DEL:Delete\nA:Spawn    ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return helpText(m.ctrl.Keys()) + "\n\n" + mainView
	}
	return mainView
}

func helpText(keys control.KeyMap) string {
	var b strings.Builder
	b.WriteString("KEYBOARD SHORTCUTS\n")
	b.WriteString("  mouse drag  pick up and throw a body\n")
	b.WriteString("  space       pause / resume\n")
	b.WriteString("  .           single tick while paused\n")
	for _, a := range []control.Action{control.ActionGrow, control.ActionShrink, control.ActionDelete, control.ActionSpawn} {
		b.WriteString(fmt.Sprintf("  %-11s %s\n", strings.Join(keys.Bindings(a), " "), a))
	}
	b.WriteString("  q           quit\n")
	return b.String()
}

// Run opens the live view with mouse reporting enabled.
func Run(w *sim.World, ctrl *control.Controller, title string, fps int) error {
	p := tea.NewProgram(NewModel(w, ctrl, title, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
