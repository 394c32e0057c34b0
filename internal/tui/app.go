package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jask/orrery/internal/config"
	"github.com/jask/orrery/internal/diag"
	"github.com/jask/orrery/internal/scenario"
	"github.com/jask/orrery/internal/sim"
)

const (
	minSpeed = 1
	maxSpeed = 64

	statsPaneWidth = 34
	chartHeight    = 8
)

// App drives the interactive view over a running simulation.
type App struct {
	cfg  config.Config
	scn  scenario.Scenario
	sim  *sim.Simulation
	rec  *diag.Recorder
	keys keyMap

	state      appState
	speed      int // batches advanced per frame
	showTrails bool
	showStats  bool
	width      int
	height     int
	status     string
	err        error
	exportPath string
}

type appState string

const (
	stateRunning appState = "running"
	statePaused  appState = "paused"
	stateFailed  appState = "failed"
)

func New(cfg config.Config, scn scenario.Scenario, s *sim.Simulation, rec *diag.Recorder, exportPath string) *App {
	return &App{
		cfg:        cfg,
		scn:        scn,
		sim:        s,
		rec:        rec,
		keys:       newKeyMap(),
		state:      stateRunning,
		speed:      minSpeed,
		showTrails: cfg.UI.ShowTrails,
		showStats:  cfg.UI.ShowStats,
		exportPath: exportPath,
	}
}

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.cfg.UI.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		return a.handleKey(m)
	case tickMsg:
		if a.state != stateRunning {
			return a, nil
		}
		a.advance(a.speed)
		if a.state != stateRunning {
			return a, nil
		}
		return a, a.tick()
	case exportDoneMsg:
		a.status = "wrote " + m.path
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Pause):
		switch a.state {
		case stateRunning:
			a.state = statePaused
			a.status = "paused"
		case statePaused:
			a.state = stateRunning
			a.status = ""
			return a, a.tick()
		}
	case key.Matches(m, a.keys.Step):
		if a.state == statePaused {
			a.advance(1)
		}
	case key.Matches(m, a.keys.Faster):
		a.speed = min(a.speed*2, maxSpeed)
	case key.Matches(m, a.keys.Slower):
		a.speed = max(a.speed/2, minSpeed)
	case key.Matches(m, a.keys.Trails):
		a.showTrails = !a.showTrails
	case key.Matches(m, a.keys.Stats):
		a.showStats = !a.showStats
	case key.Matches(m, a.keys.Reset):
		a.sim.Reset()
		a.rec.Reset()
		a.err = nil
		a.status = "reset"
		if a.state != stateRunning {
			a.state = stateRunning
			return a, a.tick()
		}
	case key.Matches(m, a.keys.Export):
		return a, a.exportCmd()
	}
	return a, nil
}

// advance runs the given number of batches and records one diagnostics
// sample. A solver failure freezes the simulation until reset.
func (a *App) advance(batches int) {
	for i := 0; i < batches; i++ {
		if _, err := a.sim.Advance(); err != nil {
			a.err = err
			a.state = stateFailed
			return
		}
	}
	a.rec.Capture(a.sim)
}

// commands

func (a *App) exportCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.rec.ExportFile(a.exportPath); err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{path: a.exportPath}
	}
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a *App) View() string {
	header := a.renderHeader()
	status := a.renderStatus()
	footer := a.renderFooter(a.keys.ShortHelp())

	bodyW := a.width
	if bodyW == 0 {
		bodyW = 80
	}
	bodyH := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if a.height == 0 {
		bodyH = 24
	}
	if bodyH < 4 {
		bodyH = 4
	}

	body := a.renderBody(bodyW, bodyH)
	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (a *App) renderHeader() string {
	parts := []string{
		headerAppStyle.Render("orrery"),
		a.scn.Name,
		headerClockStyle.Render(fmt.Sprintf("time: %.2f days", a.sim.Days())),
		fmt.Sprintf("%dx", a.speed),
	}
	switch a.state {
	case statePaused:
		parts = append(parts, pausedStyle.Render("PAUSED"))
	case stateFailed:
		parts = append(parts, failedStyle.Render("FAILED"))
	}
	line := strings.Join(parts, "  ")
	if a.width == 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(a.width).Render(line)
}

func (a *App) renderBody(w, h int) string {
	statsW := 0
	if a.showStats && w >= 72 {
		statsW = statsPaneWidth
	}
	chartH := 0
	if a.showStats && h >= 18 {
		chartH = chartHeight
	}

	cv := newCanvas(w-statsW, h-chartH, a.scn.WorldWidth)
	bodies := a.sim.Bodies()
	if a.showTrails {
		for i := range bodies {
			cv.drawTrail(a.sim.Trail(i), trailColor(a.scn.Bodies[i].Hue))
		}
	}
	for i, b := range bodies {
		cv.drawBody(b.Pos, b.Radius, bodyColor(a.scn.Bodies[i].Hue))
	}

	left := cv.render()
	if chartH > 0 {
		if ch := renderEnergyChart(a.rec.Samples(), w-statsW, chartH); ch != "" {
			left += "\n" + ch
		}
	}
	if statsW == 0 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, a.renderStats(statsW))
}

func (a *App) renderStats(w int) string {
	inner := w - 4 // border and padding
	var b strings.Builder
	b.WriteString(titleStyle.Render("diagnostics"))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteByte('\n')
		b.WriteString(statsLabelStyle.Render(padRight(label, 10)))
		b.WriteString(statsValueStyle.Render(truncate(value, inner-10)))
	}
	if s, ok := a.rec.Latest(); ok {
		row("kinetic", fmt.Sprintf("%.4e", s.Kinetic))
		row("potential", fmt.Sprintf("%.4e", s.Potential))
		row("total", fmt.Sprintf("%.4e", s.Total))
		row("momentum", fmt.Sprintf("%.3e, %.3e", s.Momentum.X, s.Momentum.Y))
		row("", "kg, km, s units")
	} else {
		b.WriteByte('\n')
		b.WriteString(statsLabelStyle.Render("no samples yet"))
	}

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("bodies"))
	for i, body := range a.sim.Bodies() {
		swatch := lipgloss.NewStyle().Foreground(bodyColor(a.scn.Bodies[i].Hue)).Render("●")
		speed := fmt.Sprintf("%.2f km/s", r2.Norm(body.Vel))
		b.WriteByte('\n')
		b.WriteString(swatch)
		b.WriteByte(' ')
		b.WriteString(statsValueStyle.Render(padRight(truncate(body.Name, inner-14), inner-14)))
		b.WriteString(statsLabelStyle.Render(speed))
	}

	return statsBoxStyle.Width(w - 2).Render(b.String())
}

func (a *App) renderStatus() string {
	text := a.status
	if a.err != nil {
		text = "error: " + a.err.Error()
	}
	if text == "" {
		text = a.scn.Description
	}
	if text == "" {
		text = "ready"
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return statusBarStyle.Render(flat)
	}
	return statusBarStyle.Width(a.width).MaxWidth(a.width).Render(flat)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(ansi.Truncate(content, max(1, a.width-4), ""))
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type tickMsg time.Time

type exportDoneMsg struct{ path string }

type errMsg struct{ error }

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
