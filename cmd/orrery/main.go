package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/orrery/internal/config"
	"github.com/jask/orrery/internal/diag"
	"github.com/jask/orrery/internal/scenario"
	"github.com/jask/orrery/internal/sim"
	"github.com/jask/orrery/internal/tui"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to a TOML config file")
		scenarioName = flag.String("scenario", "solar", "built-in scenario to run")
		scenarioFile = flag.String("scenario-file", "", "load the scenario from a TOML file instead")
		list         = flag.Bool("list", false, "list built-in scenarios and exit")
		headless     = flag.Int("headless", 0, "run N batches without the TUI and exit")
		export       = flag.String("export", "orrery-diag.csv", "path diagnostics CSV exports are written to")
	)
	flag.Parse()

	if *list {
		for _, sc := range scenario.Builtins() {
			fmt.Printf("%-10s %s\n", sc.Name, sc.Description)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	scn, err := pickScenario(*scenarioName, *scenarioFile)
	if err != nil {
		log.Fatalf("scenario: %v", err)
	}
	if scn.WorldWidth == 0 {
		scn.WorldWidth = cfg.World.WidthKm
	}

	bodies, err := scn.Build()
	if err != nil {
		log.Fatalf("scenario: %v", err)
	}

	s, err := sim.New(sim.Params{
		DeltaT:          cfg.Physics.DeltaT,
		StepsPerAdvance: cfg.Physics.StepsPerAdvance,
		G:               cfg.Physics.GravityConst,
		TrailMinSpacing: scn.WorldWidth * cfg.Trail.MinSpacingFrac,
		TrailMaxPoints:  cfg.Trail.MaxPoints,
	}, bodies)
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}

	rec := diag.NewRecorder()

	if *headless > 0 {
		if err := runHeadless(s, rec, *headless, *export); err != nil {
			log.Fatalf("headless: %v", err)
		}
		return
	}

	p := tea.NewProgram(tui.New(cfg, scn, s, rec, *export), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func pickScenario(name, file string) (scenario.Scenario, error) {
	if file != "" {
		return scenario.LoadFile(file)
	}
	return scenario.Lookup(name)
}

// runHeadless drives the simulation without a terminal attached, printing a
// one-line summary and exporting diagnostics when a path is set.
func runHeadless(s *sim.Simulation, rec *diag.Recorder, batches int, export string) error {
	for i := 0; i < batches; i++ {
		if _, err := s.Advance(); err != nil {
			return err
		}
		rec.Capture(s)
	}
	fmt.Printf("ran %d batches, time: %.2f days\n", batches, s.Days())
	if sample, ok := rec.Latest(); ok {
		fmt.Printf("total energy %.6e, momentum (%.3e, %.3e)\n",
			sample.Total, sample.Momentum.X, sample.Momentum.Y)
	}
	if export != "" {
		if err := rec.ExportFile(export); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", export)
	}
	return nil
}
