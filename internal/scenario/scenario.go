// Package scenario defines the initial conditions a simulation starts from:
// the body set, the visible world width, and per-body display attributes.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jask/orrery/internal/physics"
)

// ErrUnknownScenario reports a preset name with no match.
var ErrUnknownScenario = errors.New("unknown scenario")

// BodySpec describes one body before construction. Pos is km, Vel km/s,
// Mass kg, Radius km. DisplayScale exaggerates the radius for visibility
// (sunlike bodies are drawn a few tens of times larger, planets a thousand);
// the scaled radius is the only radius the simulation carries. Hue is the
// body's color as a fraction of the hue circle in [0, 1].
type BodySpec struct {
	Name         string     `mapstructure:"name"`
	Mass         float64    `mapstructure:"mass"`
	Radius       float64    `mapstructure:"radius"`
	DisplayScale float64    `mapstructure:"display_scale"`
	Pos          [2]float64 `mapstructure:"pos"`
	Vel          [2]float64 `mapstructure:"vel"`
	Hue          float64    `mapstructure:"hue"`
}

// Scenario is a named initial configuration. WorldWidth is the span of
// world, in km, that the view maps across its width; it also anchors the
// trail decimation threshold.
type Scenario struct {
	Name        string     `mapstructure:"name"`
	Description string     `mapstructure:"description"`
	WorldWidth  float64    `mapstructure:"world_width"`
	Bodies      []BodySpec `mapstructure:"bodies"`
}

// Validate checks everything Build would reject, without building.
func (sc Scenario) Validate() error {
	if strings.TrimSpace(sc.Name) == "" {
		return errors.New("scenario name required")
	}
	// zero world_width defers to the configured width at wiring time
	if sc.WorldWidth < 0 || math.IsNaN(sc.WorldWidth) || math.IsInf(sc.WorldWidth, 0) {
		return fmt.Errorf("scenario %q: world_width must not be negative: got %g", sc.Name, sc.WorldWidth)
	}
	for i, bs := range sc.Bodies {
		if strings.TrimSpace(bs.Name) == "" {
			return fmt.Errorf("scenario %q: body %d has no name", sc.Name, i)
		}
		if bs.Hue < 0 || bs.Hue > 1 {
			return fmt.Errorf("scenario %q: body %q: hue must be in [0, 1]: got %g", sc.Name, bs.Name, bs.Hue)
		}
		if bs.DisplayScale < 0 {
			return fmt.Errorf("scenario %q: body %q: display_scale must not be negative: got %g", sc.Name, bs.Name, bs.DisplayScale)
		}
	}
	return nil
}

// Build validates the scenario and constructs its physics bodies in order.
// A zero DisplayScale means no exaggeration.
func (sc Scenario) Build() ([]*physics.Body, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	bodies := make([]*physics.Body, 0, len(sc.Bodies))
	for _, bs := range sc.Bodies {
		scale := bs.DisplayScale
		if scale == 0 {
			scale = 1
		}
		b, err := physics.NewBody(bs.Name,
			r2.Vec{X: bs.Pos[0], Y: bs.Pos[1]},
			r2.Vec{X: bs.Vel[0], Y: bs.Vel[1]},
			bs.Mass, bs.Radius*scale)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// CircularOrbitSpeed returns the speed, in km/s, of a circular orbit of
// radius dist km around a central mass of centralMass kg: sqrt(g*M/d).
// Applied perpendicular to the radius it closes the orbit.
func CircularOrbitSpeed(g, centralMass, dist float64) float64 {
	return math.Sqrt(g * centralMass / dist)
}

// Lookup finds a built-in scenario by name, case insensitively. Unknown
// names return ErrUnknownScenario, with a nearest-preset suggestion when one
// is plausibly a typo.
func Lookup(name string) (Scenario, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	best := ""
	bestDist := -1
	for _, sc := range Builtins() {
		if strings.ToLower(sc.Name) == want {
			return sc, nil
		}
		d := levenshtein.ComputeDistance(want, strings.ToLower(sc.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = sc.Name, d
		}
	}
	if best != "" && bestDist <= 3 {
		return Scenario{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownScenario, name, best)
	}
	return Scenario{}, fmt.Errorf("%w %q", ErrUnknownScenario, name)
}
