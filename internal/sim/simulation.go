package sim

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jask/orrery/internal/physics"
)

// Params fixes the stepping constants for a run. They are set once at
// construction; nothing changes them mid-run.
type Params struct {
	DeltaT          float64 // seconds of simulated time per step
	StepsPerAdvance int     // steps executed by one Advance call
	G               float64 // gravitational constant, km³·kg⁻¹·s⁻²
	TrailMinSpacing float64 // km between stored trail points
	TrailMaxPoints  int
}

// Simulation owns a fixed set of bodies, one trail per body, and the
// cumulative simulated time. It is single threaded: an advance runs to
// completion before any state is visible to the caller, and the solve for a
// step finishes for all bodies before any body integrates that step.
type Simulation struct {
	params  Params
	solver  physics.Solver
	bodies  []*physics.Body
	trails  []*Trail
	initial []physics.Body
	time    float64
}

// New builds a simulation over the given bodies. The body set is fixed for
// the lifetime of the run; initial state is retained so Reset can restore it.
func New(params Params, bodies []*physics.Body) (*Simulation, error) {
	if params.DeltaT <= 0 {
		return nil, fmt.Errorf("delta_t must be positive: got %g", params.DeltaT)
	}
	if params.StepsPerAdvance < 1 {
		return nil, fmt.Errorf("steps_per_advance must be at least 1: got %d", params.StepsPerAdvance)
	}
	if params.G <= 0 {
		return nil, fmt.Errorf("gravity_const must be positive: got %g", params.G)
	}
	if params.TrailMinSpacing < 0 {
		return nil, fmt.Errorf("trail spacing must not be negative: got %g", params.TrailMinSpacing)
	}
	if params.TrailMaxPoints < 2 {
		return nil, fmt.Errorf("trail max_points must be at least 2: got %d", params.TrailMaxPoints)
	}

	trails := make([]*Trail, len(bodies))
	initial := make([]physics.Body, len(bodies))
	for i, b := range bodies {
		trails[i] = NewTrail(params.TrailMinSpacing, params.TrailMaxPoints)
		initial[i] = *b
	}
	return &Simulation{
		params:  params,
		solver:  physics.Solver{G: params.G},
		bodies:  bodies,
		trails:  trails,
		initial: initial,
	}, nil
}

// Advance runs one configured batch of steps and returns the cumulative
// simulated time in seconds.
func (s *Simulation) Advance() (float64, error) {
	return s.AdvanceSteps(s.params.StepsPerAdvance)
}

// AdvanceSteps runs exactly n steps. Each step increments simulated time by
// DeltaT, solves forces over all bodies, then integrates every body. After
// the final step each body's position is committed to its trail. A solver
// failure aborts the batch with the remaining steps unrun; n < 1 is a no-op.
func (s *Simulation) AdvanceSteps(n int) (float64, error) {
	if n < 1 {
		return s.time, nil
	}
	for k := 0; k < n; k++ {
		s.time += s.params.DeltaT
		if err := s.solver.Solve(s.bodies); err != nil {
			return s.time, fmt.Errorf("solve at t=%gs: %w", s.time, err)
		}
		for _, b := range s.bodies {
			b.Step(s.params.DeltaT)
		}
	}
	for i, b := range s.bodies {
		s.trails[i].Record(b.Pos)
	}
	return s.time, nil
}

// Time returns the cumulative simulated time in seconds.
func (s *Simulation) Time() float64 {
	return s.time
}

// Days returns the cumulative simulated time in days.
func (s *Simulation) Days() float64 {
	return s.time / 86400
}

// Params returns the stepping constants the simulation was built with.
func (s *Simulation) Params() Params {
	return s.params
}

// Bodies returns the body list. The slice is a copy; the bodies themselves
// are shared and expose live state to the renderer.
func (s *Simulation) Bodies() []*physics.Body {
	out := make([]*physics.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Trail returns the stored trail points for body i, oldest first.
func (s *Simulation) Trail(i int) []r2.Vec {
	return s.trails[i].Points()
}

// Reset restores every body to its construction state, clears all trails,
// and zeroes the simulated time.
func (s *Simulation) Reset() {
	for i := range s.bodies {
		*s.bodies[i] = s.initial[i]
	}
	for _, t := range s.trails {
		t.Reset()
	}
	s.time = 0
}
