package physics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultG is Newton's gravitational constant in km³·kg⁻¹·s⁻².
const DefaultG = 6.6743e-20

// ErrCoincidentBodies reports two bodies at the exact same position, where
// the force direction is undefined.
var ErrCoincidentBodies = errors.New("coincident bodies")

// Solver computes pairwise Newtonian gravity over a body list. It keeps no
// state of its own; Solve writes each body's Force field as a side effect.
type Solver struct {
	G float64
}

// Solve assigns every body the net gravitational force exerted on it by all
// the others. Each unordered pair is visited exactly once; the two bodies of
// a pair receive equal and opposite contributions, so the system's total
// momentum change per step is exactly zero. Bodies with no pairs (N of 0 or
// 1) end up with a zero force. On a coincident pair the error names both
// bodies and no Force field is modified.
func (s Solver) Solve(bodies []*Body) error {
	acc := make([]r2.Vec, len(bodies))
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			delta := r2.Sub(bodies[j].Pos, bodies[i].Pos)
			dist := r2.Norm(delta)
			if dist == 0 {
				return fmt.Errorf("%w: %q and %q at (%g, %g)",
					ErrCoincidentBodies, bodies[i].Name, bodies[j].Name, bodies[i].Pos.X, bodies[i].Pos.Y)
			}

			mag := s.G * bodies[i].Mass * bodies[j].Mass / (dist * dist)

			// Decompose along the angle between the two positions.
			theta := math.Atan2(delta.Y, delta.X)
			f := r2.Vec{X: mag * math.Cos(theta), Y: mag * math.Sin(theta)}

			acc[i] = r2.Add(acc[i], f)
			acc[j] = r2.Sub(acc[j], f)
		}
	}
	for i, b := range bodies {
		b.Force = acc[i]
	}
	return nil
}
