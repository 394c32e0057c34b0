package physics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrNonPositiveMass rejects bodies whose mass is zero, negative, or not finite.
	ErrNonPositiveMass = errors.New("mass must be a positive finite number")
	// ErrNonPositiveRadius rejects bodies whose radius is zero, negative, or not finite.
	ErrNonPositiveRadius = errors.New("radius must be a positive finite number")
)

// Body is the physical state of one simulated object. Position is in km,
// velocity in km/s, mass in kg, radius in km, force in N. Force is written
// by the solver each step and consumed by the next Step call; it is
// overwritten on every solve, never accumulated across steps.
type Body struct {
	Name   string
	Pos    r2.Vec
	Vel    r2.Vec
	Mass   float64
	Radius float64
	Force  r2.Vec
}

// NewBody builds a body after validating its invariants. Arbitrary finite
// positions and velocities are accepted; mass and radius must be positive.
func NewBody(name string, pos, vel r2.Vec, mass, radius float64) (*Body, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return nil, fmt.Errorf("body %q: %w (got %g)", name, ErrNonPositiveMass, mass)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("body %q: %w (got %g)", name, ErrNonPositiveRadius, radius)
	}
	return &Body{Name: name, Pos: pos, Vel: vel, Mass: mass, Radius: radius}, nil
}

// Step advances the body by one explicit Euler step of dt seconds.
// The position update reads the pre-step velocity; the velocity update reads
// the pre-step force. First-order accuracy and the resulting slow energy
// drift over long runs are accepted properties of this integrator.
func (b *Body) Step(dt float64) {
	a := r2.Scale(1/b.Mass, b.Force)
	b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))
	b.Vel = r2.Add(b.Vel, r2.Scale(dt, a))
}

// Momentum returns mass times velocity in kg·km/s.
func (b *Body) Momentum() r2.Vec {
	return r2.Scale(b.Mass, b.Vel)
}
