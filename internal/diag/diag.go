// Package diag computes conserved-quantity diagnostics over a run: kinetic
// and potential energy, total energy, and net momentum. The explicit Euler
// integrator drifts energy slowly by design; these numbers make the drift
// visible instead of hiding it.
package diag

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jask/orrery/internal/physics"
	"github.com/jask/orrery/internal/sim"
)

// KineticEnergy returns Σ ½mv² over the bodies in kg·km²/s².
func KineticEnergy(bodies []*physics.Body) float64 {
	var e float64
	for _, b := range bodies {
		e += 0.5 * b.Mass * r2.Norm2(b.Vel)
	}
	return e
}

// PotentialEnergy returns the pairwise gravitational potential
// Σ −g·mᵢ·mⱼ/d over all unordered pairs, in kg·km²/s².
func PotentialEnergy(bodies []*physics.Body, g float64) float64 {
	var e float64
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			d := r2.Norm(r2.Sub(bodies[j].Pos, bodies[i].Pos))
			e -= g * bodies[i].Mass * bodies[j].Mass / d
		}
	}
	return e
}

// Momentum returns the vector sum of m·v over the bodies in kg·km/s.
func Momentum(bodies []*physics.Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		p = r2.Add(p, b.Momentum())
	}
	return p
}

// Sample is one diagnostics reading at a point in simulated time.
type Sample struct {
	Days      float64
	Kinetic   float64
	Potential float64
	Total     float64
	Momentum  r2.Vec
}

// Samples older than this are dropped; enough history for a chart without
// growing with run length.
const maxSamples = 512

// Recorder accumulates samples over a run. Each run carries a fresh ID so
// exported rows from different runs stay distinguishable.
type Recorder struct {
	RunID   string
	samples []Sample
}

func NewRecorder() *Recorder {
	return &Recorder{RunID: uuid.NewString()}
}

// Capture reads the simulation's current state and appends one sample,
// returning it. History is bounded to the most recent maxSamples readings.
func (r *Recorder) Capture(s *sim.Simulation) Sample {
	bodies := s.Bodies()
	ke := KineticEnergy(bodies)
	pe := PotentialEnergy(bodies, s.Params().G)
	smp := Sample{
		Days:      s.Days(),
		Kinetic:   ke,
		Potential: pe,
		Total:     ke + pe,
		Momentum:  Momentum(bodies),
	}
	r.samples = append(r.samples, smp)
	if len(r.samples) > maxSamples {
		r.samples = r.samples[len(r.samples)-maxSamples:]
	}
	return smp
}

// Samples returns a copy of the recorded history, oldest first.
func (r *Recorder) Samples() []Sample {
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Latest returns the most recent sample, if any.
func (r *Recorder) Latest() (Sample, bool) {
	if len(r.samples) == 0 {
		return Sample{}, false
	}
	return r.samples[len(r.samples)-1], true
}

// Reset drops the history and issues a fresh run ID.
func (r *Recorder) Reset() {
	r.samples = nil
	r.RunID = uuid.NewString()
}
