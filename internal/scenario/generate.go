package scenario

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jask/orrery/internal/physics"
)

const (
	defaultCloudRocks = 12
	defaultCloudSeed  = 1
)

// Cloud generates a lone sun with n minor rocks on near-circular orbits,
// deterministic for a given seed. Orbit radii spread between 20% and 90% of
// the world half width; orbit direction and hue are drawn per rock. Rock
// masses stay far below the sun's so the generated system is stable enough
// to watch.
func Cloud(n int, seed int64) Scenario {
	const (
		width   = 5e8
		sunMass = 333000 * earthMass
	)
	rng := rand.New(rand.NewSource(seed))

	bodies := make([]BodySpec, 0, n+1)
	bodies = append(bodies, BodySpec{Name: "Sun", Mass: sunMass, Radius: sunRadius, DisplayScale: 20, Hue: 0.2})
	for i := 0; i < n; i++ {
		dist := width / 2 * (0.2 + 0.7*rng.Float64())
		angle := rng.Float64() * 2 * math.Pi
		speed := CircularOrbitSpeed(physics.DefaultG, sunMass, dist)
		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1
		}
		bodies = append(bodies, BodySpec{
			Name:         fmt.Sprintf("rock-%02d", i+1),
			Mass:         earthMass * (0.01 + rng.Float64()),
			Radius:       2000 + rng.Float64()*5000,
			DisplayScale: 1000,
			Pos:          [2]float64{dist * math.Cos(angle), dist * math.Sin(angle)},
			Vel:          [2]float64{-dir * speed * math.Sin(angle), dir * speed * math.Cos(angle)},
			Hue:          rng.Float64(),
		})
	}
	return Scenario{
		Name:        "cloud",
		Description: fmt.Sprintf("%d random rocks orbiting a lone sun (seed %d)", n, seed),
		WorldWidth:  width,
		Bodies:      bodies,
	}
}
