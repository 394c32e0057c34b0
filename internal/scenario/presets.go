package scenario

import "github.com/jask/orrery/internal/physics"

// Inner solar system values: masses in kg, radii and orbital distances in
// km, orbital speeds in km/s.
const (
	earthMass = 5.9722e24

	sunRadius     = 695700.0
	mercuryRadius = 2439.4
	venusRadius   = 6052.0
	earthRadius   = 6378.1

	mercuryDist = 5.79e7
	venusDist   = 1.082e8
	earthDist   = 1.496e8

	mercurySpeed = 47.0
	venusSpeed   = 35.02
	earthSpeed   = 29.7848
)

// Builtins returns the built-in scenarios in display order. Callers get
// fresh copies and may mutate them freely.
func Builtins() []Scenario {
	return []Scenario{Solar(), Binary(), Cloud(defaultCloudRocks, defaultCloudSeed)}
}

// Solar is the Sun with the three innermost planets, bodies listed
// heaviest first. Radii carry the usual display exaggeration so the planets
// stay visible against a 5e8 km wide world.
func Solar() Scenario {
	return Scenario{
		Name:        "solar",
		Description: "the Sun with Mercury, Venus and Earth on their orbits",
		WorldWidth:  5e8,
		Bodies: []BodySpec{
			{Name: "Sun", Mass: 333000 * earthMass, Radius: sunRadius, DisplayScale: 20, Hue: 0.2},
			{Name: "Mercury", Mass: 0.0553 * earthMass, Radius: mercuryRadius, DisplayScale: 1000,
				Pos: [2]float64{mercuryDist, 0}, Vel: [2]float64{0, mercurySpeed}, Hue: 0.4},
			{Name: "Venus", Mass: 0.815 * earthMass, Radius: venusRadius, DisplayScale: 1000,
				Pos: [2]float64{venusDist, 0}, Vel: [2]float64{0, venusSpeed}, Hue: 0.8},
			{Name: "Earth", Mass: earthMass, Radius: earthRadius, DisplayScale: 1000,
				Pos: [2]float64{earthDist, 0}, Vel: [2]float64{0, earthSpeed}, Hue: 0.6},
		},
	}
}

// Binary is two equal suns on a mutual circular orbit about their
// barycenter. Each star orbits at half the separation, so its circular
// speed is taken against half the companion mass.
func Binary() Scenario {
	const (
		starMass = 333000 * earthMass
		sep      = 1e8
	)
	speed := CircularOrbitSpeed(physics.DefaultG, starMass/2, sep)
	return Scenario{
		Name:        "binary",
		Description: "two equal suns locked in a mutual circular orbit",
		WorldWidth:  4e8,
		Bodies: []BodySpec{
			{Name: "Castor", Mass: starMass, Radius: sunRadius, DisplayScale: 20,
				Pos: [2]float64{-sep / 2, 0}, Vel: [2]float64{0, -speed}, Hue: 0.12},
			{Name: "Pollux", Mass: starMass, Radius: sunRadius, DisplayScale: 20,
				Pos: [2]float64{sep / 2, 0}, Vel: [2]float64{0, speed}, Hue: 0.55},
		},
	}
}
