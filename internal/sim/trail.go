package sim

import "gonum.org/v1/gonum/spatial/r2"

// Trail keeps a decimated, bounded history of one body's positions for path
// rendering. Points are world coordinates, oldest first. Consecutive stored
// points are never closer than the spacing threshold, except possibly the
// two most recent while the body moves slowly.
type Trail struct {
	points     []r2.Vec
	minSpacing float64
	maxPoints  int
}

// NewTrail builds an empty trail. minSpacing is the decimation threshold in
// km, maxPoints the retention cap.
func NewTrail(minSpacing float64, maxPoints int) *Trail {
	return &Trail{minSpacing: minSpacing, maxPoints: maxPoints}
}

// Record commits a new position. Positions closer than the spacing threshold
// to the second-to-last stored point replace the last point instead of
// growing the trail; once the cap is exceeded the oldest point is dropped.
func (t *Trail) Record(p r2.Vec) {
	switch {
	case len(t.points) < 2:
		t.points = append(t.points, p)
	case r2.Norm(r2.Sub(p, t.points[len(t.points)-2])) < t.minSpacing:
		t.points[len(t.points)-1] = p
	default:
		t.points = append(t.points, p)
	}
	if len(t.points) > t.maxPoints {
		t.points = t.points[1:]
	}
}

// Points returns a copy of the stored positions, oldest first.
func (t *Trail) Points() []r2.Vec {
	out := make([]r2.Vec, len(t.points))
	copy(out, t.points)
	return out
}

// Len reports the number of stored positions.
func (t *Trail) Len() int {
	return len(t.points)
}

// Reset discards all stored positions.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}
