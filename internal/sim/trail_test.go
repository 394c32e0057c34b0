package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrailFirstTwoPointsAlwaysAppend(t *testing.T) {
	t.Parallel()

	tr := NewTrail(5e6, 100)
	tr.Record(r2.Vec{})
	tr.Record(r2.Vec{X: 1}) // well inside the threshold, still stored

	require.Equal(t, 2, tr.Len())
	require.Equal(t, []r2.Vec{{}, {X: 1}}, tr.Points())
}

func TestTrailCollapsesNearbyPoints(t *testing.T) {
	t.Parallel()

	tr := NewTrail(5e6, 100)
	tr.Record(r2.Vec{})
	tr.Record(r2.Vec{X: 6e6})

	// Within the threshold of the second-to-last point: the last point moves,
	// the count does not grow.
	tr.Record(r2.Vec{X: 4e6})
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []r2.Vec{{}, {X: 4e6}}, tr.Points())

	// A slow drift keeps sliding the last point along.
	tr.Record(r2.Vec{X: 4.5e6})
	tr.Record(r2.Vec{X: 4.9e6})
	require.Equal(t, 2, tr.Len())
	require.Equal(t, r2.Vec{X: 4.9e6}, tr.Points()[1])

	// Once the body is far enough from the second-to-last point, append.
	tr.Record(r2.Vec{X: 5.5e6})
	require.Equal(t, 3, tr.Len())
}

func TestTrailCapEvictsOldest(t *testing.T) {
	t.Parallel()

	tr := NewTrail(1, 100)
	for i := 0; i < 150; i++ {
		tr.Record(r2.Vec{X: float64(i) * 10})
		require.LessOrEqual(t, tr.Len(), 100)
	}

	require.Equal(t, 100, tr.Len())
	pts := tr.Points()
	require.Equal(t, r2.Vec{X: 500}, pts[0], "oldest surviving point is the 51st recorded")
	require.Equal(t, r2.Vec{X: 1490}, pts[99])
}

func TestTrailPointsReturnsCopy(t *testing.T) {
	t.Parallel()

	tr := NewTrail(1, 100)
	tr.Record(r2.Vec{X: 1})
	tr.Record(r2.Vec{X: 10})

	pts := tr.Points()
	pts[0] = r2.Vec{X: -99}
	require.Equal(t, r2.Vec{X: 1}, tr.Points()[0])
}

func TestTrailReset(t *testing.T) {
	t.Parallel()

	tr := NewTrail(1, 100)
	for i := 0; i < 10; i++ {
		tr.Record(r2.Vec{X: float64(i) * 5})
	}
	require.Equal(t, 10, tr.Len())

	tr.Reset()
	require.Equal(t, 0, tr.Len())
	require.Empty(t, tr.Points())
}

func TestTrailOrderIsOldestFirst(t *testing.T) {
	t.Parallel()

	tr := NewTrail(1, 100)
	for i := 0; i < 5; i++ {
		tr.Record(r2.Vec{X: float64(i) * 100})
	}
	pts := tr.Points()
	for i := 1; i < len(pts); i++ {
		require.Greater(t, pts[i].X, pts[i-1].X, fmt.Sprintf("point %d out of order", i))
	}
}
