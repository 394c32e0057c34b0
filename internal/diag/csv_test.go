package diag

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jask/orrery/internal/physics"
	"github.com/jask/orrery/internal/sim"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	drifter := mustBody(t, "drifter", r2.Vec{}, r2.Vec{X: 1}, 1e20)
	s, err := sim.New(testParams(), []*physics.Body{drifter})
	require.NoError(t, err)

	rec := NewRecorder()
	rec.Capture(s)
	_, err = s.Advance()
	require.NoError(t, err)
	rec.Capture(s)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per sample")
	require.Equal(t, []string{"run_id", "days", "kinetic", "potential", "total", "momentum_x", "momentum_y"}, rows[0])

	require.Equal(t, rec.RunID, rows[1][0])
	require.Equal(t, rec.RunID, rows[2][0])

	days, err := strconv.ParseFloat(rows[2][1], 64)
	require.NoError(t, err)
	require.InDelta(t, 10000.0/86400.0, days, 1e-12)

	kinetic, err := strconv.ParseFloat(rows[2][2], 64)
	require.NoError(t, err)
	require.InDelta(t, 0.5*1e20, kinetic, 1e8, "½mv² for the drifting body")
}

func TestExportFile(t *testing.T) {
	t.Parallel()

	s, err := sim.New(testParams(), nil)
	require.NoError(t, err)
	rec := NewRecorder()
	rec.Capture(s)

	dir := t.TempDir()
	path := filepath.Join(dir, "run.csv")
	require.NoError(t, rec.ExportFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("run_id,")))

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file must not survive the rename")

	// Exporting again overwrites cleanly.
	rec.Capture(s)
	require.NoError(t, rec.ExportFile(path))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(again), len(data))
}
