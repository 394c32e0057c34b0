package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoRockToml = `name = "two-rocks"
description = "a pair of asteroids"
world_width = 1.0e6

[[bodies]]
name = "castor"
mass = 1.0e20
radius = 100.0
pos = [-5.0e4, 0.0]
vel = [0.0, -0.5]
hue = 0.3

[[bodies]]
name = "pollux"
mass = 2.0e20
radius = 140.0
display_scale = 10.0
pos = [5.0e4, 0.0]
vel = [0.0, 0.25]
hue = 0.7
`

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rocks.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoRockToml), 0o600))

	sc, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "two-rocks", sc.Name)
	require.Equal(t, "a pair of asteroids", sc.Description)
	require.Equal(t, 1e6, sc.WorldWidth)
	require.Len(t, sc.Bodies, 2)

	require.Equal(t, "castor", sc.Bodies[0].Name)
	require.Equal(t, 1e20, sc.Bodies[0].Mass)
	require.Equal(t, [2]float64{-5e4, 0}, sc.Bodies[0].Pos)
	require.Equal(t, [2]float64{0, -0.5}, sc.Bodies[0].Vel)
	require.Equal(t, 0.3, sc.Bodies[0].Hue)

	require.Equal(t, 10.0, sc.Bodies[1].DisplayScale)

	bodies, err := sc.Build()
	require.NoError(t, err)
	require.Equal(t, 1400.0, bodies[1].Radius)
}

func TestLoadFileWithoutWorldWidthDefersToCaller(t *testing.T) {
	t.Parallel()

	body := `name = "drifter"

[[bodies]]
name = "rock"
mass = 1.0e20
radius = 50.0
`
	path := filepath.Join(t.TempDir(), "drifter.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	sc, err := LoadFile(path)
	require.NoError(t, err)
	require.Zero(t, sc.WorldWidth)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFileRejectsMalformedToml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = [unterminated"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.toml")
}

func TestLoadFileValidates(t *testing.T) {
	t.Parallel()

	bad := `name = "bad"
world_width = 1.0e6

[[bodies]]
name = "glow"
mass = 1.0e20
radius = 10.0
hue = 2.5
`
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "hue")
}
