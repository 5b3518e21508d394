package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvewalk/config"
	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/explore"
	"github.com/katalvlaran/curvewalk/gridgraph"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	app := newApp(logger)
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(context.Background(), append([]string{"curvewalk"}, args...))
	return out.String(), err
}

func TestCurveCommand(t *testing.T) {
	out, err := runApp(t, "curve", "-i", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0\n1 0 1\n2 1 1\n3 1 0\n", out)
}

func TestRunCommand_SmallGrid(t *testing.T) {
	// 2×2 grid, one 1×1 obstacle away from the start
	out, err := runApp(t, "run", "-i", "1", "--coverage", "0.25", "--seed", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Minimal possible moves: 3", lines[0])
}

func TestRunCommand_ZeroCoverage(t *testing.T) {
	_, err := runApp(t, "run", "-i", "2", "--coverage", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, config.ErrCoverageRatio)
}

func TestRunCommand_Obstacles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.json")
	geoPath := filepath.Join(dir, "tour.geojson")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"iteration": 4, "coverage_ratio": 0.2, "seed": 7}`), 0o600))

	out, err := runApp(t, "run", "--config", cfgPath, "--geojson", geoPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Minimal possible moves: "))
	assert.True(t, strings.HasPrefix(lines[1], "Actual moves: "))
	assert.True(t, strings.HasPrefix(lines[2], "Overshot moves by "))

	data, err := os.ReadFile(geoPath)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.NotEmpty(t, fc.Features)

	// the same seed reproduces the same run
	again, err := runApp(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRunCommand_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"iteration": 0}`), 0o600))

	_, err := runApp(t, "run", "--config", cfgPath)
	require.ErrorIs(t, err, config.ErrIteration)

	out, err := runApp(t, "run", "--config", cfgPath, "-i", "1", "--coverage", "0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "Minimal possible moves: 3")
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	_, err := runApp(t, "run", "-i", "2", "--coverage", "1.5", "--min-size", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, config.ErrCoverageRatio)
	assert.ErrorIs(t, err, config.ErrObstacleSize)
}

func TestRunCommand_BadLogLevel(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "curve")
	require.Error(t, err)
}

// brokenEdge denies the edge 1-2 between consecutive curve cells.
type brokenEdge struct{ *gridgraph.GridGraph }

func (b brokenEdge) HasEdge(i, j int) bool {
	if min(i, j) == 1 && max(i, j) == 2 {
		return false
	}
	return b.GridGraph.HasEdge(i, j)
}

type openField struct{}

func (openField) Blocked(int) bool { return false }

func TestErrorStack(t *testing.T) {
	assert.Empty(t, errorStack(os.ErrNotExist))

	c, err := curve.New(2)
	require.NoError(t, err)
	g, err := gridgraph.Build(c)
	require.NoError(t, err)

	_, err = explore.Explore(brokenEdge{g}, openField{})
	require.ErrorIs(t, err, explore.ErrGraphInvariant)
	assert.Contains(t, errorStack(err), "explore")
}
