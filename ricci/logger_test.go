package ricci_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/ricci"
)

func runUniformIcosahedron(t *testing.T, verbose bool) {
	t.Helper()
	m := mesh.Icosahedron()
	mt := newMetric(t, m)
	for v := range m.Vertices() {
		mt.vcm.Put(v, math.Pi/3)
	}
	st := ricci.DefaultSettings()
	st.Verbose = verbose
	res, err := ricci.RicciFlow(m, mt.vrm, mt.ewm, mt.vcm, st)
	require.NoError(t, err)
	require.Equal(t, ricci.StatusOptimal, res.Status)
	require.Zero(t, res.Iterations)
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { ricci.SetLogger(nil) })

	var buf bytes.Buffer
	ricci.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	require.NotNil(t, ricci.Logger())

	runUniformIcosahedron(t, true)
	require.Contains(t, buf.String(), "ricci flow")
	require.Contains(t, buf.String(), "solver=gradient-descent")
	require.Contains(t, buf.String(), "optimization done")

	// progress goes to Debug unless verbose
	buf.Reset()
	runUniformIcosahedron(t, false)
	require.Empty(t, buf.String())

	// rejected targets are a warning
	m := mesh.Icosahedron()
	mt := newMetric(t, m)
	_, err := ricci.RicciFlow(m, mt.vrm, mt.ewm, mt.vcm, ricci.DefaultSettings())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "not admissible")

	// nil restores the silent logger
	ricci.SetLogger(nil)
	buf.Reset()
	runUniformIcosahedron(t, true)
	require.Empty(t, buf.String())
	require.False(t, ricci.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestLogger_SilentByDefault(t *testing.T) {
	ricci.SetLogger(nil)
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, slog.LevelError + 100} {
		require.False(t, ricci.Logger().Enabled(context.Background(), lvl), "level %v", lvl)
	}
}
