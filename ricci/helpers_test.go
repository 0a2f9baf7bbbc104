package ricci_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/ricci"
)

// metric is a dense circle-packing metric plus target curvatures.
type metric struct {
	vrm *propmap.Slice[mesh.Vertex, float64]
	ewm *propmap.Slice[mesh.Edge, float64]
	vcm *propmap.Slice[mesh.Vertex, float64]
}

// newMetric computes the initial metric of m with zero targets.
func newMetric(t testing.TB, m *mesh.Mesh) metric {
	t.Helper()
	mt := metric{
		vrm: propmap.NewSlice[mesh.Vertex, float64](m.NumVertices()),
		ewm: propmap.NewSlice[mesh.Edge, float64](m.NumEdges()),
		vcm: propmap.NewSlice[mesh.Vertex, float64](m.NumVertices()),
	}
	require.NoError(t, ricci.CirclePackingMetric(m, mt.vrm, mt.ewm))
	return mt
}

// curvatures returns κ of every vertex under the metric.
func (mt metric) curvatures(m *mesh.Mesh) []float64 {
	k := propmap.NewSlice[mesh.Vertex, float64](m.NumVertices())
	ricci.Curvatures(m, mt.vrm, mt.ewm, k)
	return k.Values()
}

func mustMesh(t testing.TB) func(*mesh.Mesh, error) *mesh.Mesh {
	return func(m *mesh.Mesh, err error) *mesh.Mesh {
		t.Helper()
		require.NoError(t, err)
		return m
	}
}
