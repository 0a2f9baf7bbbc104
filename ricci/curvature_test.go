package ricci_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/ricci"
)

func TestCornerAngle_Equilateral(t *testing.T) {
	m := mesh.Tetrahedron()
	lengths := make([]float64, m.NumEdges())
	for i := range lengths {
		lengths[i] = 3
	}
	for i := 0; i < m.NumHalfedges(); i++ {
		require.InDelta(t, math.Pi/3, ricci.CornerAngle(m, mesh.Halfedge(i), lengths), 1e-12)
	}
	// the regular tetrahedron has defect 2π − 3·π/3 = π at every vertex
	for v := range m.Vertices() {
		require.InDelta(t, math.Pi, ricci.GaussianCurvature(m, v, lengths), 1e-12)
	}
}

// TestCornerAngle_Clamped checks that a triangle-inequality violation
// yields a straight or zero angle instead of NaN.
func TestCornerAngle_Clamped(t *testing.T) {
	m := mesh.Tetrahedron()
	h := m.FaceHalfedge(0)
	lengths := make([]float64, m.NumEdges())
	lengths[m.Edge(h)] = 1
	lengths[m.Edge(m.Next(h))] = 1
	lengths[m.Edge(m.Prev(h))] = 5
	require.Equal(t, math.Pi, ricci.CornerAngle(m, h, lengths))

	lengths[m.Edge(m.Prev(h))] = 0
	lengths[m.Edge(h)] = 4
	require.Zero(t, ricci.CornerAngle(m, h, lengths))
}

// TestGaussianCurvature_Grid checks the flat interior, straight boundary
// and square corners of a grid.
func TestGaussianCurvature_Grid(t *testing.T) {
	m, err := mesh.Grid(4, 3, 2, 1.5)
	require.NoError(t, err)

	k := propmap.NewSlice[mesh.Vertex, float64](m.NumVertices())
	ricci.EmbeddedCurvatures(m, k)

	corners := map[mesh.Vertex]bool{0: true, 4: true, 15: true, 19: true}
	for v := range m.Vertices() {
		switch {
		case corners[v]:
			require.InDelta(t, math.Pi/2, k.Get(v), 1e-12, "corner %d", v)
		default:
			require.InDelta(t, 0, k.Get(v), 1e-12, "vertex %d", v)
		}
	}
}

// TestGaussBonnet_Embedded checks Σκ = 2πχ for embedded lengths.
func TestGaussBonnet_Embedded(t *testing.T) {
	must := mustMesh(t)
	for _, m := range []*mesh.Mesh{
		must(mesh.Icosphere(2)),
		must(mesh.Torus(3, 1, 12, 8)),
		must(mesh.Grid(3, 3, 1, 1)),
		mesh.Octahedron(),
	} {
		k := propmap.NewSlice[mesh.Vertex, float64](m.NumVertices())
		ricci.EmbeddedCurvatures(m, k)
		require.NoError(t, ricci.CheckGaussBonnet(m, k))

		var sum float64
		for _, x := range k.Values() {
			sum += x
		}
		require.InDelta(t, 2*math.Pi*float64(m.EulerCharacteristic()), sum, 1e-9)
	}
}

func TestCheckGaussBonnet_Rejects(t *testing.T) {
	m := mesh.Icosahedron()
	k := propmap.NewSlice[mesh.Vertex, float64](m.NumVertices())
	err := ricci.CheckGaussBonnet(m, k)
	require.ErrorIs(t, err, ricci.ErrNotAdmissible)

	k.Put(3, 4*math.Pi)
	require.NoError(t, ricci.CheckGaussBonnet(m, k))

	k.Put(3, 4*math.Pi+1e-6)
	require.ErrorIs(t, ricci.CheckGaussBonnet(m, k), ricci.ErrNotAdmissible)
}

func TestApproxEqual(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{0, 1e-10, true},
		{0, 1e-8, false},
		{4 * math.Pi, 4*math.Pi + 1e-9, true},
		{1e6, 1e6 + 1e-4, true},
		{1e6, 1e6 + 1e-2, false},
		{math.NaN(), math.NaN(), false},
		{math.Inf(1), math.Inf(1), true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ricci.ApproxEqual(tc.a, tc.b), "%g vs %g", tc.a, tc.b)
	}
}
