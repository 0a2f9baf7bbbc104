package ricci_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/ricci"
	"github.com/katalvlaran/ricciflow/seam"
)

func TestParameterizer_Torus(t *testing.T) {
	m, err := mesh.Torus(3, 1, 12, 8)
	require.NoError(t, err)
	sm, err := seam.NewWithCutGraph(m)
	require.NoError(t, err)

	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)
	require.Equal(t, ricci.DefaultSettings(), p.SolverSettings())
	for v := range m.Vertices() {
		require.Zero(t, p.TargetCurvature(v))
		require.Greater(t, p.Radius(v), 0.0)
	}

	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	vpm := propmap.NewSlice[seam.Vertex, bool](sm.NumVertices())
	require.NoError(t, p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, vpm))
	require.Equal(t, ricci.StatusOptimal, p.Result().Status)
	for _, ok := range vpm.Values() {
		require.True(t, ok)
	}
}

// TestParameterize_Generic drives the parameterizer through the interface.
func TestParameterize_Generic(t *testing.T) {
	m, err := mesh.Torus(3, 1, 10, 6)
	require.NoError(t, err)
	sm, err := seam.NewWithCutGraph(m)
	require.NoError(t, err)
	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)

	uvm := propmap.NewHash[seam.Vertex, r2.Vec]()
	require.NoError(t, ricci.Parameterize(sm, p, mesh.NullHalfedge, uvm))
	require.Equal(t, sm.NumVertices(), uvm.Len())

	require.ErrorIs(t, ricci.Parameterize(nil, p, mesh.NullHalfedge, uvm), ricci.ErrNilMesh)
}

func TestParameterizer_AddCone(t *testing.T) {
	m, err := mesh.Icosphere(1)
	require.NoError(t, err)
	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)

	require.NoError(t, p.AddCone(3, 0.5))
	require.InDelta(t, math.Pi, p.TargetCurvature(3), 1e-15)
	require.NoError(t, p.AddCone(3, 0.25))
	require.InDelta(t, math.Pi/2, p.TargetCurvature(3), 1e-15)

	require.ErrorIs(t, p.AddCone(mesh.Vertex(m.NumVertices()), 1), mesh.ErrVertexNotFound)
	require.ErrorIs(t, p.AddCone(-1, 1), mesh.ErrVertexNotFound)
}

// TestParameterizer_Cones flattens a sphere with four π cones over a cut
// reaching every cone: no face flips and the layout keeps the metric.
func TestParameterizer_Cones(t *testing.T) {
	m, err := mesh.Icosphere(2)
	require.NoError(t, err)

	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)
	require.Empty(t, p.Cones())
	for _, v := range []mesh.Vertex{8, 0, 5, 3} {
		require.NoError(t, p.AddCone(v, 0.5))
	}
	require.Equal(t, []mesh.Vertex{0, 3, 5, 8}, p.Cones())

	sm, err := seam.NewWithCutGraph(m, p.Cones()...)
	require.NoError(t, err)
	require.Positive(t, sm.NumSeams())
	require.Equal(t, 1, sm.NumBoundaries())

	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	require.NoError(t, p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, nil))
	require.Equal(t, ricci.StatusOptimal, p.Result().Status)

	for f := range sm.Faces() {
		require.Greater(t, signedArea(sm, uvm, f), 0.0, "face %d", f)
	}
	for i := 0; i < m.NumHalfedges(); i++ {
		h := mesh.Halfedge(i)
		want := p.EdgeLength(m.Edge(h))
		got := r2.Norm(r2.Sub(uvm.Get(sm.Target(h)), uvm.Get(sm.Source(h))))
		require.InEpsilon(t, want, got, 1e-3, "halfedge %d", h)
	}
}

// TestParameterizer_Rejected: inadmissible targets still produce a layout
// but the call reports ErrWrongParameter.
func TestParameterizer_Rejected(t *testing.T) {
	m, err := mesh.Torus(3, 1, 12, 8)
	require.NoError(t, err)
	sm, err := seam.NewWithCutGraph(m)
	require.NoError(t, err)
	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)
	require.NoError(t, p.AddCone(0, 0.25))
	r0 := p.Radius(0)

	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	vpm := propmap.NewSlice[seam.Vertex, bool](sm.NumVertices())
	err = p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, vpm)
	require.ErrorIs(t, err, ricci.ErrWrongParameter)
	require.Equal(t, ricci.StatusInvalidInput, p.Result().Status)
	require.Equal(t, r0, p.Radius(0))
	for _, ok := range vpm.Values() {
		require.True(t, ok)
	}
}

func TestParameterizer_Errors(t *testing.T) {
	_, err := ricci.NewParameterizer(nil)
	require.ErrorIs(t, err, ricci.ErrNilMesh)

	m := mesh.Octahedron()
	other := mesh.Octahedron()
	p, err := ricci.NewParameterizer(m)
	require.NoError(t, err)

	sm, err := seam.New(other, nil)
	require.NoError(t, err)
	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	require.ErrorIs(t, p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, nil), ricci.ErrWrongParameter)
	require.ErrorIs(t, p.Parameterize(nil, mesh.NullHalfedge, uvm, nil, nil), ricci.ErrNilMesh)

	sm, err = seam.New(m, nil)
	require.NoError(t, err)
	st := ricci.DefaultSettings()
	st.Type = ricci.SolverNewton
	p.SetSolverSettings(st)
	require.ErrorIs(t, p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, nil), ricci.ErrSolverUnsupported)
}
