package ricci

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/seam"
)

const methodParameterize = "Parameterizer.Parameterize"

// SurfaceParameterizer computes UV coordinates for a seam mesh. border and
// vim follow the common parameterizer calling convention; an implementation
// may ignore them.
type SurfaceParameterizer interface {
	Parameterize(
		sm *seam.Mesh,
		border mesh.Halfedge,
		uvm propmap.Map[seam.Vertex, r2.Vec],
		vim propmap.Map[seam.Vertex, int],
		vpm propmap.Map[seam.Vertex, bool],
	) error
}

// Parameterizer runs RicciFlow followed by EmbedCirclePackingMetric on one
// mesh. It owns the metric and the target curvatures, so repeated calls
// resume from the metric of the previous call.
type Parameterizer struct {
	m        *mesh.Mesh
	vrm      *propmap.Hash[mesh.Vertex, float64]
	ewm      *propmap.Hash[mesh.Edge, float64]
	vcm      *propmap.Hash[mesh.Vertex, float64]
	settings Settings
	result   Result
}

var _ SurfaceParameterizer = (*Parameterizer)(nil)

// NewParameterizer computes the initial circle-packing metric of m and sets
// every target curvature to 0 (a flat metric, admissible when χ = 0).
func NewParameterizer(m *mesh.Mesh) (*Parameterizer, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	p := &Parameterizer{
		m:        m,
		vrm:      propmap.NewHash[mesh.Vertex, float64](),
		ewm:      propmap.NewHash[mesh.Edge, float64](),
		vcm:      propmap.NewHash[mesh.Vertex, float64](),
		settings: DefaultSettings(),
	}
	if err := CirclePackingMetric(m, p.vrm, p.ewm); err != nil {
		return nil, err
	}
	for v := range m.Vertices() {
		p.vcm.Put(v, 0)
	}
	return p, nil
}

// SetSolverSettings replaces the settings used by Parameterize.
func (p *Parameterizer) SetSolverSettings(s Settings) { p.settings = s }

// SolverSettings returns the settings used by Parameterize.
func (p *Parameterizer) SolverSettings() Settings { return p.settings }

// AddCone sets the target curvature of v to 2kπ.
func (p *Parameterizer) AddCone(v mesh.Vertex, k float64) error {
	if !p.m.HasVertex(v) {
		return ricciErrorf("Parameterizer.AddCone", mesh.ErrVertexNotFound, "vertex %d of %d", v, p.m.NumVertices())
	}
	p.vcm.Put(v, 2*k*math.Pi)
	return nil
}

// TargetCurvature returns the target curvature of v.
func (p *Parameterizer) TargetCurvature(v mesh.Vertex) float64 { return p.vcm.Get(v) }

// Radius returns the current radius of v.
func (p *Parameterizer) Radius(v mesh.Vertex) float64 { return p.vrm.Get(v) }

// EdgeLength returns the length of e under the current metric.
func (p *Parameterizer) EdgeLength(e mesh.Edge) float64 { return EdgeLength(p.m, e, p.vrm, p.ewm) }

// Cones returns the vertices with a non-zero target curvature in increasing
// order. Cut the mesh with seam.NewWithCutGraph(m, p.Cones()...) so the
// layout can open up around them.
func (p *Parameterizer) Cones() []mesh.Vertex {
	var cones []mesh.Vertex
	for v := range p.m.Vertices() {
		if p.vcm.Get(v) != 0 {
			cones = append(cones, v)
		}
	}
	return cones
}

// Result returns the outcome of the last RicciFlow run.
func (p *Parameterizer) Result() Result { return p.result }

// Parameterize evolves the metric toward the target curvatures and lays it
// out over sm into uvm. border and vim are unused. vpm, when not nil,
// receives the visited flags.
//
// The layout runs even when the targets are rejected, so uvm is always
// filled from the current metric; the call then returns ErrWrongParameter.
func (p *Parameterizer) Parameterize(
	sm *seam.Mesh,
	border mesh.Halfedge,
	uvm propmap.Map[seam.Vertex, r2.Vec],
	vim propmap.Map[seam.Vertex, int],
	vpm propmap.Map[seam.Vertex, bool],
) error {
	_, _ = border, vim
	if sm == nil {
		return ErrNilMesh
	}
	if sm.Underlying() != p.m {
		return ricciErrorf(methodParameterize, ErrWrongParameter, "seam mesh cuts a different mesh")
	}

	res, err := RicciFlow(p.m, p.vrm, p.ewm, p.vcm, p.settings)
	if err != nil {
		return err
	}
	p.result = res

	var opts []EmbedOption
	if vpm != nil {
		opts = append(opts, WithVisited(vpm))
	}
	if err := EmbedCirclePackingMetric(p.m, p.vrm, p.ewm, sm, uvm, opts...); err != nil {
		return err
	}

	if res.Status == StatusInvalidInput {
		return ricciErrorf(methodParameterize, ErrWrongParameter, "target curvatures rejected")
	}
	return nil
}

// Parameterize runs p over sm with fresh index and visited maps, as the
// generic calling convention does.
func Parameterize(sm *seam.Mesh, p SurfaceParameterizer, border mesh.Halfedge, uvm propmap.Map[seam.Vertex, r2.Vec]) error {
	if sm == nil {
		return ErrNilMesh
	}
	vim := propmap.NewHash[seam.Vertex, int]()
	for sv := range sm.Vertices() {
		vim.Put(sv, int(sv))
	}
	vpm := propmap.NewSlice[seam.Vertex, bool](sm.NumVertices())

	return p.Parameterize(sm, border, uvm, vim, vpm)
}
