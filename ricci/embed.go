// SPDX-License-Identifier: MIT
// Package: ricciflow/ricci
//
// embed.go — breadth-first planar layout of a metric over a seam mesh.
//
// Layout:
//  1. Root face with halfedges h₀ → h₁ → h₂: Target(h₀) at (0,0),
//     Target(h₁) at (l(h₁), 0), Target(h₂) at l(h₀)·(cos θ, sin θ) where θ
//     is the corner angle at Target(h₀). The root face is counter-clockwise.
//  2. FIFO queue of faces. A face reached across a halfedge o places its
//     third vertex at the intersection of the circles around Source(o) and
//     Target(o) with radii l(Prev(o)) and l(Next(o)), taking the root for
//     which (p_t − p_s) × (p_k − p_s) > 0 so every face stays
//     counter-clockwise.
//  3. Seam and border halfedges are never crossed.
//
// A vertex is placed once, by the first face that reaches it. The result is
// deterministic for a fixed metric and root face.
//
// Complexity: O(V + E + F) time, O(F) extra space.

package ricci

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/seam"
)

const methodEmbed = "EmbedCirclePackingMetric"

// EmbedOption configures EmbedCirclePackingMetric. Invalid values are
// recorded and reported as ErrOptionViolation when the embedding runs.
type EmbedOption func(*EmbedOptions)

// EmbedOptions holds the embedding parameters.
type EmbedOptions struct {
	// Visited receives true for every placed seam vertex. A caller map is
	// cleared to false for every seam vertex first, so it may be reused
	// across calls. Nil means an internal map.
	Visited propmap.Map[seam.Vertex, bool]

	// RootFace is the face laid out first.
	RootFace mesh.Face

	err error
}

// DefaultEmbedOptions returns root face 0 and an internal visited map.
func DefaultEmbedOptions() EmbedOptions {
	return EmbedOptions{RootFace: 0}
}

// WithVisited uses vpm as the visited map.
func WithVisited(vpm propmap.Map[seam.Vertex, bool]) EmbedOption {
	return func(o *EmbedOptions) {
		if vpm != nil {
			o.Visited = vpm
		}
	}
}

// WithRootFace lays out f first. Negative faces are an option violation;
// faces past the end are reported when the mesh is known.
func WithRootFace(f mesh.Face) EmbedOption {
	return func(o *EmbedOptions) {
		if f < 0 {
			o.err = ricciErrorf("WithRootFace", ErrOptionViolation, "face %d", f)
			return
		}
		o.RootFace = f
	}
}

// embedder holds the mutable layout state.
type embedder struct {
	sm       *seam.Mesh
	lengths  []float64
	uvm      propmap.Map[seam.Vertex, r2.Vec]
	visited  propmap.Map[seam.Vertex, bool]
	faceDone []bool
	queue    []mesh.Face
	nv, nf   int
}

// EmbedCirclePackingMetric lays out the metric (vrm, ewm) of m in the plane
// over the seam mesh sm, writing one coordinate per seam vertex to uvm.
//
// sm must be a cut of m. Returns ErrDisconnectedMesh when some seam vertex
// or face was not reached and ErrDegenerateMetric when a coordinate is not
// finite (a triangle violating the triangle inequality).
func EmbedCirclePackingMetric(
	m *mesh.Mesh,
	vrm propmap.Map[mesh.Vertex, float64],
	ewm propmap.Map[mesh.Edge, float64],
	sm *seam.Mesh,
	uvm propmap.Map[seam.Vertex, r2.Vec],
	opts ...EmbedOption,
) error {
	if m == nil || sm == nil {
		return ErrNilMesh
	}
	o := DefaultEmbedOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if !m.HasFace(o.RootFace) {
		return ricciErrorf(methodEmbed, ErrOptionViolation, "root face %d of %d", o.RootFace, m.NumFaces())
	}
	if o.Visited == nil {
		o.Visited = propmap.NewSlice[seam.Vertex, bool](sm.NumVertices())
	} else {
		for sv := range sm.Vertices() {
			o.Visited.Put(sv, false)
		}
	}

	e := &embedder{
		sm:       sm,
		lengths:  EdgeLengths(m, vrm, ewm, nil),
		uvm:      uvm,
		visited:  o.Visited,
		faceDone: make([]bool, sm.NumFaces()),
		queue:    make([]mesh.Face, 0, sm.NumFaces()),
	}
	if err := e.layoutRoot(o.RootFace); err != nil {
		return err
	}
	if err := e.loop(); err != nil {
		return err
	}

	if e.nv != sm.NumVertices() || e.nf != sm.NumFaces() {
		return ricciErrorf(methodEmbed, ErrDisconnectedMesh,
			"placed %d of %d vertices, reached %d of %d faces", e.nv, sm.NumVertices(), e.nf, sm.NumFaces())
	}
	return nil
}

// length returns the metric length of h's edge.
func (e *embedder) length(h mesh.Halfedge) float64 {
	return e.lengths[e.sm.Underlying().Edge(h)]
}

// place stores p for sv and marks it visited.
func (e *embedder) place(sv seam.Vertex, p r2.Vec) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return ricciErrorf(methodEmbed, ErrDegenerateMetric, "seam vertex %d at (%g, %g)", sv, p.X, p.Y)
	}
	e.uvm.Put(sv, p)
	e.visited.Put(sv, true)
	e.nv++
	return nil
}

// layoutRoot places the three corners of f and seeds the queue.
func (e *embedder) layoutRoot(f mesh.Face) error {
	h0 := e.sm.FaceHalfedge(f)
	h1 := e.sm.Next(h0)
	h2 := e.sm.Next(h1)
	l0, l1, l2 := e.length(h0), e.length(h1), e.length(h2)

	cos := cosineLaw(l0, l1, l2)
	sin := math.Sqrt(1 - cos*cos)
	if err := e.place(e.sm.Target(h0), r2.Vec{}); err != nil {
		return err
	}
	if err := e.place(e.sm.Target(h1), r2.Vec{X: l1}); err != nil {
		return err
	}
	if err := e.place(e.sm.Target(h2), r2.Vec{X: cos * l0, Y: sin * l0}); err != nil {
		return err
	}

	e.faceDone[f] = true
	e.queue = append(e.queue, f)
	e.nf++
	return nil
}

// loop drains the face queue.
func (e *embedder) loop() error {
	for head := 0; head < len(e.queue); head++ {
		h0 := e.sm.FaceHalfedge(e.queue[head])
		h := h0
		for {
			if err := e.cross(h); err != nil {
				return err
			}
			h = e.sm.Next(h)
			if h == h0 {
				break
			}
		}
	}
	return nil
}

// cross enqueues the face across h, placing its third vertex if needed.
func (e *embedder) cross(h mesh.Halfedge) error {
	o, ok := e.sm.Opposite(h)
	if !ok {
		return nil
	}
	g := e.sm.Face(o)
	if e.faceDone[g] {
		return nil
	}
	e.faceDone[g] = true
	e.queue = append(e.queue, g)
	e.nf++

	vk := e.sm.Target(e.sm.Next(o))
	if e.visited.Get(vk) {
		return nil
	}
	ps := e.uvm.Get(e.sm.Source(o))
	pt := e.uvm.Get(e.sm.Target(o))
	return e.place(vk, apex(ps, pt, e.length(e.sm.Prev(o)), e.length(e.sm.Next(o))))
}

// apex returns the point at distance ls from ps and lt from pt lying to the
// left of ps→pt. If the circles do not meet, the closest point on the line
// is used; coincident ps and pt produce NaN.
func apex(ps, pt r2.Vec, ls, lt float64) r2.Vec {
	st := r2.Sub(pt, ps)
	d := r2.Norm(st)
	a := (ls*ls - lt*lt + d*d) / (2 * d)
	hh := math.Sqrt(math.Max(ls*ls-a*a, 0))
	pm := r2.Add(ps, r2.Scale(a/d, st))

	// left normal of st scaled to hh
	off := r2.Scale(hh/d, r2.Vec{X: -st.Y, Y: st.X})
	pk := r2.Add(pm, off)
	if r2.Cross(st, r2.Sub(pk, ps)) > 0 {
		return pk
	}
	return r2.Sub(pm, off)
}
