// SPDX-License-Identifier: MIT
// Package: ricciflow/ricci
//
// metric.go — circle-packing metric: per-vertex radius, per-edge weight.
//
// Model:
//   • l(e)² = r_s² + r_t² + 2·r_s·r_t·w(e) for e = (s, t).
//   • Initial radius r(v) = min over the corners of v of the incircle
//     tangent length (l₁ + l₂ − l₃)/2.
//   • Initial weight w(e) = (l² − r_s² − r_t²)/(2·r_s·r_t), not clamped:
//     the pair (r, w) reproduces every input length exactly.
//   • Negative l² from rounding is clamped to 0 when lengths are derived.

package ricci

import (
	"math"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
)

const methodCirclePackingMetric = "CirclePackingMetric"

// CirclePackingMetric writes the initial radius of every vertex to vrm and
// the initial weight of every edge to ewm, both derived from the embedded
// edge lengths of m.
//
// Returns ErrDegenerateMetric (before writing anything) if some radius
// estimate is not a finite positive number, which happens for zero-length
// edges or collapsed triangles.
func CirclePackingMetric(m *mesh.Mesh, vrm propmap.Map[mesh.Vertex, float64], ewm propmap.Map[mesh.Edge, float64]) error {
	if m == nil {
		return ErrNilMesh
	}

	lens := make([]float64, m.NumEdges())
	for e := range m.Edges() {
		lens[e] = m.EdgeLength(e)
	}

	radii := make([]float64, m.NumVertices())
	for v := range radii {
		radii[v] = math.Inf(1)
	}
	for i := 0; i < m.NumHalfedges(); i++ {
		h := mesh.Halfedge(i)
		if m.IsBorder(h) {
			continue
		}
		// corner at Target(h): h and Next(h) touch it, Prev(h) is opposite
		r := (lens[m.Edge(h)] + lens[m.Edge(m.Next(h))] - lens[m.Edge(m.Prev(h))]) / 2
		v := m.Target(h)
		radii[v] = math.Min(radii[v], r)
	}
	for v, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return ricciErrorf(methodCirclePackingMetric, ErrDegenerateMetric, "vertex %d radius %g", v, r)
		}
	}

	for v, r := range radii {
		vrm.Put(mesh.Vertex(v), r)
	}
	for e := range m.Edges() {
		h := m.EdgeHalfedge(e)
		rs, rt := radii[m.Source(h)], radii[m.Target(h)]
		l := lens[e]
		ewm.Put(e, (l*l-rs*rs-rt*rt)/(2*rs*rt))
	}

	return nil
}

// EdgeLength derives the length of e from the metric, clamping a negative
// squared length to 0.
func EdgeLength(m *mesh.Mesh, e mesh.Edge, vrm propmap.Map[mesh.Vertex, float64], ewm propmap.Map[mesh.Edge, float64]) float64 {
	h := m.EdgeHalfedge(e)
	rs := vrm.Get(m.Source(h))
	rt := vrm.Get(m.Target(h))
	w := ewm.Get(e)
	l2 := rs*rs + rt*rt + 2*rs*rt*w
	if l2 < 0 {
		l2 = 0
	}
	return math.Sqrt(l2)
}

// EdgeLengths derives every edge length into dst (indexed by edge), reusing
// its storage when large enough, and returns it.
func EdgeLengths(m *mesh.Mesh, vrm propmap.Map[mesh.Vertex, float64], ewm propmap.Map[mesh.Edge, float64], dst []float64) []float64 {
	n := m.NumEdges()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for e := range m.Edges() {
		dst[e] = EdgeLength(m, e, vrm, ewm)
	}
	return dst
}
