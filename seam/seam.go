// SPDX-License-Identifier: MIT
// Package: ricciflow/seam
//
// seam.go — a virtual cut of a mesh.Mesh along marked edges.
//
// Model:
//   • Faces and face halfedges are shared with the underlying mesh; only the
//     vertex set differs.
//   • A mesh vertex is split into one seam vertex per wedge: a maximal fan of
//     its incident faces not separated by a seam or the boundary.
//   • Opposite(h) reports false across a seam edge and across the boundary,
//     so a traversal over seam faces never crosses a cut.
//
// Complexity: New is O(V + E + F); every accessor is O(1).

package seam

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/ricciflow/mesh"
)

const methodNew = "New"

// Vertex is a dense seam-mesh vertex handle.
type Vertex int32

// NullVertex marks a halfedge without a seam vertex (a mesh border halfedge).
const NullVertex Vertex = -1

// Mesh is a seam mesh: the underlying mesh cut open along its seam edges.
// It is immutable after construction.
type Mesh struct {
	m *mesh.Mesh

	seam   []bool   // per mesh edge
	target []Vertex // seam vertex at the target of each face halfedge
	origin []mesh.Vertex
	nseams int
}

// New cuts m along seams. Duplicate edges are ignored; border edges and
// unknown handles are rejected.
func New(m *mesh.Mesh, seams []mesh.Edge) (*Mesh, error) {
	sm := &Mesh{
		m:      m,
		seam:   make([]bool, m.NumEdges()),
		target: make([]Vertex, m.NumHalfedges()),
	}
	for _, e := range seams {
		if !m.HasEdge(e) {
			return nil, seamErrorf(methodNew, ErrEdgeNotFound, "edge %d of %d", e, m.NumEdges())
		}
		if m.IsBorderEdge(e) {
			return nil, seamErrorf(methodNew, ErrBorderSeam, "edge %d", e)
		}
		if !sm.seam[e] {
			sm.seam[e] = true
			sm.nseams++
		}
	}
	for i := range sm.target {
		sm.target[i] = NullVertex
	}

	var ring []mesh.Halfedge
	var cut []bool
	for v := range m.Vertices() {
		ring = ring[:0]
		for h := range m.HalfedgesAroundTarget(v) {
			ring = append(ring, h)
		}
		n := len(ring)

		// cut[i]: rotating from ring[i] to ring[i+1] crosses a seam or the
		// boundary.
		cut = cut[:0]
		start := -1
		for i, h := range ring {
			c := m.IsBorder(h) || m.IsBorder(ring[(i+1)%n]) || sm.seam[m.Edge(m.Next(h))]
			cut = append(cut, c)
			if c && start < 0 {
				start = i
			}
		}
		if start < 0 {
			start = n - 1
		}

		cur := NullVertex
		for k := 1; k <= n; k++ {
			i := (start + k) % n
			if h := ring[i]; !m.IsBorder(h) {
				if cur == NullVertex {
					cur = Vertex(len(sm.origin))
					sm.origin = append(sm.origin, v)
				}
				sm.target[h] = cur
			}
			if cut[i] {
				cur = NullVertex
			}
		}
	}

	return sm, nil
}

// NewWithCutGraph cuts m along CutGraph(m, keep...). Pass the cone
// vertices of a parameterization as keep so the cut reaches them.
func NewWithCutGraph(m *mesh.Mesh, keep ...mesh.Vertex) (*Mesh, error) {
	return New(m, CutGraph(m, keep...))
}

// Underlying returns the mesh that was cut.
func (s *Mesh) Underlying() *mesh.Mesh { return s.m }

// NumVertices returns the number of seam vertices.
func (s *Mesh) NumVertices() int { return len(s.origin) }

// NumEdges counts each seam edge twice, once per side.
func (s *Mesh) NumEdges() int { return s.m.NumEdges() + s.nseams }

// NumFaces equals the face count of the underlying mesh.
func (s *Mesh) NumFaces() int { return s.m.NumFaces() }

// NumSeams returns the number of distinct seam edges.
func (s *Mesh) NumSeams() int { return s.nseams }

// Vertices yields every seam vertex in increasing order.
func (s *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range len(s.origin) {
			if !yield(Vertex(i)) {
				return
			}
		}
	}
}

// Faces yields every face of the underlying mesh.
func (s *Mesh) Faces() iter.Seq[mesh.Face] { return s.m.Faces() }

// FaceHalfedge returns the first halfedge of f.
func (s *Mesh) FaceHalfedge(f mesh.Face) mesh.Halfedge { return s.m.FaceHalfedge(f) }

// Next returns the next halfedge in h's face.
func (s *Mesh) Next(h mesh.Halfedge) mesh.Halfedge { return s.m.Next(h) }

// Prev returns the previous halfedge in h's face.
func (s *Mesh) Prev(h mesh.Halfedge) mesh.Halfedge { return s.m.Prev(h) }

// Face returns the face of h.
func (s *Mesh) Face(h mesh.Halfedge) mesh.Face { return s.m.Face(h) }

// Target returns the seam vertex face halfedge h points to.
func (s *Mesh) Target(h mesh.Halfedge) Vertex { return s.target[h] }

// Source returns the seam vertex face halfedge h starts from.
func (s *Mesh) Source(h mesh.Halfedge) Vertex { return s.target[s.m.Prev(h)] }

// Opposite returns the face halfedge across h's edge, or false when the edge
// is a seam or lies on the boundary.
func (s *Mesh) Opposite(h mesh.Halfedge) (mesh.Halfedge, bool) {
	o := s.m.Opposite(h)
	if s.m.IsBorder(o) || s.seam[s.m.Edge(h)] {
		return mesh.NullHalfedge, false
	}
	return o, true
}

// IsSeam reports whether e is a seam edge.
func (s *Mesh) IsSeam(e mesh.Edge) bool { return s.seam[e] }

// Origin returns the mesh vertex sv was split from.
func (s *Mesh) Origin(sv Vertex) mesh.Vertex { return s.origin[sv] }

// Point returns the 3D position of sv.
func (s *Mesh) Point(sv Vertex) r3.Vec { return s.m.Point(s.origin[sv]) }

// FaceVertices returns the three seam vertices of f in cycle order, matching
// mesh.FaceVertices.
func (s *Mesh) FaceVertices(f mesh.Face) [3]Vertex {
	h := s.m.FaceHalfedge(f)
	return [3]Vertex{s.Source(h), s.Target(h), s.Target(s.m.Next(h))}
}

// EulerCharacteristic returns χ of the cut surface.
func (s *Mesh) EulerCharacteristic() int {
	return s.NumVertices() - s.NumEdges() + s.NumFaces()
}

// NumBoundaries counts the boundary loops of the cut surface. Each boundary
// seam vertex has exactly one outgoing cut halfedge, so the loops are the
// cycles of that successor map.
func (s *Mesh) NumBoundaries() int {
	out := make([]mesh.Halfedge, s.NumVertices())
	for i := range out {
		out[i] = mesh.NullHalfedge
	}
	for i := 0; i < s.m.NumHalfedges(); i++ {
		h := mesh.Halfedge(i)
		if s.m.IsBorder(h) {
			continue
		}
		if _, ok := s.Opposite(h); !ok {
			out[s.Source(h)] = h
		}
	}

	seen := make([]bool, s.NumVertices())
	loops := 0
	for sv, h := range out {
		if h == mesh.NullHalfedge || seen[sv] {
			continue
		}
		loops++
		for cur := Vertex(sv); !seen[cur]; {
			seen[cur] = true
			nxt := out[cur]
			if nxt == mesh.NullHalfedge {
				break
			}
			cur = s.Target(nxt)
		}
	}

	return loops
}

// Genus returns g from χ = 2 − 2g − b of the cut surface.
func (s *Mesh) Genus() int {
	return (2 - s.EulerCharacteristic() - s.NumBoundaries()) / 2
}
