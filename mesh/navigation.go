package mesh

import "iter"

// Next returns the next halfedge in h's face, or in its boundary loop.
func (m *Mesh) Next(h Halfedge) Halfedge { return m.heNext[h] }

// Prev returns the previous halfedge in h's face, or in its boundary loop.
func (m *Mesh) Prev(h Halfedge) Halfedge { return m.hePrev[h] }

// Opposite returns the other halfedge of h's edge.
func (m *Mesh) Opposite(h Halfedge) Halfedge { return h ^ 1 }

// Target returns the vertex h points to.
func (m *Mesh) Target(h Halfedge) Vertex { return m.heTarget[h] }

// Source returns the vertex h starts from.
func (m *Mesh) Source(h Halfedge) Vertex { return m.heTarget[h^1] }

// Face returns the face of h, or NullFace for a border halfedge.
func (m *Mesh) Face(h Halfedge) Face { return m.heFace[h] }

// Edge returns the edge h belongs to.
func (m *Mesh) Edge(h Halfedge) Edge { return Edge(h >> 1) }

// EdgeHalfedge returns the canonical halfedge 2e of e.
func (m *Mesh) EdgeHalfedge(e Edge) Halfedge { return Halfedge(2 * e) }

// FaceHalfedge returns the first halfedge of f.
func (m *Mesh) FaceHalfedge(f Face) Halfedge { return m.fHalfedge[f] }

// VertexHalfedge returns an incoming halfedge of v; the border one if v is on
// the boundary.
func (m *Mesh) VertexHalfedge(v Vertex) Halfedge { return m.vHalfedge[v] }

// IsBorder reports whether h lies on the boundary (has no face).
func (m *Mesh) IsBorder(h Halfedge) bool { return m.heFace[h] == NullFace }

// IsBorderVertex reports whether v lies on the boundary.
func (m *Mesh) IsBorderVertex(v Vertex) bool { return m.IsBorder(m.vHalfedge[v]) }

// IsBorderEdge reports whether either side of e is a border halfedge.
func (m *Mesh) IsBorderEdge(e Edge) bool {
	h := m.EdgeHalfedge(e)
	return m.IsBorder(h) || m.IsBorder(h^1)
}

// Vertices yields every vertex handle in increasing order.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range len(m.points) {
			if !yield(Vertex(i)) {
				return
			}
		}
	}
}

// Edges yields every edge handle in increasing order.
func (m *Mesh) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range m.NumEdges() {
			if !yield(Edge(i)) {
				return
			}
		}
	}
}

// Faces yields every face handle in increasing order.
func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := range len(m.fHalfedge) {
			if !yield(Face(i)) {
				return
			}
		}
	}
}

// HalfedgesAroundTarget yields every halfedge pointing to v, starting at
// VertexHalfedge(v) and rotating through Opposite(Next(h)). Border halfedges
// are included.
func (m *Mesh) HalfedgesAroundTarget(v Vertex) iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		start := m.vHalfedge[v]
		h := start
		for {
			if !yield(h) {
				return
			}
			h = m.heNext[h] ^ 1
			if h == start {
				return
			}
		}
	}
}

// HalfedgesAroundFace yields h and the halfedges following it in its cycle
// (three for a face, the boundary loop length for a border halfedge).
func (m *Mesh) HalfedgesAroundFace(h Halfedge) iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		cur := h
		for {
			if !yield(cur) {
				return
			}
			cur = m.heNext[cur]
			if cur == h {
				return
			}
		}
	}
}

// FaceVertices returns the three corners of f in cycle order, starting at the
// source of FaceHalfedge(f).
func (m *Mesh) FaceVertices(f Face) [3]Vertex {
	h := m.fHalfedge[f]
	return [3]Vertex{m.Source(h), m.Target(h), m.Target(m.heNext[h])}
}
