package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Vertex is a dense vertex handle.
type Vertex int32

// Halfedge is a dense halfedge handle. Edge e owns halfedges 2e and 2e+1.
type Halfedge int32

// Edge is a dense undirected edge handle.
type Edge int32

// Face is a dense triangle handle.
type Face int32

const (
	// NullHalfedge marks the absence of a halfedge.
	NullHalfedge Halfedge = -1

	// NullFace is the face of every border halfedge.
	NullFace Face = -1
)

// Mesh is an immutable halfedge triangle mesh.
//
// Storage is struct-of-arrays indexed by handle:
//
//	heTarget[h]   vertex h points to
//	heNext[h]     next halfedge in the face (or boundary loop)
//	hePrev[h]     previous halfedge in the face (or boundary loop)
//	heFace[h]     owning face, NullFace on the border
//	vHalfedge[v]  an incoming halfedge (the border one on a boundary)
//	fHalfedge[f]  the halfedge of the first corner of the input triangle
type Mesh struct {
	points []r3.Vec

	heTarget []Vertex
	heNext   []Halfedge
	hePrev   []Halfedge
	heFace   []Face

	vHalfedge []Halfedge
	fHalfedge []Halfedge
}

// NumVertices returns |V|.
func (m *Mesh) NumVertices() int { return len(m.points) }

// NumHalfedges returns 2|E|.
func (m *Mesh) NumHalfedges() int { return len(m.heTarget) }

// NumEdges returns |E|.
func (m *Mesh) NumEdges() int { return len(m.heTarget) / 2 }

// NumFaces returns |F|.
func (m *Mesh) NumFaces() int { return len(m.fHalfedge) }

// HasVertex reports whether v is a valid vertex handle.
func (m *Mesh) HasVertex(v Vertex) bool { return v >= 0 && int(v) < len(m.points) }

// HasEdge reports whether e is a valid edge handle.
func (m *Mesh) HasEdge(e Edge) bool { return e >= 0 && int(e) < m.NumEdges() }

// HasFace reports whether f is a valid face handle.
func (m *Mesh) HasFace(f Face) bool { return f >= 0 && int(f) < len(m.fHalfedge) }
