// Package mesh provides a compact halfedge representation of an oriented,
// connected, manifold triangle mesh (with or without boundary).
//
// The Mesh M = (V, E, F) stores only connectivity and vertex positions;
// everything an algorithm wants to attach to an element lives in a
// propmap.Map keyed by the element's handle.
//
// Handles:
//
//	Vertex, Halfedge, Edge, Face — dense int32 indices (0..N-1)
//	NullHalfedge, NullFace       — the "no element" sentinel (-1)
//
// Halfedge layout:
//
//   - Edge e owns halfedges 2e and 2e+1, so Opposite(h) = h^1 and
//     Edge(h) = h/2 in O(1).
//   - Each face halfedge belongs to exactly one triangle; halfedges with
//     Face(h) == NullFace are border halfedges and are linked by Next/Prev
//     around their boundary loop.
//   - VertexHalfedge(v) is an incoming halfedge; for a boundary vertex it is
//     always the incoming border halfedge, so IsBorderVertex is O(1) and
//     HalfedgesAroundTarget starts on the border.
//
// Construction (New) rejects everything the parameterization algorithms do
// not support:
//
//	ErrEmptyMesh, ErrIndexOutOfRange, ErrDegenerateFace,
//	ErrNonManifoldEdge, ErrInconsistentOrientation,
//	ErrNonManifoldVertex, ErrIsolatedVertex, ErrDisconnected
//
// Traversal uses Go 1.23 iterators:
//
//	for v := range m.Vertices() { ... }
//	for h := range m.HalfedgesAroundTarget(v) { ... }
//
// Primitives (Tetrahedron, Octahedron, Icosahedron, Icosphere, Torus, Grid)
// build common closed and open test surfaces deterministically.
//
// A Mesh is immutable after construction and therefore safe for concurrent
// reads; property maps attached to it are not.
package mesh
