// SPDX-License-Identifier: MIT
// Package: ricciflow/mesh
//
// build.go — halfedge construction from an indexed triangle list.
//
// Contract:
//   • points are copied; triangles are read once and not retained.
//   • Face f keeps input order: FaceHalfedge(f) points from triangles[f][0]
//     to triangles[f][1].
//   • Edges are numbered in first-encounter order while scanning faces, so
//     handles are deterministic for a given input.
//
// Complexity:
//   • Time: O(V + F) expected (one hash lookup per corner).
//   • Space: O(V + E + F).

package mesh

import "gonum.org/v1/gonum/spatial/r3"

const methodNew = "New"

// edgeKey is the undirected endpoint pair (min, max) used to pair halfedges.
type edgeKey struct{ a, b Vertex }

func undirected(u, v Vertex) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{a: u, b: v}
}

// New builds a Mesh from points and counter-clockwise (or consistently
// clockwise) triangles.
//
// Stages:
//  1. Validate indices and allocate halfedges per corner, pairing each
//     directed corner edge with an existing opposite halfedge when present.
//  2. Link border halfedges into boundary loops.
//  3. Pick an incoming halfedge per vertex (border first) and verify that
//     each vertex is a single fan.
//  4. Verify that the mesh is connected.
func New(points []r3.Vec, triangles [][3]int) (*Mesh, error) {
	if len(points) == 0 || len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	nv := len(points)
	nf := len(triangles)
	m := &Mesh{
		points:    make([]r3.Vec, nv),
		heTarget:  make([]Vertex, 0, 3*nf+6),
		heNext:    make([]Halfedge, 0, 3*nf+6),
		hePrev:    make([]Halfedge, 0, 3*nf+6),
		heFace:    make([]Face, 0, 3*nf+6),
		vHalfedge: make([]Halfedge, nv),
		fHalfedge: make([]Halfedge, nf),
	}
	copy(m.points, points)

	// 1) faces
	edges := make(map[edgeKey]Edge, 3*nf/2+3)
	for fi, tri := range triangles {
		for k := 0; k < 3; k++ {
			if tri[k] < 0 || tri[k] >= nv {
				return nil, meshErrorf(methodNew, ErrIndexOutOfRange, "face %d corner %d = %d", fi, k, tri[k])
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, meshErrorf(methodNew, ErrDegenerateFace, "face %d = %v", fi, tri)
		}

		var hs [3]Halfedge
		for k := 0; k < 3; k++ {
			u, v := Vertex(tri[k]), Vertex(tri[(k+1)%3])
			h, err := m.claimHalfedge(edges, u, v, Face(fi))
			if err != nil {
				return nil, meshErrorf(methodNew, err, "face %d edge (%d,%d)", fi, u, v)
			}
			hs[k] = h
		}
		for k := 0; k < 3; k++ {
			m.heNext[hs[k]] = hs[(k+1)%3]
			m.hePrev[hs[k]] = hs[(k+2)%3]
		}
		m.fHalfedge[fi] = hs[0]
	}

	// 2) boundary loops
	if err := m.linkBorders(); err != nil {
		return nil, err
	}

	// 3) vertex fans
	if err := m.assignVertexHalfedges(); err != nil {
		return nil, err
	}

	// 4) connectivity
	if n := m.reachableVertices(); n != nv {
		return nil, meshErrorf(methodNew, ErrDisconnected, "%d of %d vertices reachable from vertex 0", n, nv)
	}

	return m, nil
}

// claimHalfedge returns the halfedge u→v for face f, creating its edge on
// first encounter.
func (m *Mesh) claimHalfedge(edges map[edgeKey]Edge, u, v Vertex, f Face) (Halfedge, error) {
	key := undirected(u, v)
	e, ok := edges[key]
	if !ok {
		e = Edge(len(m.heTarget) / 2)
		edges[key] = e
		// 2e is u→v, 2e+1 is v→u; both start on the border.
		m.heTarget = append(m.heTarget, v, u)
		m.heNext = append(m.heNext, NullHalfedge, NullHalfedge)
		m.hePrev = append(m.hePrev, NullHalfedge, NullHalfedge)
		m.heFace = append(m.heFace, NullFace, NullFace)
	}

	h := Halfedge(2 * e)
	if m.heTarget[h] != v {
		h++
	}
	if m.heFace[h] != NullFace {
		if m.heFace[h^1] != NullFace {
			return NullHalfedge, ErrNonManifoldEdge
		}
		return NullHalfedge, ErrInconsistentOrientation
	}
	m.heFace[h] = f

	return h, nil
}

// linkBorders connects each border halfedge to the border halfedge leaving
// its target. A vertex with two outgoing border halfedges is a pinch point.
func (m *Mesh) linkBorders() error {
	outgoing := make(map[Vertex]Halfedge)
	for h := range m.heTarget {
		if m.heFace[h] != NullFace {
			continue
		}
		src := m.heTarget[h^1]
		if _, dup := outgoing[src]; dup {
			return meshErrorf(methodNew, ErrNonManifoldVertex, "vertex %d has two boundary fans", src)
		}
		outgoing[src] = Halfedge(h)
	}
	for h := range m.heTarget {
		if m.heFace[h] != NullFace {
			continue
		}
		nxt := outgoing[m.heTarget[h]]
		m.heNext[h] = nxt
		m.hePrev[nxt] = Halfedge(h)
	}

	return nil
}

// assignVertexHalfedges stores an incoming halfedge per vertex, preferring
// the border one, then checks that rotating around the vertex reaches every
// incoming halfedge.
func (m *Mesh) assignVertexHalfedges() error {
	for v := range m.vHalfedge {
		m.vHalfedge[v] = NullHalfedge
	}
	incoming := make([]int, len(m.points))
	for h, t := range m.heTarget {
		incoming[t]++
		if m.vHalfedge[t] == NullHalfedge || m.heFace[h] == NullFace {
			m.vHalfedge[t] = Halfedge(h)
		}
	}

	for v, start := range m.vHalfedge {
		if start == NullHalfedge {
			return meshErrorf(methodNew, ErrIsolatedVertex, "vertex %d", v)
		}
		n := 0
		h := start
		for {
			n++
			h = m.heNext[h] ^ 1
			if h == start || n > incoming[v] {
				break
			}
		}
		if n != incoming[v] {
			return meshErrorf(methodNew, ErrNonManifoldVertex, "vertex %d: fan covers %d of %d halfedges", v, n, incoming[v])
		}
	}

	return nil
}

// reachableVertices counts vertices reachable from vertex 0 along edges.
func (m *Mesh) reachableVertices() int {
	seen := make([]bool, len(m.points))
	queue := make([]Vertex, 0, len(m.points))
	seen[0] = true
	queue = append(queue, 0)
	for head := 0; head < len(queue); head++ {
		for h := range m.HalfedgesAroundTarget(queue[head]) {
			u := m.Source(h)
			if !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}

	return len(queue)
}
