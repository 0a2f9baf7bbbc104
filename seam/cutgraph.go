// SPDX-License-Identifier: MIT
// Package: ricciflow/seam
//
// cutgraph.go — tree–cotree cut graph.
//
// Algorithm:
//  1. T: breadth-first spanning tree of the vertices, rooted at vertex 0.
//  2. C: spanning tree of the dual graph over interior edges, taking edges
//     outside T first and T edges only when a face is otherwise unreachable
//     (this happens only on surfaces with boundary).
//  3. Cut candidates: every edge not in C, boundary edges included.
//  4. Repeatedly drop candidates ending at a vertex of candidate degree 1,
//     unless that vertex is kept.
//  5. The surviving interior edges are the cut graph.
//
// Without kept vertices, the survivors of a closed genus-g surface are the
// 2g generator loops of T ∪ (E∖C) joined through T, and cutting along them
// leaves a disk. For genus 0 that set is empty and the surface stays closed.
// Kept vertices (cone singularities) additionally stay joined to the rest of
// the cut through T, so a sphere with two or more kept vertices is cut
// along the subtree of T spanning them. A single kept vertex on a closed
// sphere is pruned like any other.
//
// Complexity: O(V + E + F·α(F)).

package seam

import "github.com/katalvlaran/ricciflow/mesh"

// CutGraph returns the interior edges of the cut graph of m in increasing
// edge order, reaching every vertex in keep. The result is deterministic for
// a given mesh and keep set. Out-of-range kept vertices are ignored.
func CutGraph(m *mesh.Mesh, keep ...mesh.Vertex) []mesh.Edge {
	kept := make([]bool, m.NumVertices())
	for _, v := range keep {
		if m.HasVertex(v) {
			kept[v] = true
		}
	}

	inTree := primalTree(m)
	inCotree := dualTree(m, inTree)

	cand := make([]bool, m.NumEdges())
	degree := make([]int, m.NumVertices())
	for e := range m.Edges() {
		if inCotree[e] {
			continue
		}
		cand[e] = true
		h := m.EdgeHalfedge(e)
		degree[m.Source(h)]++
		degree[m.Target(h)]++
	}

	queue := make([]mesh.Vertex, 0, m.NumVertices())
	for v := range m.Vertices() {
		if degree[v] == 1 && !kept[v] {
			queue = append(queue, v)
		}
	}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		if degree[v] != 1 {
			continue
		}
		for h := range m.HalfedgesAroundTarget(v) {
			e := m.Edge(h)
			if !cand[e] {
				continue
			}
			cand[e] = false
			degree[v]--
			u := m.Source(h)
			degree[u]--
			if degree[u] == 1 && !kept[u] {
				queue = append(queue, u)
			}
			break
		}
	}

	var cut []mesh.Edge
	for e := range m.Edges() {
		if cand[e] && !m.IsBorderEdge(e) {
			cut = append(cut, e)
		}
	}

	return cut
}

// primalTree marks the edges of a BFS spanning tree rooted at vertex 0.
func primalTree(m *mesh.Mesh) []bool {
	inTree := make([]bool, m.NumEdges())
	seen := make([]bool, m.NumVertices())
	queue := make([]mesh.Vertex, 0, m.NumVertices())
	seen[0] = true
	queue = append(queue, 0)
	for head := 0; head < len(queue); head++ {
		for h := range m.HalfedgesAroundTarget(queue[head]) {
			u := m.Source(h)
			if seen[u] {
				continue
			}
			seen[u] = true
			inTree[m.Edge(h)] = true
			queue = append(queue, u)
		}
	}

	return inTree
}

// dualTree marks the interior edges of a spanning tree of the faces,
// preferring edges outside avoid.
func dualTree(m *mesh.Mesh, avoid []bool) []bool {
	inTree := make([]bool, m.NumEdges())
	uf := newUnionFind(m.NumFaces())
	join := func(second bool) {
		for e := range m.Edges() {
			if avoid[e] != second || m.IsBorderEdge(e) {
				continue
			}
			h := m.EdgeHalfedge(e)
			if uf.union(int(m.Face(h)), int(m.Face(m.Opposite(h)))) {
				inTree[e] = true
			}
		}
	}
	join(false)
	join(true)

	return inTree
}

// unionFind is a disjoint-set forest with path halving and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	return true
}
