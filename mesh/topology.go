package mesh

import "gonum.org/v1/gonum/mat"

// EulerCharacteristic returns χ = |V| − |E| + |F|.
func (m *Mesh) EulerCharacteristic() int {
	return m.NumVertices() - m.NumEdges() + m.NumFaces()
}

// NumBoundaries counts boundary loops.
func (m *Mesh) NumBoundaries() int {
	seen := make([]bool, len(m.heTarget))
	loops := 0
	for h := range m.heTarget {
		if seen[h] || m.heFace[h] != NullFace {
			continue
		}
		loops++
		for cur := range m.HalfedgesAroundFace(Halfedge(h)) {
			seen[cur] = true
		}
	}

	return loops
}

// Genus returns g from χ = 2 − 2g − b, where b is the number of boundary
// loops.
func (m *Mesh) Genus() int {
	return (2 - m.EulerCharacteristic() - m.NumBoundaries()) / 2
}

// GraphLaplacian returns the combinatorial Laplacian L = D − A of the
// 1-skeleton: L[i][i] = deg(i), L[i][j] = −1 for every edge (i,j).
// The result is dense; use it for small and medium meshes.
func (m *Mesh) GraphLaplacian() *mat.SymDense {
	n := m.NumVertices()
	L := mat.NewSymDense(n, nil)
	for e := range m.Edges() {
		h := m.EdgeHalfedge(e)
		i, j := int(m.Source(h)), int(m.Target(h))
		L.SetSym(i, j, -1)
		L.SetSym(i, i, L.At(i, i)+1)
		L.SetSym(j, j, L.At(j, j)+1)
	}

	return L
}
