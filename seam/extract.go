package seam

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ricciflow/propmap"
)

// Extract flattens the seam mesh into indexed buffers ready for a writer:
// three position components and two texture coordinates per seam vertex,
// and three seam-vertex indices per face in face order.
func (s *Mesh) Extract(uvm propmap.Map[Vertex, r2.Vec]) (positions, uvs []float64, indices []int) {
	positions = make([]float64, 0, 3*s.NumVertices())
	uvs = make([]float64, 0, 2*s.NumVertices())
	indices = make([]int, 0, 3*s.NumFaces())

	for sv := range s.Vertices() {
		p := s.Point(sv)
		uv := uvm.Get(sv)
		positions = append(positions, p.X, p.Y, p.Z)
		uvs = append(uvs, uv.X, uv.Y)
	}
	for f := range s.Faces() {
		for _, sv := range s.FaceVertices(f) {
			indices = append(indices, int(sv))
		}
	}

	return positions, uvs, indices
}
