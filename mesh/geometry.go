package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Point returns the position of v.
func (m *Mesh) Point(v Vertex) r3.Vec { return m.points[v] }

// EdgeLength returns the Euclidean length of e in the embedding.
func (m *Mesh) EdgeLength(e Edge) float64 {
	h := m.EdgeHalfedge(e)
	return r3.Norm(r3.Sub(m.points[m.Target(h)], m.points[m.Source(h)]))
}

// FaceArea returns the area of triangle f.
func (m *Mesh) FaceArea(f Face) float64 {
	c := m.FaceVertices(f)
	p0 := m.points[c[0]]
	n := r3.Cross(r3.Sub(m.points[c[1]], p0), r3.Sub(m.points[c[2]], p0))
	return 0.5 * r3.Norm(n)
}

// SurfaceArea returns the sum of all face areas.
func (m *Mesh) SurfaceArea() float64 {
	var a float64
	for f := range m.Faces() {
		a += m.FaceArea(f)
	}
	return a
}
