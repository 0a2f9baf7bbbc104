package ricci

import (
	"math"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
)

// cosineLaw returns the cosine of the angle between sides a and b of a
// triangle with third side c, clamped to [-1, 1]. NaN passes through.
func cosineLaw(a, b, c float64) float64 {
	cos := (a*a + b*b - c*c) / (2 * a * b)
	return math.Max(math.Min(cos, 1), -1)
}

// CornerAngle returns the interior angle at Target(h) of h's face, using
// lengths indexed by edge. h must not be a border halfedge.
func CornerAngle(m *mesh.Mesh, h mesh.Halfedge, lengths []float64) float64 {
	a := lengths[m.Edge(h)]
	b := lengths[m.Edge(m.Next(h))]
	c := lengths[m.Edge(m.Prev(h))]
	return math.Acos(cosineLaw(a, b, c))
}

// GaussianCurvature returns the angle defect at v: 2π (π on the boundary)
// minus the sum of the corner angles at v.
func GaussianCurvature(m *mesh.Mesh, v mesh.Vertex, lengths []float64) float64 {
	k := 2 * math.Pi
	if m.IsBorderVertex(v) {
		k = math.Pi
	}
	for h := range m.HalfedgesAroundTarget(v) {
		if !m.IsBorder(h) {
			k -= CornerAngle(m, h, lengths)
		}
	}
	return k
}

// Curvatures writes the curvature of every vertex under the metric to dst.
func Curvatures(m *mesh.Mesh, vrm propmap.Map[mesh.Vertex, float64], ewm propmap.Map[mesh.Edge, float64], dst propmap.Map[mesh.Vertex, float64]) {
	lengths := EdgeLengths(m, vrm, ewm, nil)
	for v := range m.Vertices() {
		dst.Put(v, GaussianCurvature(m, v, lengths))
	}
}

// EmbeddedCurvatures writes the curvature of every vertex under the
// embedded edge lengths of m to dst.
func EmbeddedCurvatures(m *mesh.Mesh, dst propmap.Map[mesh.Vertex, float64]) {
	lengths := make([]float64, m.NumEdges())
	for e := range m.Edges() {
		lengths[e] = m.EdgeLength(e)
	}
	for v := range m.Vertices() {
		dst.Put(v, GaussianCurvature(m, v, lengths))
	}
}

// CheckGaussBonnet reports ErrNotAdmissible unless the target curvatures in
// vcm sum to 2π·χ(m) within ApproxEqual.
func CheckGaussBonnet(m *mesh.Mesh, vcm propmap.Map[mesh.Vertex, float64]) error {
	var sum float64
	for v := range m.Vertices() {
		sum += vcm.Get(v)
	}
	want := 2 * math.Pi * float64(m.EulerCharacteristic())
	if !ApproxEqual(sum, want) {
		return ricciErrorf("CheckGaussBonnet", ErrNotAdmissible, "sum %.12g, want 2π·χ = %.12g", sum, want)
	}
	return nil
}
