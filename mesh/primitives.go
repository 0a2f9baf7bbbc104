// SPDX-License-Identifier: MIT
// Package: ricciflow/mesh
//
// primitives.go — deterministic constructors for common test surfaces.
//
// Canonical model:
//   • Platonic shells use fixed, pre-oriented (outward, counter-clockwise)
//     vertex and face tables.
//   • Icosphere subdivides the icosahedron 1→4 and projects onto the unit
//     sphere; midpoints are shared through an edge-keyed cache.
//   • Torus and Grid sample a regular parameter lattice; each quad is split
//     along the same diagonal.
//
// Topology of the results:
//   • Tetrahedron/Octahedron/Icosahedron/Icosphere: closed, genus 0, χ = 2.
//   • Torus: closed, genus 1, χ = 0.
//   • Grid: disk, one boundary loop, χ = 1.

package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodIcosphere = "Icosphere"
	methodTorus     = "Torus"
	methodGrid      = "Grid"
)

var (
	tetrahedronPoints = []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}
	tetrahedronFaces  = [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

	octahedronPoints = []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}
	octahedronFaces  = [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	icosahedronFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// icosahedronPoints returns the 12 icosahedron vertices on the unit sphere.
func icosahedronPoints() []r3.Vec {
	t := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vec{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	for i := range raw {
		raw[i] = r3.Unit(raw[i])
	}

	return raw
}

// mustBuild is used only for the fixed tables above, which are valid by
// construction.
func mustBuild(points []r3.Vec, faces [][3]int) *Mesh {
	m, err := New(points, faces)
	if err != nil {
		panic(fmt.Sprintf("mesh: invalid built-in primitive: %v", err))
	}
	return m
}

// Tetrahedron returns the regular tetrahedron inscribed in the cube [-1,1]³.
func Tetrahedron() *Mesh { return mustBuild(tetrahedronPoints, tetrahedronFaces) }

// Octahedron returns the regular octahedron with vertices at ±x, ±y, ±z.
func Octahedron() *Mesh { return mustBuild(octahedronPoints, octahedronFaces) }

// Icosahedron returns the regular icosahedron inscribed in the unit sphere.
func Icosahedron() *Mesh { return mustBuild(icosahedronPoints(), icosahedronFaces) }

// Icosphere returns the icosahedron subdivided `subdivisions` times and
// projected onto the unit sphere: 10·4^s + 2 vertices, 20·4^s faces.
func Icosphere(subdivisions int) (*Mesh, error) {
	if subdivisions < 0 || subdivisions > 7 {
		return nil, meshErrorf(methodIcosphere, ErrBadParameter, "subdivisions=%d not in [0,7]", subdivisions)
	}

	points := icosahedronPoints()
	faces := append([][3]int(nil), icosahedronFaces...)
	for s := 0; s < subdivisions; s++ {
		mid := make(map[edgeKey]int, 3*len(faces)/2)
		midpoint := func(a, b int) int {
			key := undirected(Vertex(a), Vertex(b))
			if idx, ok := mid[key]; ok {
				return idx
			}
			p := r3.Unit(r3.Scale(0.5, r3.Add(points[a], points[b])))
			points = append(points, p)
			mid[key] = len(points) - 1
			return len(points) - 1
		}

		next := make([][3]int, 0, 4*len(faces))
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	return New(points, faces)
}

// Torus returns a torus of revolution around the z axis with major radius R
// and minor radius r, sampled nu times around the axis and nv times around
// the tube.
func Torus(R, r float64, nu, nv int) (*Mesh, error) {
	if nu < 3 || nv < 3 {
		return nil, meshErrorf(methodTorus, ErrBadParameter, "nu=%d nv=%d (need >= 3)", nu, nv)
	}
	if !(r > 0) || !(R > r) {
		return nil, meshErrorf(methodTorus, ErrBadParameter, "R=%g r=%g (need R > r > 0)", R, r)
	}

	points := make([]r3.Vec, 0, nu*nv)
	for i := 0; i < nu; i++ {
		u := 2 * math.Pi * float64(i) / float64(nu)
		for j := 0; j < nv; j++ {
			v := 2 * math.Pi * float64(j) / float64(nv)
			ring := R + r*math.Cos(v)
			points = append(points, r3.Vec{X: ring * math.Cos(u), Y: ring * math.Sin(u), Z: r * math.Sin(v)})
		}
	}

	idx := func(i, j int) int { return (i%nu)*nv + j%nv }
	faces := make([][3]int, 0, 2*nu*nv)
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			faces = append(faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	return New(points, faces)
}

// Grid returns a flat nx×ny grid of the rectangle [0,w]×[0,h] in the z = 0
// plane, triangulated counter-clockwise when seen from +z.
func Grid(nx, ny int, w, h float64) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, meshErrorf(methodGrid, ErrBadParameter, "nx=%d ny=%d (need >= 1)", nx, ny)
	}
	if !(w > 0) || !(h > 0) {
		return nil, meshErrorf(methodGrid, ErrBadParameter, "w=%g h=%g (need > 0)", w, h)
	}

	points := make([]r3.Vec, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			points = append(points, r3.Vec{X: w * float64(i) / float64(nx), Y: h * float64(j) / float64(ny)})
		}
	}

	idx := func(i, j int) int { return j*(nx+1) + i }
	faces := make([][3]int, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			faces = append(faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}

	return New(points, faces)
}
