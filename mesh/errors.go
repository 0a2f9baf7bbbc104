// SPDX-License-Identifier: MIT
// Package: ricciflow/mesh
//
// errors.go — sentinel errors for the mesh package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (face index, vertex index, method) is attached with %w.
//   • Construction never panics on bad input.

package mesh

import (
	"errors"
	"fmt"
)

// ErrEmptyMesh indicates that no points or no triangles were supplied.
var ErrEmptyMesh = errors.New("mesh: empty mesh")

// ErrIndexOutOfRange indicates a triangle referenced a point index outside
// [0, len(points)).
var ErrIndexOutOfRange = errors.New("mesh: vertex index out of range")

// ErrDegenerateFace indicates a triangle that repeats a vertex.
var ErrDegenerateFace = errors.New("mesh: degenerate face")

// ErrNonManifoldEdge indicates an edge shared by more than two triangles.
var ErrNonManifoldEdge = errors.New("mesh: non-manifold edge")

// ErrInconsistentOrientation indicates two triangles traversing a shared edge
// in the same direction.
var ErrInconsistentOrientation = errors.New("mesh: inconsistent face orientation")

// ErrNonManifoldVertex indicates a vertex whose incident triangles do not
// form a single fan.
var ErrNonManifoldVertex = errors.New("mesh: non-manifold vertex")

// ErrIsolatedVertex indicates a point that no triangle references.
var ErrIsolatedVertex = errors.New("mesh: isolated vertex")

// ErrDisconnected indicates the triangles form more than one component.
var ErrDisconnected = errors.New("mesh: disconnected mesh")

// ErrVertexNotFound indicates a vertex handle outside [0, NumVertices()).
var ErrVertexNotFound = errors.New("mesh: vertex not found")

// ErrBadParameter indicates an invalid primitive parameter (size, radius, …).
var ErrBadParameter = errors.New("mesh: invalid parameter")

// meshErrorf prefixes err with a method tag and formatted context.
func meshErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
