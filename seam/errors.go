// SPDX-License-Identifier: MIT
// Package: ricciflow/seam
//
// errors.go — sentinel errors for seam mesh construction.

package seam

import (
	"errors"
	"fmt"
)

// ErrEdgeNotFound indicates a seam edge handle outside the underlying mesh.
var ErrEdgeNotFound = errors.New("seam: edge not found")

// ErrBorderSeam indicates a boundary edge was marked as a seam. Boundary
// edges are already cut and cannot be seams.
var ErrBorderSeam = errors.New("seam: border edge cannot be a seam")

func seamErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
