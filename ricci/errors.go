// SPDX-License-Identifier: MIT
// Package: ricciflow/ricci
//
// errors.go — sentinel errors for metric computation, flow and embedding.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Context (method, vertex, counts) is attached with %w.
//   • A violated Gauss–Bonnet condition is a Status, not an error, for
//     RicciFlow; the Parameterizer reports it as ErrWrongParameter.

package ricci

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMesh is returned when a nil mesh or seam mesh is supplied.
	ErrNilMesh = errors.New("ricci: mesh is nil")

	// ErrNotAdmissible indicates target curvatures whose sum differs from
	// 2π·χ.
	ErrNotAdmissible = errors.New("ricci: target curvatures are not admissible")

	// ErrDegenerateMetric indicates a non-positive radius estimate or a
	// non-finite coordinate produced from the metric.
	ErrDegenerateMetric = errors.New("ricci: degenerate metric")

	// ErrDisconnectedMesh indicates the embedding did not reach every seam
	// vertex and face.
	ErrDisconnectedMesh = errors.New("ricci: seam mesh not fully embedded")

	// ErrInvalidSettings indicates a non-positive step, eps or iteration
	// budget.
	ErrInvalidSettings = errors.New("ricci: invalid solver settings")

	// ErrSolverUnsupported indicates a solver type without an implementation.
	ErrSolverUnsupported = errors.New("ricci: solver type not supported")

	// ErrWrongParameter is returned by the parameterizer when the target
	// curvatures were rejected.
	ErrWrongParameter = errors.New("ricci: wrong parameter")

	// ErrUnknownConfigFormat indicates a settings format other than yaml or
	// toml.
	ErrUnknownConfigFormat = errors.New("ricci: unknown config format")

	// ErrOptionViolation is returned when an invalid EmbedOption is supplied.
	ErrOptionViolation = errors.New("ricci: invalid option supplied")
)

// ricciErrorf prefixes err with a method tag and formatted context.
func ricciErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
