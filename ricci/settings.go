// SPDX-License-Identifier: MIT
// Package: ricciflow/ricci
//
// settings.go — solver settings, status and result values.
//
// Settings are plain values: the zero value is invalid, DefaultSettings is
// the documented starting point, and Validate is called by RicciFlow before
// any mutation. Struct tags let the same type be decoded from YAML or TOML
// (see config.go).

package ricci

import (
	"fmt"
	"math"
)

const methodValidate = "Settings.Validate"

// SolverType selects the log-radius update rule.
type SolverType int

const (
	// SolverGradientDescent updates u(v) += step·(target − κ).
	SolverGradientDescent SolverType = iota

	// SolverNewton is recognised in configuration but rejected by Validate.
	SolverNewton
)

// String returns the configuration name of t.
func (t SolverType) String() string {
	switch t {
	case SolverGradientDescent:
		return "gradient-descent"
	case SolverNewton:
		return "newton"
	default:
		return fmt.Sprintf("SolverType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SolverType) MarshalText() ([]byte, error) {
	switch t {
	case SolverGradientDescent, SolverNewton:
		return []byte(t.String()), nil
	default:
		return nil, ricciErrorf("SolverType.MarshalText", ErrInvalidSettings, "unknown solver type %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SolverType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "gradient-descent", "gradient_descent", "gd":
		*t = SolverGradientDescent
	case "newton":
		*t = SolverNewton
	default:
		return ricciErrorf("SolverType.UnmarshalText", ErrInvalidSettings, "unknown solver type %q", string(b))
	}
	return nil
}

// Settings tunes RicciFlow.
type Settings struct {
	// Type is the update rule.
	Type SolverType `yaml:"type" toml:"type"`

	// Step scales the gradient-descent update; must be > 0.
	Step float64 `yaml:"step" toml:"step"`

	// Eps is the convergence threshold on max |target − κ|; must be > 0.
	Eps float64 `yaml:"eps" toml:"eps"`

	// MaxIters bounds the number of updates; must be >= 1.
	MaxIters int `yaml:"max_iters" toml:"max_iters"`

	// Verbose raises progress records from Debug to Info.
	Verbose bool `yaml:"verbose" toml:"verbose"`
}

// DefaultSettings returns {GradientDescent, step 0.05, eps 1e-5,
// 5000 iterations, quiet}.
func DefaultSettings() Settings {
	return Settings{
		Type:     SolverGradientDescent,
		Step:     0.05,
		Eps:      1e-5,
		MaxIters: 5000,
		Verbose:  false,
	}
}

// Validate reports ErrInvalidSettings for out-of-range values and
// ErrSolverUnsupported for SolverNewton.
func (s Settings) Validate() error {
	switch {
	case !(s.Step > 0) || math.IsInf(s.Step, 0):
		return ricciErrorf(methodValidate, ErrInvalidSettings, "step=%g (need finite > 0)", s.Step)
	case !(s.Eps > 0) || math.IsInf(s.Eps, 0):
		return ricciErrorf(methodValidate, ErrInvalidSettings, "eps=%g (need finite > 0)", s.Eps)
	case s.MaxIters < 1:
		return ricciErrorf(methodValidate, ErrInvalidSettings, "max_iters=%d (need >= 1)", s.MaxIters)
	}
	switch s.Type {
	case SolverGradientDescent:
		return nil
	case SolverNewton:
		return ricciErrorf(methodValidate, ErrSolverUnsupported, "solver %s", s.Type)
	default:
		return ricciErrorf(methodValidate, ErrInvalidSettings, "solver %s", s.Type)
	}
}

// Status is the terminal state of RicciFlow.
type Status int

const (
	// StatusOptimal: every |target − κ| < eps.
	StatusOptimal Status = iota

	// StatusSuboptimal: the budget ran out (or an update would have left
	// the finite range) before convergence. The metric is usable.
	StatusSuboptimal

	// StatusInvalidInput: the targets failed the Gauss–Bonnet check and
	// nothing was modified.
	StatusInvalidInput
)

// String returns a lower-case name for s.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusSuboptimal:
		return "suboptimal"
	case StatusInvalidInput:
		return "invalid-input"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so reports print names.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result describes a RicciFlow run.
type Result struct {
	// Status is the terminal state.
	Status Status `yaml:"status"`

	// Iterations is the number of log-radius updates applied.
	Iterations int `yaml:"iterations"`

	// MaxError is max |target − κ| measured on the radii the run left
	// behind.
	MaxError float64 `yaml:"max_error"`
}
