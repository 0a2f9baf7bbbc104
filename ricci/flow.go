// SPDX-License-Identifier: MIT
// Package: ricciflow/ricci
//
// flow.go — discrete Ricci flow on the circle-packing metric.
//
// States:
//
//	Initializing → Iterating → {Optimal, Suboptimal}
//	Initializing → InvalidInput
//
// Iteration k:
//  1. l ← lengths(r, w)
//  2. δ(v) ← target(v) − κ(v); m ← max |δ|
//  3. m < eps → Optimal (the metric is left as measured)
//  4. k = MaxIters → Suboptimal
//  5. u(v) ← log r(v) + step·δ(v); r(v) ← exp u(v)
//
// Result.MaxError is always measured on the radii left in vrm, so a run
// whose final update converges reports Optimal.
//
// Radii change only through exp, so they stay positive. If δ or exp u is
// not finite the update is dropped and the run ends Suboptimal, so radii
// also stay finite. Weights are never modified.
//
// Re-running on the same maps resumes from the stored radii.

package ricci

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
)

const methodRicciFlow = "RicciFlow"

// RicciFlow evolves the radii in vrm until the curvature of every vertex is
// within s.Eps of its target in vcm, or s.MaxIters updates were applied.
//
// Invalid settings return an error and touch nothing. Targets failing
// CheckGaussBonnet return StatusInvalidInput with a nil error and touch
// nothing. Otherwise the Result carries StatusOptimal or StatusSuboptimal.
func RicciFlow(
	m *mesh.Mesh,
	vrm propmap.Map[mesh.Vertex, float64],
	ewm propmap.Map[mesh.Edge, float64],
	vcm propmap.Map[mesh.Vertex, float64],
	s Settings,
) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMesh
	}
	if err := s.Validate(); err != nil {
		return Result{}, ricciErrorf(methodRicciFlow, err, "settings")
	}

	log := Logger()
	level := slog.LevelDebug
	if s.Verbose {
		level = slog.LevelInfo
	}
	ctx := context.Background()
	log.Log(ctx, level, "ricci flow",
		slog.String("solver", s.Type.String()),
		slog.Float64("step", s.Step),
		slog.Float64("eps", s.Eps),
		slog.Int("max_iters", s.MaxIters),
	)

	if err := CheckGaussBonnet(m, vcm); err != nil {
		log.Warn("target curvatures are not admissible", slog.Any("err", err))
		return Result{Status: StatusInvalidInput}, nil
	}

	nv := m.NumVertices()
	lengths := make([]float64, m.NumEdges())
	delta := make([]float64, nv)
	next := make([]float64, nv)
	res := Result{Status: StatusSuboptimal}

	// MaxIters updates take MaxIters+1 measurements; the last one checks
	// the metric left by the final update.
	for it := 0; ; it++ {
		lengths = EdgeLengths(m, vrm, ewm, lengths)

		maxErr := 0.0
		finite := true
		for v := range m.Vertices() {
			d := vcm.Get(v) - GaussianCurvature(m, v, lengths)
			if math.IsNaN(d) || math.IsInf(d, 0) {
				finite = false
			}
			delta[v] = d
			maxErr = math.Max(maxErr, math.Abs(d))
		}
		res.MaxError = maxErr
		log.Log(ctx, level, "ricci flow iteration", slog.Int("iter", it), slog.Float64("max_error", maxErr))

		if !finite {
			log.Warn("non-finite curvature, stopping", slog.Int("iter", it))
			return res, nil
		}
		if maxErr < s.Eps {
			res.Status = StatusOptimal
			log.Log(ctx, level, "optimization done", slog.Int("iter", it), slog.Float64("max_error", maxErr))
			return res, nil
		}
		if it == s.MaxIters {
			break
		}

		for v := range m.Vertices() {
			r := math.Exp(math.Log(vrm.Get(v)) + s.Step*delta[v])
			if !(r > 0) || math.IsInf(r, 0) {
				log.Warn("radius update left the finite range, stopping", slog.Int("iter", it), slog.Int("vertex", int(v)))
				return res, nil
			}
			next[v] = r
		}
		for v := range m.Vertices() {
			vrm.Put(v, next[v])
		}
		res.Iterations++
	}

	log.Log(ctx, level, "max iterations reached", slog.Int("iters", s.MaxIters), slog.Float64("max_error", res.MaxError))
	return res, nil
}
