// Package ricci computes conformal parameterizations of triangle meshes by
// discrete Ricci flow on a circle-packing metric.
//
// Pipeline:
//
//	CirclePackingMetric      mesh lengths → radius per vertex, weight per edge
//	CheckGaussBonnet         Σ target = 2π·χ ?
//	RicciFlow                evolve radii until κ ≈ target (gradient descent)
//	EmbedCirclePackingMetric lay the metric out in the plane over a seam mesh
//
// Parameterizer bundles the pipeline behind the SurfaceParameterizer calling
// convention and supports cone singularities through AddCone:
//
//	p, err := ricci.NewParameterizer(m)
//	p.AddCone(v, 0.25)                     // target curvature 2·0.25·π at v
//	sm, err := seam.NewWithCutGraph(m, p.Cones()...)
//	err = p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, nil)
//
// The seam mesh must open the surface into a disk that reaches every cone;
// laying a cone metric out over a closed or partially cut surface folds it.
//
// All state lives in caller-supplied propmap.Map values:
//
//	radius  propmap.Map[mesh.Vertex, float64]  (> 0 at all times)
//	weight  propmap.Map[mesh.Edge, float64]    (never modified by the flow)
//	target  propmap.Map[mesh.Vertex, float64]
//	uv      propmap.Map[seam.Vertex, r2.Vec]
//
// Derived edge length: l² = r_s² + r_t² + 2·r_s·r_t·w, clamped at 0.
// Curvature at v: 2π (π on the boundary) minus the corner angles at v.
//
// Outcomes of RicciFlow:
//
//	StatusOptimal      every |target − κ| < eps
//	StatusSuboptimal   budget exhausted or update left the finite range
//	StatusInvalidInput targets fail Gauss–Bonnet; nothing was modified
//
// Settings can be loaded from YAML or TOML (LoadSettings). Logging goes
// through log/slog and is silent until SetLogger is called.
//
// Calls are synchronous and single-threaded; property maps must not be
// shared between concurrent calls.
package ricci
