// Package ricciflow is a pure-Go toolkit for conformal parameterization of
// triangle meshes by discrete Ricci flow.
//
// Packages:
//
//	propmap/      — handle → value maps (dense slice, hash, closures)
//	mesh/         — halfedge triangle mesh, topology queries, test primitives
//	seam/         — seam (cut) meshes, tree–cotree cut graphs, buffer export
//	ricci/        — circle-packing metric, curvature, Gauss–Bonnet check,
//	                Ricci flow solver, planar embedding, Parameterizer
//	cmd/ricciflow — command-line runner over the built-in surfaces
//
// Quick example (flatten a torus):
//
//	m, _ := mesh.Torus(3, 1, 48, 24)
//	sm, _ := seam.NewWithCutGraph(m)
//	p, _ := ricci.NewParameterizer(m)
//	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
//	err := ricci.Parameterize(sm, p, mesh.NullHalfedge, uvm)
//
// Closed genus-0 surfaces need cone singularities (Parameterizer.AddCone)
// whose orders add up to χ = 2 before they can be flattened, and a cut that
// reaches them: seam.NewWithCutGraph(m, p.Cones()...).
//
//	go get github.com/katalvlaran/ricciflow
package ricciflow
