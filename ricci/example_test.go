package ricci_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/ricci"
	"github.com/katalvlaran/ricciflow/seam"
)

// ExampleParameterizer flattens a torus cut open along its cut graph.
func ExampleParameterizer() {
	torus, err := mesh.Torus(3, 1, 12, 8)
	if err != nil {
		fmt.Println(err)
		return
	}
	sm, err := seam.NewWithCutGraph(torus)
	if err != nil {
		fmt.Println(err)
		return
	}
	p, err := ricci.NewParameterizer(torus)
	if err != nil {
		fmt.Println(err)
		return
	}

	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	vpm := propmap.NewHash[seam.Vertex, bool]()
	if err := p.Parameterize(sm, mesh.NullHalfedge, uvm, nil, vpm); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("status:", p.Result().Status)
	fmt.Println("all placed:", vpm.Len() == sm.NumVertices())
	// Output:
	// status: optimal
	// all placed: true
}

// ExampleRicciFlow shows the Gauss–Bonnet gate: a sphere cannot be flat.
func ExampleRicciFlow() {
	sphere, _ := mesh.Icosphere(1)
	vrm := propmap.NewSlice[mesh.Vertex, float64](sphere.NumVertices())
	ewm := propmap.NewSlice[mesh.Edge, float64](sphere.NumEdges())
	vcm := propmap.NewSlice[mesh.Vertex, float64](sphere.NumVertices())
	if err := ricci.CirclePackingMetric(sphere, vrm, ewm); err != nil {
		fmt.Println(err)
		return
	}

	res, err := ricci.RicciFlow(sphere, vrm, ewm, vcm, ricci.DefaultSettings())
	fmt.Println(res.Status, res.Iterations, err)

	err = ricci.CheckGaussBonnet(sphere, vcm)
	fmt.Println(errors.Is(err, ricci.ErrNotAdmissible))
	// Output:
	// invalid-input 0 <nil>
	// true
}
