package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ricciflow/mesh"
	"github.com/katalvlaran/ricciflow/propmap"
	"github.com/katalvlaran/ricciflow/ricci"
	"github.com/katalvlaran/ricciflow/seam"
)

var errUnknownShape = errors.New("ricciflow: unknown shape")

// shapeFlags selects and sizes the built-in surface.
type shapeFlags struct {
	shape        string
	major, minor float64
	nu, nv       int
	subdivisions int
	nx, ny       int
	width        float64
	height       float64
}

func (f shapeFlags) build() (*mesh.Mesh, error) {
	switch f.shape {
	case "torus":
		return mesh.Torus(f.major, f.minor, f.nu, f.nv)
	case "icosphere":
		return mesh.Icosphere(f.subdivisions)
	case "grid":
		return mesh.Grid(f.nx, f.ny, f.width, f.height)
	default:
		return nil, fmt.Errorf("%w: %q (want torus, icosphere or grid)", errUnknownShape, f.shape)
	}
}

// cone is one --cone v:k value.
type cone struct {
	v mesh.Vertex
	k float64
}

func parseCone(s string) (cone, error) {
	vs, ks, ok := strings.Cut(s, ":")
	if !ok {
		return cone{}, fmt.Errorf("cone %q: want vertex:order", s)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(vs), 10, 32)
	if err != nil {
		return cone{}, fmt.Errorf("cone %q: vertex: %w", s, err)
	}
	k, err := strconv.ParseFloat(strings.TrimSpace(ks), 64)
	if err != nil {
		return cone{}, fmt.Errorf("cone %q: order: %w", s, err)
	}
	return cone{v: mesh.Vertex(v), k: k}, nil
}

// report is the YAML document printed by run.
type report struct {
	Shape        string         `yaml:"shape"`
	Vertices     int            `yaml:"vertices"`
	Faces        int            `yaml:"faces"`
	Genus        int            `yaml:"genus"`
	Seams        int            `yaml:"seams"`
	SeamVertices int            `yaml:"seam_vertices"`
	Settings     ricci.Settings `yaml:"settings"`
	Result       ricci.Result   `yaml:"result"`
	UVBounds     r2.Box         `yaml:"uv_bounds"`
}

func newRunCmd() *cobra.Command {
	var (
		sf       shapeFlags
		config   string
		cones    []string
		step     float64
		eps      float64
		maxIters int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Flatten a built-in surface and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := ricci.DefaultSettings()
			if config != "" {
				var err error
				if s, err = ricci.LoadSettings(config); err != nil {
					return err
				}
			}
			fl := cmd.Flags()
			if fl.Changed("step") {
				s.Step = step
			}
			if fl.Changed("eps") {
				s.Eps = eps
			}
			if fl.Changed("max-iters") {
				s.MaxIters = maxIters
			}
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				s.Verbose = true
			}
			if err := s.Validate(); err != nil {
				return err
			}

			parsed := make([]cone, 0, len(cones))
			for _, c := range cones {
				pc, err := parseCone(c)
				if err != nil {
					return err
				}
				parsed = append(parsed, pc)
			}

			m, err := sf.build()
			if err != nil {
				return err
			}
			rep, runErr := run(m, s, parsed)
			if rep == nil {
				return runErr
			}
			rep.Shape = sf.shape

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rep); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			return runErr
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&sf.shape, "shape", "torus", "surface: torus, icosphere or grid")
	fl.Float64Var(&sf.major, "major", 3, "torus major radius")
	fl.Float64Var(&sf.minor, "minor", 1, "torus minor radius")
	fl.IntVar(&sf.nu, "nu", 24, "torus samples around the axis")
	fl.IntVar(&sf.nv, "nv", 12, "torus samples around the tube")
	fl.IntVar(&sf.subdivisions, "subdivisions", 1, "icosphere subdivision level")
	fl.IntVar(&sf.nx, "nx", 8, "grid cells along x")
	fl.IntVar(&sf.ny, "ny", 8, "grid cells along y")
	fl.Float64Var(&sf.width, "width", 1, "grid width")
	fl.Float64Var(&sf.height, "height", 1, "grid height")

	fl.StringVarP(&config, "config", "c", "", "settings file (.yaml, .yml or .toml)")
	fl.StringArrayVar(&cones, "cone", nil, "cone singularity vertex:order, target curvature 2·order·π (repeatable)")
	fl.Float64Var(&step, "step", 0, "gradient descent step (overrides config)")
	fl.Float64Var(&eps, "eps", 0, "convergence threshold (overrides config)")
	fl.IntVar(&maxIters, "max-iters", 0, "iteration budget (overrides config)")

	return cmd
}

// run parameterizes m over a cut graph reaching every cone. A non-nil
// report comes back whenever the layout was computed, together with the
// parameterizer error.
func run(m *mesh.Mesh, s ricci.Settings, cones []cone) (*report, error) {
	p, err := ricci.NewParameterizer(m)
	if err != nil {
		return nil, err
	}
	p.SetSolverSettings(s)
	for _, c := range cones {
		if err := p.AddCone(c.v, c.k); err != nil {
			return nil, err
		}
	}
	sm, err := seam.NewWithCutGraph(m, p.Cones()...)
	if err != nil {
		return nil, err
	}

	uvm := propmap.NewSlice[seam.Vertex, r2.Vec](sm.NumVertices())
	err = ricci.Parameterize(sm, p, mesh.NullHalfedge, uvm)
	if err != nil && !errors.Is(err, ricci.ErrWrongParameter) {
		return nil, err
	}

	_, uvs, _ := sm.Extract(uvm)
	return &report{
		Vertices:     m.NumVertices(),
		Faces:        m.NumFaces(),
		Genus:        m.Genus(),
		Seams:        sm.NumSeams(),
		SeamVertices: sm.NumVertices(),
		Settings:     s,
		Result:       p.Result(),
		UVBounds:     bounds(uvs),
	}, err
}

// bounds returns the bounding box of interleaved u,v pairs.
func bounds(uvs []float64) r2.Box {
	if len(uvs) < 2 {
		return r2.Box{}
	}
	b := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for i := 0; i+1 < len(uvs); i += 2 {
		b.Min.X = math.Min(b.Min.X, uvs[i])
		b.Min.Y = math.Min(b.Min.Y, uvs[i+1])
		b.Max.X = math.Max(b.Max.X, uvs[i])
		b.Max.Y = math.Max(b.Max.Y, uvs[i+1])
	}
	return b
}
