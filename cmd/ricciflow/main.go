// SPDX-License-Identifier: MIT
// Command ricciflow flattens a built-in surface with discrete Ricci flow and
// prints a YAML report of the run.
//
// Usage:
//
//	ricciflow run --shape torus --nu 48 --nv 24
//	ricciflow run --shape icosphere --subdivisions 2 \
//	    --cone 0:0.5 --cone 3:0.5 --cone 5:0.5 --cone 8:0.5
//	ricciflow run --shape grid --config flow.toml --verbose
//	ricciflow settings --format toml
//
// Cone orders must add up to the Euler characteristic of the surface (2 for
// the icosphere, 0 for the torus). The surface is cut along its cut graph
// extended to every cone before it is laid out.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ricciflow:", err)
		os.Exit(1)
	}
}
