// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// polyhedra browses the solids and applies operations to them.
//
// Usage:
//
//	polyhedra list [--kind classical|capstone|composite|elementary]
//	polyhedra show NAME
//	polyhedra apply OP NAME [--opt key=value ...]
//	polyhedra route FROM TO [--max-depth N] [--ops a,b]
//	polyhedra verify [--parallel N] [--apply]
//	polyhedra tables
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
