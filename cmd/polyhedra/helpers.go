// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// helpers.go: shared cell formatting.

package main

import "fmt"

func formatVEF(v, e, f int) string { return fmt.Sprintf("%d / %d / %d", v, e, f) }
