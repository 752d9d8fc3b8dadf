// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// options.go: --opt key=value parsing into operation options.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

// optionRequest is the parsed --opt list. Face and Pick are -1 when unset.
type optionRequest struct {
	graph operations.GraphOptions
	face  int
	pick  int
}

func parseOptions(kvs []string) (optionRequest, error) {
	req := optionRequest{face: -1, pick: -1}
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			return req, fmt.Errorf("option %q: want key=value", kv)
		}
		key := strings.ToLower(k)
		switch key {
		case "facet":
			req.graph.Facet = specs.Facet(v)
		case "twist":
			req.graph.Twist = specs.Twist(v)
		case "gyrate":
			req.graph.Gyrate = specs.Gyration(v)
		case "align":
			req.graph.Align = specs.Align(v)
		case "using":
			req.graph.Using = specs.CapType(v)
		case "facetype":
			n, err := strconv.Atoi(v)
			if err != nil || n < 3 {
				return req, fmt.Errorf("option %q: want a side count", kv)
			}
			req.graph.FaceType = n
		case "face", "pick":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return req, fmt.Errorf("option %q: want an index", kv)
			}
			if key == "face" {
				req.face = n
			} else {
				req.pick = n
			}
		default:
			return req, fmt.Errorf("unknown option %q (want facet, twist, gyrate, align, using, faceType, face or pick)", k)
		}
	}
	return req, nil
}

// resolveOptions turns a request into concrete options on f: an explicit
// face index, else the pick-th option combination that agrees with the
// declared options, else the default options of the operation.
func resolveOptions(op *operations.Operation, f forme.Forme, req optionRequest) (operations.Options, error) {
	if req.face >= 0 {
		if req.face >= f.Geom().NumFaces() {
			return operations.Options{}, fmt.Errorf("face %d out of range (%d faces)", req.face, f.Geom().NumFaces())
		}
		return operations.Options{GraphOptions: req.graph, Face: f.Geom().Face(req.face)}, nil
	}
	if op.Selection() == operations.SelectNone && req.pick < 0 {
		if req.graph.IsZero() {
			return operations.Options{GraphOptions: op.DefaultOptions(f.Specs())}, nil
		}
		return operations.Options{GraphOptions: req.graph}, nil
	}
	var combos []operations.Options
	for _, c := range op.AllOptionCombos(f) {
		if req.graph.Matches(c.GraphOptions) {
			combos = append(combos, c)
		}
	}
	if len(combos) == 0 {
		return operations.Options{}, fmt.Errorf("%w: %s on %s with %s",
			operations.ErrNoEntry, op.Name(), f.Specs().Name(), req.graph)
	}
	pick := req.pick
	if pick < 0 {
		pick = 0
		if req.graph.IsZero() {
			def := op.DefaultOptions(f.Specs())
			for i, c := range combos {
				if c.GraphOptions == def {
					pick = i
					break
				}
			}
		}
	}
	if pick >= len(combos) {
		return operations.Options{}, fmt.Errorf("pick %d out of range (%d choices)", pick, len(combos))
	}
	return combos[pick], nil
}
