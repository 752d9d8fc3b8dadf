// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// types.go: sides, graph options, entries, apply options and results.

package operations

import (
	"encoding/json"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Side names an end of a pair, or the intermediate between them.
type Side string

// Sides.
const (
	Left   Side = "left"
	Right  Side = "right"
	Middle Side = "middle"
)

// Opposite swaps Left and Right; Middle stays.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return s
}

// GraphOptions are the symbolic options an entry declares for one side.
// An empty field is unset.
type GraphOptions struct {
	Facet    specs.Facet    `json:"facet,omitempty" yaml:"facet,omitempty"`
	Twist    specs.Twist    `json:"twist,omitempty" yaml:"twist,omitempty"`
	Gyrate   specs.Gyration `json:"gyrate,omitempty" yaml:"gyrate,omitempty"`
	Align    specs.Align    `json:"align,omitempty" yaml:"align,omitempty"`
	Using    specs.CapType  `json:"using,omitempty" yaml:"using,omitempty"`
	FaceType int            `json:"faceType,omitempty" yaml:"faceType,omitempty"`
}

// IsZero reports that no field is set.
func (o GraphOptions) IsZero() bool { return o == GraphOptions{} }

// Matches reports whether every field set in o equals the declared value.
// Fields the caller leaves unset match anything.
func (o GraphOptions) Matches(declared GraphOptions) bool {
	return (o.Facet == "" || o.Facet == declared.Facet) &&
		(o.Twist == "" || o.Twist == declared.Twist) &&
		(o.Gyrate == "" || o.Gyrate == declared.Gyrate) &&
		(o.Align == "" || o.Align == declared.Align) &&
		(o.Using == "" || o.Using == declared.Using) &&
		(o.FaceType == 0 || o.FaceType == declared.FaceType)
}

// String renders the set fields as JSON.
func (o GraphOptions) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Entry is one edge of an operation graph.
type Entry struct {
	Left, Right               specs.Specs
	LeftOptions, RightOptions GraphOptions
}

// Spec returns the solid at side.
func (e Entry) Spec(side Side) specs.Specs {
	if side == Left {
		return e.Left
	}
	return e.Right
}

// Options returns the options declared at side.
func (e Entry) Options(side Side) GraphOptions {
	if side == Left {
		return e.LeftOptions
	}
	return e.RightOptions
}

// Options carries an apply call's choices: graph options plus, for
// cut/paste operations, the face or cap to act on. Face and Cap are unset
// when their Polyhedron() is nil.
type Options struct {
	GraphOptions
	Face polyhedron.Face
	Cap  polyhedron.Cap
}

// HasFace reports a selected face.
func (o Options) HasFace() bool { return o.Face.Polyhedron() != nil }

// HasCap reports a selected cap.
func (o Options) HasCap() bool { return o.Cap.Polyhedron() != nil }

// Pose places a forme for alignment: an origin, a length and two axes.
type Pose struct {
	Origin      geom.Vec
	Scale       float64
	Orientation [2]geom.Vec
}

// Animation describes the morph of an apply. Start has the faces of the
// intermediate solid with its vertices moved to the start positions;
// EndVertices are the same vertices at the result positions.
type Animation struct {
	Start       *polyhedron.Polyhedron
	EndVertices []geom.Vec
}

// Result is the output of an apply.
type Result struct {
	Specs     specs.Specs
	Forme     forme.Forme
	Animation Animation
}
