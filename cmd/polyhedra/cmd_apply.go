// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_apply.go: run one operation on one solid.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/internal/logging"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

type applyDoc struct {
	Operation string                 `yaml:"operation"`
	From      string                 `yaml:"from"`
	Options   map[string]interface{} `yaml:"options,omitempty"`
	Result    string                 `yaml:"result"`
	Geometry  geometryDoc            `yaml:"geometry"`
	Valid     bool                   `yaml:"valid"`
	Problem   string                 `yaml:"problem,omitempty"`
}

func newApplyCmd(e *env) *cobra.Command {
	var kvs []string
	cmd := &cobra.Command{
		Use:   "apply OP NAME",
		Short: "Apply an operation to a solid and check the result",
		Long: "Apply runs OP on NAME. Options narrow the choice where the operation offers one:\n" +
			"  facet=face|vertex twist=left|right gyrate=ortho|gyro align=para|meta\n" +
			"  using=pyramid|cupola|rotunda faceType=N face=INDEX pick=N\n" +
			"Without options the operation's default choice is used.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := e.cat.Get(args[0])
			if err != nil {
				return err
			}
			s, err := e.resolve(args[1])
			if err != nil {
				return err
			}
			req, err := parseOptions(kvs)
			if err != nil {
				return err
			}
			f, err := forme.FromBuilder(e.b, s)
			if err != nil {
				return err
			}
			opts, err := resolveOptions(op, f, req)
			if err != nil {
				return err
			}
			log := logging.New("apply")
			log.Info("apply", "op", op.Name(), "solid", s.Name(), "options", opts.GraphOptions.String())

			res, err := op.Apply(f, opts)
			if err != nil {
				return err
			}
			p := res.Forme.Geom()
			doc := applyDoc{
				Operation: op.Name(),
				From:      s.Name(),
				Options:   optionsDoc(opts),
				Result:    res.Specs.Name(),
				Geometry: geometryDoc{
					Vertices:  p.NumVertices(),
					Edges:     p.NumEdges(),
					Faces:     p.NumFaces(),
					FaceSizes: p.FaceSizes(),
				},
				Valid: true,
			}
			if verr := polyhedron.Validate(p, geom.Precision); verr != nil {
				doc.Valid, doc.Problem = false, verr.Error()
				log.Warn("invalid result", "result", doc.Result, "err", verr)
			}
			return e.emit(cmd.OutOrStdout(), doc, func() format.TableBuilder {
				tb := e.table()
				tb.Header("Operation", "From", "Result", "V / E / F", "Valid")
				tb.Row(doc.Operation, format.TitleName(doc.From), format.TitleName(doc.Result),
					formatVEF(doc.Geometry.Vertices, doc.Geometry.Edges, doc.Geometry.Faces), format.BoolMark(doc.Valid))
				return tb
			})
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "opt", nil, "operation option as key=value (repeatable)")
	return cmd
}

// optionsDoc lists the options that were set, the selected face or cap by
// face index.
func optionsDoc(o operations.Options) map[string]interface{} {
	out := make(map[string]interface{})
	g := o.GraphOptions
	for k, v := range map[string]string{
		"facet":  string(g.Facet),
		"twist":  string(g.Twist),
		"gyrate": string(g.Gyrate),
		"align":  string(g.Align),
		"using":  string(g.Using),
	} {
		if v != "" {
			out[k] = v
		}
	}
	if g.FaceType > 0 {
		out["faceType"] = g.FaceType
	}
	if o.HasFace() {
		out["face"] = o.Face.Index()
	}
	if o.HasCap() {
		out["capBase"] = o.Cap.Base()
		out["capKind"] = string(o.Cap.Kind())
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
