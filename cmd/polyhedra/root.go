// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// root.go: the command tree, global flags and the shared environment.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/internal/logging"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	output    string
}

// env is what every command works against, built once flags are parsed.
type env struct {
	u   *specs.Universe
	b   *builder.Builder
	cat *operations.Catalogue

	output string
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		e     = &env{}
	)
	root := &cobra.Command{
		Use:   "polyhedra",
		Short: "Browse convex regular-faced solids and the operations between them",
		Long: "polyhedra names every Platonic, Archimedean and Johnson solid, prism and antiprism,\n" +
			"realizes its geometry and walks the operations (truncate, augment, gyrate, ...) that\n" +
			"turn one solid into another.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, flags)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVarP(&flags.output, "output", "o", "table", "output: table, markdown or yaml")

	root.AddCommand(
		newListCmd(e),
		newShowCmd(e),
		newApplyCmd(e),
		newRouteCmd(e),
		newVerifyCmd(e),
		newTablesCmd(e),
	)
	return root
}

func (e *env) init(cmd *cobra.Command, flags rootFlags) error {
	level, err := logging.ParseLevel(flags.logLevel)
	if err != nil {
		return err
	}
	switch flags.output {
	case "table", "markdown", "yaml":
	default:
		return fmt.Errorf("unknown output %q (want table, markdown or yaml)", flags.output)
	}
	logging.Init(level, flags.logFormat, cmd.ErrOrStderr())

	e.output = flags.output
	e.u = specs.Default()
	if e.b, err = builder.New(builder.WithLogger(logging.New("builder"))); err != nil {
		return err
	}
	e.cat, err = operations.NewCatalogue(
		operations.WithLogger(logging.New("operations")),
		operations.WithBuilder(e.b),
		operations.WithUniverse(e.u),
	)
	return err
}

// resolve looks name up as a display name, then as any alternate name.
func (e *env) resolve(name string) (specs.Specs, error) {
	if s, err := e.u.GetSpecs(name); err == nil {
		return s, nil
	}
	return e.u.GetCanonicalSpecs(name)
}

// table starts a table in the configured mode.
func (e *env) table() format.TableBuilder {
	m, _ := format.ParseMode(e.output)
	return format.NewTable(m)
}

// emit writes doc as YAML when requested and otherwise renders tb.
func (e *env) emit(w io.Writer, doc any, tb func() format.TableBuilder) error {
	if e.output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, tb().String())
	return err
}
