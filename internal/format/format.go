// SPDX-License-Identifier: MIT
// Package: polyhedra/internal/format
//
// format.go: table rendering for CLI output over go-pretty.

package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects how a table is laid out.
type Mode int

const (
	ASCII    Mode = iota // box-drawn, for terminals
	Markdown             // pipe tables for READMEs and issues
)

// ParseMode reads the --format flag: "table" or "ascii" for ASCII,
// "markdown" or "md" for Markdown. The empty string means ASCII.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "table", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return ASCII, fmt.Errorf("format: unknown table mode %q", s)
}

// ColumnAlign places cell text within its column.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ColumnConfig overrides the layout of one column.
type ColumnConfig struct {
	Number   int // counted from 1
	Align    ColumnAlign
	MaxWidth int // wrap point; 0 never wraps
}

// TableBuilder accumulates the rows of one report table. Headers are printed
// as given.
type TableBuilder interface {
	Header(cols ...string)
	Row(vals ...any) // cells go through fmt.Sprint
	Footer(vals ...any)
	Columns(cfgs ...ColumnConfig)
	Title(s string)
	String() string
}

// NewTable starts an empty table laid out in m.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	w.Style().Format.Header = text.FormatDefault
	w.Style().Format.Footer = text.FormatDefault
	return &prettyAdapter{writer: w, mode: m}
}

type prettyAdapter struct {
	writer table.Writer
	mode   Mode
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendRow(row)
}

func (a *prettyAdapter) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendFooter(row)
}

func (a *prettyAdapter) Columns(cfgs ...ColumnConfig) {
	out := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		out[i] = table.ColumnConfig{
			Number:   c.Number,
			Align:    toTextAlign(c.Align),
			WidthMax: c.MaxWidth,
		}
	}
	a.writer.SetColumnConfigs(out)
}

func (a *prettyAdapter) Title(s string) { a.writer.SetTitle(s) }

func (a *prettyAdapter) String() string {
	if a.mode == Markdown {
		return a.writer.RenderMarkdown()
	}
	return a.writer.Render()
}

func toTextAlign(a ColumnAlign) text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignRight:
		return text.AlignRight
	case AlignCenter:
		return text.AlignCenter
	default:
		return text.AlignDefault
	}
}
