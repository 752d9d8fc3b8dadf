// SPDX-License-Identifier: MIT
// Package: polyhedra/internal/format
//
// helpers.go: cell formatting.

package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleName capitalizes every word of a solid name. Symbols in
// parentheses, like "(right)", keep their case.
func TitleName(name string) string {
	titler := cases.Title(language.English)
	words := strings.Fields(name)
	for i, w := range words {
		if !strings.HasPrefix(w, "(") {
			words[i] = titler.String(w)
		}
	}
	return strings.Join(words, " ")
}

// BoolMark is the cell for a pass/fail column.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// Dash fills blank cells.
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
