// SPDX-License-Identifier: MIT
package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/internal/format"
)

func TestASCII_Table(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Name", "V", "E", "F")
	tb.Row("cube", 8, 12, 6)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	out := tb.String()

	assert.Contains(t, out, "Name")
	assert.NotContains(t, out, "NAME")
	assert.Contains(t, out, "cube")
	assert.Contains(t, out, "───")
}

func TestMarkdown_Table(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Op", "Entries")
	tb.Row("truncate", 13)
	tb.Footer("total", 13)
	out := tb.String()

	assert.Contains(t, out, "| Op")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "truncate")
	assert.Contains(t, out, "total")
}

func TestParseMode(t *testing.T) {
	m, err := format.ParseMode("markdown")
	require.NoError(t, err)
	assert.Equal(t, format.Markdown, m)
	m, err = format.ParseMode("table")
	require.NoError(t, err)
	assert.Equal(t, format.ASCII, m)
	_, err = format.ParseMode("html")
	assert.Error(t, err)
}

func TestTitleName(t *testing.T) {
	assert.Equal(t, "Truncated Cube", format.TitleName("truncated cube"))
	assert.Equal(t, "Snub Cube (right)", format.TitleName("snub cube (right)"))
	assert.Equal(t, "-", format.Dash(""))
	assert.Equal(t, "✓", format.BoolMark(true))
}
