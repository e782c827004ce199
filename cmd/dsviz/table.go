package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"

	"github.com/pders01/dsviz/internal/structure"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

// newTable creates a table with the first column in bold.
func newTable(w io.Writer, headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(w)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return boldStyle.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithPadding(2)
	// lipgloss measures printable width, ignoring ANSI sequences
	tbl.WithWidthFunc(lipgloss.Width)
	return tbl
}

func printVariants(w io.Writer, catalog *structure.Catalog) {
	tbl := newTable(w, "NAME", "TITLE", "LIMIT", "MAX", "SEED", "OPERATIONS")
	for _, v := range catalog.Variants() {
		ops := v.Ops().Ops()
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.String()
		}
		tbl.AddRow(v.Name, v.Title, v.Capacity, v.Ceiling, formatSeed(v.Seed), strings.Join(names, ","))
	}
	tbl.Print()
}

func formatSeed(seed []int) string {
	if len(seed) == 0 {
		return "-"
	}
	parts := make([]string, len(seed))
	for i, s := range seed {
		parts[i] = fmt.Sprint(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
