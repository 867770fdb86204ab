// Package export renders a query result as CSV or HTML text. Rows appear in
// the order the query pipeline produced them.
// See docs/ARCHITECTURE.md § System Components (Export).
package export

import (
	"html"
	"strings"
)

// View is a rendered query result: human-readable column names and one row
// of cells per record, already in display order.
type View struct {
	Columns []string
	Rows    [][]string
}

// CSV renders the view with a header row, every field wrapped in double
// quotes, internal double quotes doubled, and a trailing newline.
func CSV(v View) string {
	var b strings.Builder
	writeCSVRow(&b, v.Columns)
	for _, row := range v.Rows {
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// HTML renders the view as a bare table with escaped cell text, suitable for
// embedding in a print or email surface.
func HTML(v View) string {
	var b strings.Builder
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, col := range v.Columns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range v.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}
