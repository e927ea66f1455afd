package report

import (
	"strings"

	"github.com/nao1215/rstfy/internal/model"
)

// HeaderLabels are the column headings in column order: problem title,
// assignees, correct solutions, incorrect (expected-to-fail) solutions,
// test inputs, accepted/correct outputs and input validators.
var HeaderLabels = [model.MetricColumns]string{
	"問題",
	"担当",
	"正答",
	"想定誤答",
	"入力",
	"出力",
	"入検",
}

// minColumnWidths are the column widths before any data row is measured.
// Each is at least the display width of its header label.
var minColumnWidths = [model.MetricColumns]int{4, 4, 4, 8, 4, 4, 4}

// ColumnWidths returns the width of every column: the larger of the
// column's minimum and its widest field.
func ColumnWidths(rows []model.MetricRow) [model.MetricColumns]int {
	widths := minColumnWidths
	for _, r := range rows {
		for i, field := range r.Fields() {
			widths[i] = max(widths[i], DisplayWidth(field))
		}
	}
	return widths
}

// RenderTable renders rows as a grid table. Rows keep their input order.
//
//	+------+------+
//	| 問題 | 担当 |
//	+======+======+
//	| A    | bob  |
//	+------+------+
func RenderTable(rows []model.MetricRow) string {
	widths := ColumnWidths(rows)
	border := rule(widths, "-")

	var sb strings.Builder
	sb.WriteString(border)
	writeRow(&sb, widths, HeaderLabels)
	sb.WriteString(rule(widths, "="))
	for _, r := range rows {
		writeRow(&sb, widths, r.Fields())
		sb.WriteString(border)
	}
	return sb.String()
}

// rule returns a border line such as "+----+------+".
func rule(widths [model.MetricColumns]int, fill string) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat(fill, w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

// writeRow writes one "| a | b |" line, padding every field to its column.
func writeRow(sb *strings.Builder, widths [model.MetricColumns]int, fields [model.MetricColumns]string) {
	sb.WriteString("|")
	for i, f := range fields {
		sb.WriteString(" ")
		sb.WriteString(f)
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat(" ", widths[i]-DisplayWidth(f)))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
}
