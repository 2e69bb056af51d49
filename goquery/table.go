package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RenderTable converts a table to a Markdown grid. The first row becomes
// the header. Cells hold their trimmed text; rows keep whatever number of
// cells they have. A table without rows renders as a blank line.
func RenderTable(table *goquery.Selection) string {
	rows := tableRows(table)

	var b strings.Builder
	b.WriteString("\n\n")
	if len(rows) == 0 {
		return b.String()
	}

	header := cellTexts(rows[0])
	writeTableRow(&b, header)
	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = "---"
	}
	writeTableRow(&b, separator)
	for _, row := range rows[1:] {
		writeTableRow(&b, cellTexts(row))
	}
	b.WriteString("\n")
	return b.String()
}

// tableRows returns the rows that belong to table itself, not to tables
// nested in its cells.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.Closest("table").IsSelection(table) {
			rows = append(rows, tr)
		}
	})
	return rows
}

func cellTexts(row *goquery.Selection) []string {
	cells := row.ChildrenFiltered("td, th")
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
