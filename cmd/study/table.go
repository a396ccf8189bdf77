package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cells wider than this are cut with an ellipsis so one long task title
// can't push the remaining columns off screen.
const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// formatTable renders rows under a header as space-aligned columns.
// Cells are flattened to a single line and truncated; widths are
// measured with lipgloss so styled cells align with plain ones.
func formatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}

	prepared := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i >= len(row) {
				break
			}
			cell := truncateTableCell(row[i])
			cells[i] = cell
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
		prepared = append(prepared, cells)
	}

	var builder strings.Builder
	writeRow := func(cells []string) {
		last := len(cells) - 1
		for i, cell := range cells {
			builder.WriteString(cell)
			if i == last {
				break
			}
			builder.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
		}
		builder.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range prepared {
		writeRow(row)
	}
	return builder.String()
}

// truncateTableCell flattens whitespace and cuts overlong cells. Styled
// cells (priority labels, status markers) are short by construction and
// never reach the cut.
func truncateTableCell(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
	if lipgloss.Width(value) <= tableCellMaxWidth {
		return value
	}
	runes := []rune(value)
	return string(runes[:tableCellMaxWidth-len(tableCellEllipsis)]) + tableCellEllipsis
}
