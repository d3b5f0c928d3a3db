package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows with padded columns. The first column is
// left-aligned, the rest right-aligned (the rows here are name plus
// numbers).
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table as a string.
func (t *Table) View() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(col int, s string) string {
		gap := widths[col] - lipgloss.Width(s)
		if gap < 0 {
			gap = 0
		}
		if col == 0 {
			return s + strings.Repeat(" ", gap)
		}
		return strings.Repeat(" ", gap) + s
	}

	var sb strings.Builder
	total := 0
	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString("  ")
			total += 2
		}
		sb.WriteString(TitleStyle.Render(pad(i, h)))
		total += widths[i]
	}
	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Render(strings.Repeat("─", total)))
	for _, row := range t.Rows {
		sb.WriteString("\n")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(pad(i, cell))
		}
	}
	return sb.String()
}
