package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ellipsis marks a cell shortened to its column limit
const ellipsis = "…"

// Table is a bordered table with one header row. Widths are measured with
// lipgloss so styled cells line up.
type Table struct {
	title   string
	columns []column
	rows    []row
}

type column struct {
	header string
	width  int
	max    int // zero means unlimited
}

type row struct {
	cells  []string
	active bool
}

// NewTable creates a table with the given column headers
func NewTable(headers ...string) *Table {
	columns := make([]column, len(headers))
	for i, h := range headers {
		columns[i] = column{header: h, width: lipgloss.Width(h)}
	}
	return &Table{columns: columns}
}

// SetTitle sets a title centred above the header row
func (t *Table) SetTitle(title string) {
	t.title = title
}

// SetMaxWidth caps column i at width cells. Longer cells keep their tail,
// which is where archive names differ, and start with an ellipsis.
func (t *Table) SetMaxWidth(i, width int) {
	if i < 0 || i >= len(t.columns) || width < 1 {
		return
	}
	c := &t.columns[i]
	c.max = width
	if c.width > width {
		c.width = width
	}
	for _, r := range t.rows {
		if w := lipgloss.Width(r.cells[i]); w > c.width {
			c.width = min(w, width)
		}
	}
}

// AddRow appends a row; missing cells are left blank and extra cells dropped
func (t *Table) AddRow(cells ...string) {
	t.add(cells, false)
}

// AddActiveRow appends a row drawn in the success color
func (t *Table) AddActiveRow(cells ...string) {
	t.add(cells, true)
}

func (t *Table) add(cells []string, active bool) {
	r := row{cells: make([]string, len(t.columns)), active: active}
	for i := range t.columns {
		if i >= len(cells) {
			continue
		}
		r.cells[i] = cells[i]
		w := lipgloss.Width(cells[i])
		if c := &t.columns[i]; c.max > 0 {
			c.width = max(c.width, min(w, c.max))
		} else {
			c.width = max(c.width, w)
		}
	}
	t.rows = append(t.rows, r)
}

// fit shortens s to width, keeping its end.
func fit(s string, width int) string {
	if width < 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	keep := width - lipgloss.Width(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return ellipsis + string(runes[len(runes)-keep:])
}

// Render returns the table as a string, or "" when it has no columns
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	initStyles()

	total := 0
	for _, c := range t.columns {
		total += c.width + 2
	}

	var lines []string

	if t.title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Width(total).
			Align(lipgloss.Center)
		lines = append(lines, titleStyle.Render(t.title))
		lines = append(lines, StyleMuted.Render(strings.Repeat("─", total)))
	}

	var header, sep strings.Builder
	for _, c := range t.columns {
		header.WriteString(StyleTableHeader.Width(c.width + 2).Render(c.header))
		sep.WriteString(StyleMuted.Render(strings.Repeat("─", c.width+2)))
	}
	lines = append(lines, header.String(), sep.String())

	for _, r := range t.rows {
		var line strings.Builder
		for i, cell := range r.cells {
			c := t.columns[i]
			style := StyleTableCell.Width(c.width + 2)
			if r.active {
				style = style.Foreground(colorSuccess)
			}
			if c.max > 0 {
				cell = fit(cell, c.max)
			}
			line.WriteString(style.Render(cell))
		}
		lines = append(lines, line.String())
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}
