package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/table"
)

const compareCellWidth = 26

// compareModal shows a comparison matrix: one line per column descriptor,
// one column per selected item. Items that do not fit scroll horizontally.
type compareModal struct {
	comparison table.Comparison
	offset     int // first item column shown
}

func newCompareModal(c table.Comparison) *compareModal {
	return &compareModal{comparison: c}
}

func (m *compareModal) ScrollRight() {
	if m.offset < m.comparison.Items()-1 {
		m.offset++
	}
}

func (m *compareModal) ScrollLeft() {
	if m.offset > 0 {
		m.offset--
	}
}

// visibleItems returns how many item columns fit in width.
func (m *compareModal) visibleItems(labelWidth, width int) int {
	if width <= 0 {
		return m.comparison.Items()
	}
	avail := width - labelWidth - 8 // modal border and padding
	return max(1, avail/(compareCellWidth+len(cellGap)))
}

func (m *compareModal) View(width int) string {
	title := styles.ModalTitleStyle.Render(styles.IconCompare + " Compare selected")

	if m.comparison.Empty() {
		body := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			styles.MutedStyle.Render("No rows selected for comparison"),
			styles.ModalHelpStyle.Render("esc close"),
		)
		return styles.ModalStyle.Render(body)
	}

	labelWidth := ansi.StringWidth(table.FieldLabel)
	for _, row := range m.comparison.Rows {
		labelWidth = max(labelWidth, ansi.StringWidth(row[0]))
	}

	first := 1 + m.offset
	last := min(first+m.visibleItems(labelWidth, width), len(m.comparison.Header))

	render := func(cells []string, header bool) string {
		parts := []string{pad(cells[0], labelWidth)}
		for _, c := range cells[first:last] {
			parts = append(parts, pad(ansi.Truncate(c, compareCellWidth, "…"), compareCellWidth))
		}
		line := strings.Join(parts, cellGap)
		if header {
			return styles.TableHeaderStyle.Render(line)
		}
		return line
	}

	header := append([]string{table.FieldLabel}, m.comparison.Header[1:]...)
	lines := []string{render(header, true)}
	for _, row := range m.comparison.Rows {
		lines = append(lines, render(row, false))
	}

	status := fmt.Sprintf("%d items • %d fields", m.comparison.Items(), len(m.comparison.Rows))
	if last-first < m.comparison.Items() {
		status += fmt.Sprintf(" • showing %d-%d", first, last-1)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
		"",
		styles.MutedStyle.Render(status),
		styles.ModalHelpStyle.Render(styles.IconExport+" x export xlsx • ←/→ scroll • esc close"),
	)
	return styles.ModalStyle.Render(body)
}
