package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tender/internal/core/action"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/tender"
)

// menuItem is an action bound to the row it was opened for.
type menuItem struct {
	label       string
	icon        string
	placeholder bool
	confirm     string
	run         func(ctx context.Context) error
}

func bindActions[R any](wb *tender.Workbench, actions []action.Action[R], row R) []menuItem {
	items := make([]menuItem, 0, len(actions))
	for _, a := range actions {
		items = append(items, menuItem{
			label:       a.Label,
			icon:        a.Icon,
			placeholder: !a.Implemented(),
			confirm:     a.Confirm,
			run:         func(ctx context.Context) error { return tender.RunAction(ctx, wb, a, row) },
		})
	}
	return items
}

type actionMenu struct {
	title  string
	items  []menuItem
	cursor int
}

func newActionMenu(title string, items []menuItem) *actionMenu {
	return &actionMenu{title: title, items: items}
}

func (m *actionMenu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *actionMenu) Down() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Selected returns the highlighted item.
func (m *actionMenu) Selected() (menuItem, bool) {
	if len(m.items) == 0 {
		return menuItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *actionMenu) View() string {
	lines := make([]string, 0, len(m.items))
	for i, it := range m.items {
		label := it.icon + " " + it.label
		if it.placeholder {
			label += styles.MutedStyle.Render(" (soon)")
		}
		if i == m.cursor {
			lines = append(lines, styles.TableCursorStyle.Render("› "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render("enter run • esc close"),
	)
	return styles.ModalStyle.Render(body)
}
