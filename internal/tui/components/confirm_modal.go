// Package components provides reusable TUI widgets.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tender/internal/core/styles"
)

// ConfirmModal is a yes/no dialog. Left/right or tab move between the
// buttons; y and n answer directly.
type ConfirmModal struct {
	title     string
	message   string
	onConfirm bool // confirm button focused
	confirmed bool
	cancelled bool
}

// NewConfirmModal creates a dialog with the cancel button focused.
func NewConfirmModal(title, message string) ConfirmModal {
	return ConfirmModal{title: title, message: message}
}

// Update handles input for the dialog.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.onConfirm = !m.onConfirm
	case "enter":
		if m.onConfirm {
			m.confirmed = true
		} else {
			m.cancelled = true
		}
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModal) View() string {
	confirm := styles.ModalButtonStyle.Render("Confirm")
	cancel := styles.ModalButtonSelectedStyle.Render("Cancel")
	if m.onConfirm {
		confirm = styles.ModalButtonSelectedStyle.Render("Confirm")
		cancel = styles.ModalButtonStyle.Render("Cancel")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", confirm),
		styles.ModalHelpStyle.Render("y confirm • n/esc cancel • ←/→ switch"),
	)
	return styles.ModalStyle.Render(content)
}

// Confirmed reports whether the user accepted.
func (m ConfirmModal) Confirmed() bool { return m.confirmed }

// Cancelled reports whether the user declined.
func (m ConfirmModal) Cancelled() bool { return m.cancelled }

// Done reports whether the dialog was answered either way.
func (m ConfirmModal) Done() bool { return m.confirmed || m.cancelled }
