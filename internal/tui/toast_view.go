package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the toast stack and lays it over the workbench.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View stacks the toasts vertically, oldest at top.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func toastAccent(level notify.Level) (string, lipgloss.Color) {
	p := styles.CurrentPalette
	switch level {
	case notify.LevelSuccess:
		return styles.IconSuccess, p.Success
	case notify.LevelWarning:
		return styles.IconWarning, p.Warning
	case notify.LevelError:
		return styles.IconError, p.Error
	default:
		return styles.IconInfo, p.Primary
	}
}

func renderToast(t toast) string {
	icon, color := toastAccent(t.notification.Level)

	title := t.notification.Title
	if t.repeats > 0 {
		title = fmt.Sprintf("%s (x%d)", title, t.repeats+1)
	}

	content := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + title)
	if t.notification.Description != "" {
		content += "\n" + styles.MutedStyle.Render(t.notification.Description)
	}
	return styles.ToastStyle.BorderForeground(color).Render(content)
}

// Overlay draws the toast stack over the bottom-right corner of background.
// Background lines under the stack are cut to make room.
func (v *ToastView) Overlay(background string, width, height int) string {
	stack := v.View()
	if stack == "" {
		return background
	}

	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	toastLines := strings.Split(stack, "\n")
	left := max(width-lipgloss.Width(stack)-1, 0)
	start := max(len(lines)-len(toastLines), 0)

	for i, tl := range toastLines {
		row := start + i
		if row >= len(lines) {
			break
		}
		base := ansi.Truncate(lines[row], left, "")
		gap := max(left-ansi.StringWidth(base), 0)
		lines[row] = base + strings.Repeat(" ", gap) + tl
	}
	return strings.Join(lines, "\n")
}
