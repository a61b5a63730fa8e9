// Package tui implements the interactive procurement workbench.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/logging"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/table"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/internal/tui/components"
)

type tab int

const (
	tabRFPs tab = iota
	tabApplicants
	tabActivity
)

var tabNames = []string{"RFPs", "Applicants", "Activity"}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayCompare
	overlayActions
	overlayConfirm
	overlayDetail
	overlayForm
)

// tableModel is the part of tableView the model drives without knowing
// the row type.
type tableModel interface {
	HandleKey(tea.KeyMsg) (bool, tea.Cmd)
	UpdateInput(tea.Msg) tea.Cmd
	Filtering() bool
	View(width int) string
}

// Model is the root bubbletea model.
type Model struct {
	app  *tender.App
	wb   *tender.Workbench
	ctx  context.Context
	keys KeyMap
	help help.Model
	now  func() time.Time
	user string
	log  zerolog.Logger

	tab        tab
	rfps       *tableView[rfp.RFP]
	applicants *tableView[rfp.Applicant]
	activity   *tableView[activity.Entry]

	overlay overlay
	compare *compareModal
	menu    *actionMenu
	confirm components.ConfirmModal
	pending func(ctx context.Context) error
	detail  *detailView
	form    *wizardForm
	queued  []tea.Cmd

	toasts        *ToastController
	toastView     *ToastView
	notifications *NotificationBuffer

	width  int
	height int
}

// New creates the workbench model and subscribes it to the app's bus.
func New(ctx context.Context, app *tender.App) *Model {
	keys := DefaultKeyMap()
	wb := app.Workbench
	toasts := NewToastController()

	m := &Model{
		app:           app,
		wb:            wb,
		ctx:           ctx,
		keys:          keys,
		help:          help.New(),
		now:           time.Now,
		user:          wb.User(),
		log:           logging.Component("tui"),
		toasts:        toasts,
		toastView:     NewToastView(toasts),
		notifications: NewNotificationBuffer(),
	}

	m.rfps = newTableView(wb.RFPPresenter(), keys, true)
	m.rfps.colorCell = func(key string, r rfp.RFP, text string) string {
		if key != "status" {
			return text
		}
		return lipgloss.NewStyle().Foreground(styles.StatusColor(r.Status)).Render(text)
	}
	m.applicants = newTableView(wb.ApplicantPresenter(""), keys, true)

	nowFn := func() time.Time { return m.now() }
	m.activity = newTableView(table.NewPresenter(activity.Columns(nowFn), activity.RowID, app.Config.Table.PageSize), keys, false)

	m.notifications.Attach(app.Bus)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.notifications.WaitForSignal(), m.loadActivity())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.detail != nil {
			m.detail.SetSize(msg.Width, m.bodyHeight())
		}
		return m, nil

	case drainNotificationsMsg:
		return m, m.drainNotifications()

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case activityLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("failed to load activity")
			return m, nil
		}
		page := m.activity.p.Pager().Page()
		m.activity.SetRows(msg.entries)
		m.activity.p.Pager().GoToPage(page)
		return m, nil

	case linksLoadedMsg:
		if m.detail != nil && m.detail.RFPID() == msg.rfpID {
			m.detail.SetLinks(msg.links, msg.err)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err == nil && m.overlay == overlayCompare {
			m.closeOverlay()
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	switch m.overlay {
	case overlayForm:
		return m, m.form.Update(m.ctx, msg)
	case overlayDetail:
		return m, m.detail.Update(msg)
	case overlayNone:
		return m, m.activeTable().UpdateInput(msg)
	}
	return m, nil
}

func (m *Model) drainNotifications() tea.Cmd {
	cmds := []tea.Cmd{m.notifications.WaitForSignal(), m.loadActivity()}
	for _, n := range m.notifications.Drain() {
		m.toasts.Push(n)
	}
	if m.toasts.HasToasts() && !m.toasts.Ticking() {
		m.toasts.SetTicking(true)
		cmds = append(cmds, scheduleToastTick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeTable() tableModel {
	switch m.tab {
	case tabApplicants:
		return m.applicants
	case tabActivity:
		return m.activity
	default:
		return m.rfps
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Dismiss) {
		m.toasts.Dismiss()
		return nil
	}

	switch m.overlay {
	case overlayForm:
		return m.updateForm(msg)
	case overlayConfirm:
		return m.updateConfirm(msg)
	case overlayActions:
		return m.updateMenu(msg)
	case overlayCompare:
		return m.updateCompare(msg)
	case overlayDetail:
		switch msg.String() {
		case "esc", "q", "d":
			m.closeOverlay()
			return nil
		}
		return m.detail.Update(msg)
	case overlayHelp:
		m.closeOverlay()
		return nil
	}

	t := m.activeTable()
	if t.Filtering() {
		_, cmd := t.HandleKey(msg)
		return cmd
	}

	rows := m.tab != tabActivity
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(msg.String())
	case key.Matches(msg, m.keys.Compare) && rows:
		m.openCompare()
	case key.Matches(msg, m.keys.Export):
		return m.export()
	case key.Matches(msg, m.keys.Actions) && rows:
		m.openActions()
	case key.Matches(msg, m.keys.Detail) && rows:
		m.detailForCurrent()
	case key.Matches(msg, m.keys.NewRFP) && m.tab == tabRFPs:
		m.openForm(newRFPWizard(m.wb, m.now()))
	case key.Matches(msg, m.keys.Refresh):
		m.reloadRows()
		return m.loadActivity()
	case key.Matches(msg, m.keys.Clear) && m.tab == tabActivity:
		m.askConfirm("Clear activity log", "Delete every recorded activity entry?", m.wb.ClearActivity)
	default:
		_, cmd := t.HandleKey(msg)
		return cmd
	}
	return m.takeQueued()
}

func (m *Model) switchTab(k string) {
	switch k {
	case "1":
		m.tab = tabRFPs
	case "2":
		m.tab = tabApplicants
	case "3":
		m.tab = tabActivity
	case "shift+tab":
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	default:
		m.tab = (m.tab + 1) % tab(len(tabNames))
	}
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
	m.compare = nil
	m.menu = nil
	m.detail = nil
	m.form = nil
}

func (m *Model) queue(cmd tea.Cmd) { m.queued = append(m.queued, cmd) }

func (m *Model) takeQueued() tea.Cmd {
	cmds := m.queued
	m.queued = nil
	return tea.Batch(cmds...)
}

func (m *Model) bodyHeight() int {
	return max(m.height-4, 5)
}

func (m *Model) reloadRows() {
	m.rfps.SetRows(m.wb.RFPRows())
	m.applicants.SetRows(m.wb.Catalog().Applicants(""))
}

func (m *Model) loadActivity() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.wb.Activity(m.ctx, 0)
		return activityLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) loadLinks(rfpID string) tea.Cmd {
	if !m.app.Config.Backend.Enabled() {
		return func() tea.Msg { return linksLoadedMsg{rfpID: rfpID, err: backend.ErrNotConfigured} }
	}
	return func() tea.Msg {
		links, err := m.app.Links.List(m.ctx, backend.LinkFilter{RFPID: rfpID})
		return linksLoadedMsg{rfpID: rfpID, links: links, err: err}
	}
}

// Comparison

func (m *Model) openCompare() {
	var (
		c        table.Comparison
		selected int
	)
	switch m.tab {
	case tabRFPs:
		c, selected = m.rfps.p.Compare(), m.rfps.p.Selection().Len()
	case tabApplicants:
		c, selected = m.applicants.p.Compare(), m.applicants.p.Selection().Len()
	}

	if selected == 1 {
		m.app.Bus.Info("Select another row", "Pick at least two rows to compare")
		return
	}
	if !c.Empty() {
		m.wb.Record(m.ctx, activity.ActionCompare, "Compared "+strings.Join(c.Header[1:], ", "), "")
	}

	m.compare = newCompareModal(c)
	m.overlay = overlayCompare
}

func (m *Model) updateCompare(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "c":
		m.closeOverlay()
	case "left", "h":
		m.compare.ScrollLeft()
	case "right", "l":
		m.compare.ScrollRight()
	case "x":
		return m.exportComparison(m.compare.comparison)
	}
	return nil
}

func (m *Model) exportComparison(c table.Comparison) tea.Cmd {
	return func() tea.Msg {
		path, err := m.wb.ExportComparison(m.ctx, c)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *Model) export() tea.Cmd {
	switch m.tab {
	case tabRFPs:
		return m.exportComparison(m.rfps.p.Compare())
	case tabApplicants:
		return m.exportComparison(m.applicants.p.Compare())
	default:
		return func() tea.Msg {
			path, err := m.wb.ExportActivity(m.ctx)
			return exportDoneMsg{path: path, err: err}
		}
	}
}

// Actions and confirmation

func (m *Model) openActions() {
	switch m.tab {
	case tabRFPs:
		e, ok := m.rfps.Current()
		if !ok {
			return
		}
		m.menu = newActionMenu(fmt.Sprintf("%s %s", e.Row.ID, e.Row.Title), bindActions(m.wb, m.rfpActions(), e.Row))
	case tabApplicants:
		e, ok := m.applicants.Current()
		if !ok {
			return
		}
		m.menu = newActionMenu(fmt.Sprintf("%s · %s", e.Row.Vendor, e.Row.RFPID), bindActions(m.wb, m.applicantActions(), e.Row))
	default:
		return
	}
	m.overlay = overlayActions
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.closeOverlay()
	case "up", "k":
		m.menu.Up()
	case "down", "j":
		m.menu.Down()
	case "enter":
		item, ok := m.menu.Selected()
		m.closeOverlay()
		if !ok {
			return nil
		}
		if item.confirm != "" {
			m.askConfirm(item.label, item.confirm, item.run)
			return nil
		}
		_ = item.run(m.ctx)
		return m.takeQueued()
	}
	return nil
}

func (m *Model) askConfirm(title, message string, run func(ctx context.Context) error) {
	m.confirm = components.NewConfirmModal(title, message)
	m.pending = run
	m.overlay = overlayConfirm
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	m.confirm, _ = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return nil
	}

	run := m.pending
	m.pending = nil
	m.closeOverlay()
	if m.confirm.Confirmed() && run != nil {
		if err := run(m.ctx); err != nil {
			m.log.Warn().Err(err).Msg("confirmed action failed")
		}
	}
	return m.takeQueued()
}

// Detail and forms

func (m *Model) openDetail(ctx context.Context, rfpID string) error {
	d, err := m.wb.Detail(ctx, rfpID)
	if err != nil {
		return err
	}
	m.detail = newDetailView(d, m.width, m.bodyHeight(), m.now)
	m.overlay = overlayDetail
	m.queue(m.loadLinks(d.RFP.ID))
	return nil
}

func (m *Model) detailForCurrent() {
	var id string
	switch m.tab {
	case tabRFPs:
		if e, ok := m.rfps.Current(); ok {
			id = e.Row.ID
		}
	case tabApplicants:
		if e, ok := m.applicants.Current(); ok {
			id = e.Row.RFPID
		}
	}
	if id == "" {
		return
	}
	if err := m.openDetail(m.ctx, id); err != nil {
		m.app.Bus.Error("Could not open details", err)
	}
}

func (m *Model) openForm(f *wizardForm) {
	m.form = f
	m.overlay = overlayForm
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	cmd := m.form.Update(m.ctx, msg)
	switch {
	case m.form.Done():
		m.closeOverlay()
		m.reloadRows()
	case m.form.Cancelled():
		m.closeOverlay()
	}
	return cmd
}

// View

func (m *Model) View() string {
	if m.overlay == overlayDetail && m.detail != nil {
		out := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), "", m.detail.View())
		return m.toastView.Overlay(out, m.width, m.height)
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		"",
		m.activeTable().View(m.width),
		styles.HelpStyle.Render(m.help.View(m.keys)),
	)
	if modal := m.modalView(); modal != "" {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return m.toastView.Overlay(out, m.width, m.height)
}

func (m *Model) modalView() string {
	switch m.overlay {
	case overlayHelp:
		h := m.help
		h.ShowAll = true
		return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render("Keys"),
			"",
			h.View(m.keys),
			styles.ModalHelpStyle.Render("any key closes"),
		))
	case overlayCompare:
		return m.compare.View(m.width)
	case overlayActions:
		return m.menu.View()
	case overlayConfirm:
		return m.confirm.View()
	case overlayForm:
		return m.form.View()
	}
	return ""
}

func (m *Model) headerView() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			tabs[i] = styles.TabActiveStyle.Render(label)
		} else {
			tabs[i] = styles.TabInactiveStyle.Render(label)
		}
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TitleStyle.Render("tender"),
		strings.Join(tabs, " "),
		"  ",
		styles.MutedStyle.Render(styles.IconUser+" "+m.user),
	)

	s := m.wb.Catalog().Summary()
	summary := fmt.Sprintf("%d RFPs • %d open • %s budget • %d applicants • avg score %.0f",
		s.Total, s.ByStatus[rfp.StatusOpen], rfp.Money(s.TotalBudget), s.Applicants, s.AverageScore)

	return lipgloss.JoinVertical(lipgloss.Left, top, styles.SummaryStyle.Render(summary))
}
