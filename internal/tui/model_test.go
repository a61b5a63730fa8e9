package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/export"
	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/data/db"
	"github.com/colonyops/tender/internal/data/stores"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/tuitest"
)

func newTestModel(t *testing.T) (*Model, *tender.App) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Export.Dir = t.TempDir()

	database, err := db.Open(cfg.DataDir, db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	bus := notify.NewBus(stores.NewNotifyStore(database))
	app := tender.NewApp(&cfg, database, rfp.SeedCatalog(), stores.NewActivityStore(database), bus)

	m := New(context.Background(), app)
	m.Update(tuitest.WindowSize(160, 40))
	return m, app
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tuitest.KeyType(tea.KeyEnter)
		case "esc":
			msg = tuitest.KeyType(tea.KeyEsc)
		case "tab":
			msg = tuitest.KeyType(tea.KeyTab)
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tuitest.KeyRune([]rune(k)[0])
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	tuitest.Send(m, tuitest.Type(s)...)
}

func view(m *Model) string {
	return tuitest.StripANSI(m.View())
}

func lastNotification(t *testing.T, m *Model) notify.Notification {
	t.Helper()
	items := m.notifications.Drain()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t)

	out := view(m)

	assert.Contains(t, out, "1 RFPs")
	assert.Contains(t, out, "Cloud Infrastructure Migration")
	assert.Contains(t, out, "Page 1 of 5")
	assert.Contains(t, out, "50 rows")
	assert.Contains(t, out, "5 RFPs • 1 open")
}

func TestModel_PagingAndSort(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "n", "n")
	assert.Contains(t, view(m), "Page 3 of 5")
	press(m, "p")
	assert.Contains(t, view(m), "Page 2 of 5")

	press(m, "s")
	assert.Contains(t, view(m), "sort: Title asc")
	assert.Contains(t, view(m), "Page 1 of 5", "sorting returns to the first page")

	press(m, "S")
	assert.Contains(t, view(m), "sort: Title desc")
}

func TestModel_Filter(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "/")
	typeText(m, "fleet")
	press(m, "enter")

	out := view(m)
	assert.Contains(t, out, "filter: *fleet*")
	assert.Contains(t, out, "1 rows")
	assert.Contains(t, out, "Fleet Telematics Platform")

	press(m, "/", "esc")
	assert.Contains(t, view(m), "50 rows")
}

func TestModel_SelectCompareExport(t *testing.T) {
	m, app := newTestModel(t)
	ctx := context.Background()

	press(m, "space", "j", "space")
	out := view(m)
	assert.Contains(t, out, "2 selected")
	assert.Contains(t, out, "c compare selected")

	press(m, "c")
	require.Equal(t, overlayCompare, m.overlay)
	out = view(m)
	assert.Contains(t, out, "Office Furniture Supply")
	assert.Contains(t, out, "RFP-002")
	assert.Contains(t, out, "2 items • 9 fields")

	entries, err := app.Workbench.Activity(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, activity.ActionCompare, entries[0].Action)

	cmd := press(m, "x")
	require.NotNil(t, cmd)
	done, ok := cmd().(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.FileExists(t, done.path)

	m.Update(done)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "Comparison exported", lastNotification(t, m).Title)
}

func TestModel_CompareNeedsTwoRows(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "space", "c")

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "Select another row", lastNotification(t, m).Title)
}

func TestModel_CompareNothingSelected(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "c")
	require.Equal(t, overlayCompare, m.overlay)
	assert.Contains(t, view(m), "No rows selected for comparison")

	done, ok := press(m, "x")().(exportDoneMsg)
	require.True(t, ok)
	require.ErrorIs(t, done.err, export.ErrNothingSelected)

	m.Update(done)
	assert.Equal(t, overlayCompare, m.overlay, "modal stays open on failure")

	n := lastNotification(t, m)
	assert.Equal(t, notify.LevelWarning, n.Level)
	assert.Equal(t, "No rows selected for comparison", n.Description)
}

func TestModel_PlaceholderAction(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "enter")
	require.Equal(t, overlayActions, m.overlay)
	assert.Contains(t, view(m), "Edit RFP (soon)")

	press(m, "j", "j", "j", "enter")

	assert.Equal(t, overlayNone, m.overlay)
	n := lastNotification(t, m)
	assert.Equal(t, "Coming soon", n.Title)
	assert.Equal(t, "Edit RFP is not available yet", n.Description)
}

func TestModel_ConfirmedAction(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "enter", "j", "j", "j", "j", "j", "enter")
	require.Equal(t, overlayConfirm, m.overlay)
	assert.Contains(t, view(m), "Archive this RFP?")

	press(m, "n")
	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, m.notifications.Drain(), "cancelled actions do nothing")

	press(m, "enter", "j", "j", "j", "j", "j", "enter", "y")
	assert.Equal(t, "Coming soon", lastNotification(t, m).Title)
}

func TestModel_AddToComparisonAction(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "enter", "j", "j", "enter")

	assert.True(t, m.rfps.p.IsRowSelected("RFP-001"))
}

func TestModel_NewRFPWizard(t *testing.T) {
	m, app := newTestModel(t)

	press(m, "N")
	require.Equal(t, overlayForm, m.overlay)
	assert.Contains(t, view(m), "Step 1 of 3: Basics")

	typeText(m, "Laptop Refresh")
	press(m, "enter")
	typeText(m, "IT")
	press(m, "enter")
	typeText(m, "ana@example.com")
	press(m, "enter")
	assert.Contains(t, view(m), "Step 2 of 3: Commercials")

	typeText(m, "$90,000")
	press(m, "enter")
	typeText(m, "2026-12-01")
	press(m, "enter")
	typeText(m, "200 developer laptops")
	press(m, "enter")

	out := view(m)
	assert.Contains(t, out, "Step 3 of 3: Review")
	assert.Contains(t, out, "Laptop Refresh")

	press(m, "enter")

	assert.Equal(t, overlayNone, m.overlay)
	rfps := app.Workbench.Catalog().RFPs()
	require.Len(t, rfps, 6)
	assert.Equal(t, "RFP-006", rfps[5].ID)
	assert.InDelta(t, 90000, rfps[5].Budget, 0.001)
	assert.Equal(t, "RFP created", lastNotification(t, m).Title)
	assert.Contains(t, view(m), "6 RFPs")
}

func TestModel_NewRFPWizardValidation(t *testing.T) {
	m, app := newTestModel(t)

	press(m, "N", "enter", "enter", "enter", "enter", "enter", "enter", "enter")

	require.Equal(t, overlayForm, m.overlay)
	out := view(m)
	assert.Contains(t, out, "Step 1 of 3: Basics")
	assert.Contains(t, out, "is required")
	assert.Len(t, app.Workbench.Catalog().RFPs(), 5)

	press(m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestModel_DetailView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tuitest.WindowSize(160, 90))

	cmd := press(m, "d")
	require.Equal(t, overlayDetail, m.overlay)
	assert.Contains(t, view(m), "Cloud Infrastructure Migration")
	assert.Contains(t, view(m), "Nimbus Systems")

	require.NotNil(t, cmd)
	links, ok := cmd().(linksLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, "RFP-001", links.rfpID)
	m.Update(links)
	assert.Contains(t, view(m), "backend not configured")

	press(m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestModel_TabsAndActivity(t *testing.T) {
	m, app := newTestModel(t)
	ctx := context.Background()

	press(m, "2")
	assert.Contains(t, view(m), "Nimbus Systems")

	app.Workbench.Record(ctx, activity.ActionUpdate, "Edited scope", "RFP-001")
	press(m, "3")
	m.Update(m.loadActivity()())
	assert.Contains(t, view(m), "Edited scope")

	press(m, "D")
	require.Equal(t, overlayConfirm, m.overlay)
	press(m, "y")

	entries, err := app.Workbench.Activity(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, "Activity cleared", lastNotification(t, m).Title)
}

func TestModel_NotificationsBecomeToasts(t *testing.T) {
	m, app := newTestModel(t)

	app.Bus.Success("RFP created", "RFP-006 Laptops")
	m.Update(drainNotificationsMsg{})

	assert.True(t, m.toasts.HasToasts())
	assert.True(t, m.toasts.Ticking())
	assert.Contains(t, view(m), "RFP-006 Laptops")

	m.toasts.toasts[0].remaining = toastTickInterval
	m.Update(toastTickMsg{})
	assert.False(t, m.toasts.HasToasts())
	assert.False(t, m.toasts.Ticking())
}
