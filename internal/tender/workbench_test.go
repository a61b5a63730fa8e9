package tender

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/core/action"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/export"
	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/rfp"
)

type memActivity struct {
	mu      sync.Mutex
	entries []activity.Entry
}

func (m *memActivity) Save(_ context.Context, e activity.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memActivity) List(_ context.Context, limit int) ([]activity.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.entries)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memActivity) ListByRFP(ctx context.Context, rfpID string) ([]activity.Entry, error) {
	all, _ := m.List(ctx, 0)
	var out []activity.Entry
	for _, e := range all {
		if strings.EqualFold(e.RFPID, rfpID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memActivity) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

type harness struct {
	wb       *Workbench
	store    *memActivity
	toasts   []notify.Notification
	cfg      *config.Config
	exportTo string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Export.Dir = filepath.Join(t.TempDir(), "exports")
	cfg.User = "tester@example.com"

	h := &harness{store: &memActivity{}, cfg: &cfg, exportTo: cfg.Export.Dir}
	bus := notify.NewBus(nil)
	bus.Subscribe(func(n notify.Notification) { h.toasts = append(h.toasts, n) })

	h.wb = NewWorkbench(rfp.SeedCatalog(), h.store, bus, &cfg, nil)
	h.wb.now = func() time.Time { return time.Date(2026, 10, 19, 10, 15, 0, 0, time.UTC) }
	return h
}

func (h *harness) lastToast(t *testing.T) notify.Notification {
	t.Helper()
	require.NotEmpty(t, h.toasts)
	return h.toasts[len(h.toasts)-1]
}

func TestWorkbench_RFPRowsPadding(t *testing.T) {
	h := newHarness(t)
	assert.Len(t, h.wb.RFPRows(), 50)

	h.cfg.Table.PadTo = 0
	assert.Len(t, h.wb.RFPRows(), 5)

	p := h.wb.RFPPresenter()
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 1, p.Pager().TotalPages())
}

func TestWorkbench_FindRFPResolvesFiller(t *testing.T) {
	h := newHarness(t)

	r, err := h.wb.FindRFP("rfp-042")
	require.NoError(t, err)
	assert.Equal(t, "RFP-042", r.ID)

	_, err = h.wb.FindRFP("RFP-999")
	assert.ErrorIs(t, err, rfp.ErrNotFound)
}

func TestWorkbench_CreateRFP(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.wb.CreateRFP(ctx, rfp.RFP{Title: "Laptops"})
	require.Error(t, err)
	assert.Empty(t, h.store.entries, "invalid drafts are not recorded")

	created, err := h.wb.CreateRFP(ctx, rfp.RFP{
		Title: "Laptops", Department: "IT", Owner: "ana@example.com", Budget: 90000,
	})
	require.NoError(t, err)
	assert.Equal(t, "RFP-006", created.ID)
	assert.Equal(t, rfp.StatusDraft, created.Status)

	require.Len(t, h.store.entries, 1)
	e := h.store.entries[0]
	assert.Equal(t, activity.ActionCreate, e.Action)
	assert.Equal(t, "tester@example.com", e.User)
	assert.Equal(t, "RFP-006", e.RFPID)

	toast := h.lastToast(t)
	assert.Equal(t, notify.LevelSuccess, toast.Level)
	assert.Equal(t, "RFP created", toast.Title)
}

func TestWorkbench_CreateSLA(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.wb.CreateSLA(ctx, rfp.SLA{RFPID: "RFP-404", Name: "Gold", ResponseHours: 1, ResolutionHours: 4})
	require.ErrorIs(t, err, rfp.ErrNotFound)

	sla, err := h.wb.CreateSLA(ctx, rfp.SLA{RFPID: "RFP-001", Name: "Gold", ResponseHours: 1, ResolutionHours: 4})
	require.NoError(t, err)
	assert.Equal(t, "SLA-001", sla.ID)
	assert.Len(t, h.wb.Catalog().SLAs("RFP-001"), 1)
	assert.Equal(t, "SLA defined", h.lastToast(t).Title)
}

func TestWorkbench_CompareAndExport(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	c, err := h.wb.CompareRFPs([]string{"RFP-002", "RFP-001"})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Office Furniture Supply", "Cloud Infrastructure Migration"}, c.Header)

	path, err := h.wb.ExportComparison(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.exportTo, "comparison_2026-10-19T101500Z.xlsx"), path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, "Comparison exported", h.lastToast(t).Title)
	require.Len(t, h.store.entries, 1)
	assert.Equal(t, activity.ActionExport, h.store.entries[0].Action)
}

func TestWorkbench_ExportNothingSelected(t *testing.T) {
	h := newHarness(t)

	_, err := h.wb.ExportComparison(context.Background(), h.wb.RFPPresenter().Compare())
	require.ErrorIs(t, err, export.ErrNothingSelected)

	toast := h.lastToast(t)
	assert.Equal(t, notify.LevelWarning, toast.Level)
	assert.Equal(t, "No rows selected for comparison", toast.Description)
	assert.Empty(t, h.store.entries)

	_, statErr := os.Stat(h.exportTo)
	assert.True(t, os.IsNotExist(statErr), "no workbook or directory is created")
}

func TestWorkbench_ExportActivity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.wb.Record(ctx, activity.ActionUpdate, `Changed "budget"`, "RFP-001")

	path, err := h.wb.ExportActivity(ctx)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"SL NO","Timestamp","User","Action","Details"`)
	assert.Contains(t, string(data), `"1","2026-10-19 10:15:00","tester@example.com","update","Changed ""budget"""`)
	assert.NotContains(t, string(data), "Exported", "the export entry is recorded after the file is written")

	require.Len(t, h.store.entries, 2)
	e := h.store.entries[1]
	assert.Equal(t, activity.ActionExport, e.Action)
	assert.Equal(t, "Exported 1 activity entries to "+path, e.Details)
	assert.Empty(t, e.RFPID)
	assert.Equal(t, "Activity exported", h.lastToast(t).Title)
}

func TestRunAction(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	row := rfp.RFP{ID: "RFP-001"}

	require.NoError(t, RunAction(ctx, h.wb, action.Placeholder[rfp.RFP]("Archive", ""), row))
	toast := h.lastToast(t)
	assert.Equal(t, notify.LevelInfo, toast.Level)
	assert.Equal(t, "Coming soon", toast.Title)

	boom := errors.New("boom")
	err := RunAction(ctx, h.wb, action.New("Publish", "", func(context.Context, rfp.RFP) error { return boom }), row)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, notify.LevelError, h.lastToast(t).Level)

	var ran string
	err = RunAction(ctx, h.wb, action.New("Open", "", func(_ context.Context, r rfp.RFP) error {
		ran = r.ID
		return nil
	}), row)
	require.NoError(t, err)
	assert.Equal(t, "RFP-001", ran)
}
