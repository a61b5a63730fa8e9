package tender

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tender/internal/core/action"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/export"
	"github.com/colonyops/tender/internal/core/logging"
	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/table"
)

// Workbench holds the procurement catalog and records every user-visible
// operation in the activity log and on the notification bus.
type Workbench struct {
	catalog  *rfp.Catalog
	activity activity.Store
	bus      *notify.Bus
	cfg      *config.Config
	user     func() string
	now      func() time.Time
	log      zerolog.Logger
}

// NewWorkbench creates a Workbench. user reports the actor recorded in the
// activity log.
func NewWorkbench(catalog *rfp.Catalog, store activity.Store, bus *notify.Bus, cfg *config.Config, user func() string) *Workbench {
	if user == nil {
		user = func() string { return cfg.User }
	}
	if bus == nil {
		bus = notify.NewBus(nil)
	}
	return &Workbench{
		catalog:  catalog,
		activity: store,
		bus:      bus,
		cfg:      cfg,
		user:     user,
		now:      time.Now,
		log:      logging.Component("workbench"),
	}
}

// Catalog returns the underlying catalog.
func (w *Workbench) Catalog() *rfp.Catalog { return w.catalog }

// User returns the current actor.
func (w *Workbench) User() string { return w.user() }

// RFPRows returns the RFP listing rows, padded with filler rows when
// table.pad_to is set.
func (w *Workbench) RFPRows() []rfp.RFP {
	rows := w.catalog.RFPs()
	if w.cfg.Table.PadTo > 0 {
		rows = table.Pad(rows, w.cfg.Table.PadTo, rfp.CloneRFP)
	}
	return rows
}

// RFPPresenter returns a presenter loaded with RFPRows.
func (w *Workbench) RFPPresenter() *table.Presenter[rfp.RFP] {
	p := table.NewPresenter(rfp.RFPColumns(w.catalog), rfp.RFPRowID, w.cfg.Table.PageSize)
	p.SetRows(w.RFPRows())
	return p
}

// ApplicantPresenter returns a presenter over applicants, optionally scoped to one RFP.
func (w *Workbench) ApplicantPresenter(rfpID string) *table.Presenter[rfp.Applicant] {
	p := table.NewPresenter(rfp.ApplicantColumns(), rfp.ApplicantRowID, w.cfg.Table.PageSize)
	p.SetRows(w.catalog.Applicants(rfpID))
	return p
}

// FindRFP looks an RFP up among the listing rows, so filler rows resolve too.
func (w *Workbench) FindRFP(id string) (rfp.RFP, error) {
	for _, r := range w.RFPRows() {
		if strings.EqualFold(r.ID, id) {
			return r, nil
		}
	}
	return rfp.RFP{}, fmt.Errorf("rfp %q: %w", id, rfp.ErrNotFound)
}

// CreateRFP validates draft, adds it to the catalog and records the creation.
func (w *Workbench) CreateRFP(ctx context.Context, draft rfp.RFP) (rfp.RFP, error) {
	if err := draft.Validate(); err != nil {
		return rfp.RFP{}, err
	}

	created := w.catalog.AddRFP(draft)
	w.record(ctx, activity.ActionCreate, fmt.Sprintf("Created RFP %q", created.Title), created.ID)
	w.bus.Success("RFP created", fmt.Sprintf("%s %s", created.ID, created.Title))
	return created, nil
}

// CreateSLA validates draft, adds it to the catalog and records the creation.
func (w *Workbench) CreateSLA(ctx context.Context, draft rfp.SLA) (rfp.SLA, error) {
	if err := draft.Validate(); err != nil {
		return rfp.SLA{}, err
	}
	if _, err := w.FindRFP(draft.RFPID); err != nil {
		return rfp.SLA{}, err
	}

	created := w.catalog.AddSLA(draft)
	w.record(ctx, activity.ActionCreate, fmt.Sprintf("Defined SLA %q", created.Name), created.RFPID)
	w.bus.Success("SLA defined", fmt.Sprintf("%s for %s", created.Name, created.RFPID))
	return created, nil
}

// CompareRFPs builds a comparison of the RFPs with the given IDs, in the
// order given.
func (w *Workbench) CompareRFPs(ids []string) (table.Comparison, error) {
	p := w.RFPPresenter()
	for _, id := range ids {
		r, err := w.FindRFP(id)
		if err != nil {
			return table.Comparison{}, err
		}
		p.ToggleRow(r.ID, true)
	}
	return p.Compare(), nil
}

// ExportComparison writes c to the export directory and records the export.
// An empty comparison is refused with export.ErrNothingSelected.
func (w *Workbench) ExportComparison(ctx context.Context, c table.Comparison) (string, error) {
	return w.ExportComparisonTo(ctx, w.cfg.Export.Dir, c)
}

// ExportComparisonTo is ExportComparison writing into dir.
func (w *Workbench) ExportComparisonTo(ctx context.Context, dir string, c table.Comparison) (string, error) {
	path, err := export.SaveComparison(dir, c, w.now().UTC())
	if err != nil {
		if errors.Is(err, export.ErrNothingSelected) {
			w.bus.Warn("Nothing to export", "No rows selected for comparison")
		} else {
			w.bus.Error("Export failed", err)
		}
		return "", err
	}

	w.record(ctx, activity.ActionExport, fmt.Sprintf("Exported comparison of %d items to %s", c.Items(), path), "")
	w.bus.Success("Comparison exported", path)
	return path, nil
}

// Activity returns the most recent activity entries.
func (w *Workbench) Activity(ctx context.Context, limit int) ([]activity.Entry, error) {
	entries, err := w.activity.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	return entries, nil
}

// ActivityForRFP returns the activity recorded against one RFP.
func (w *Workbench) ActivityForRFP(ctx context.Context, rfpID string) ([]activity.Entry, error) {
	return w.activity.ListByRFP(ctx, rfpID)
}

// ExportActivity writes the whole activity log as CSV to the export directory
// and records the export.
func (w *Workbench) ExportActivity(ctx context.Context) (string, error) {
	return w.ExportActivityTo(ctx, w.cfg.Export.Dir)
}

// ExportActivityTo is ExportActivity writing into dir.
func (w *Workbench) ExportActivityTo(ctx context.Context, dir string) (string, error) {
	entries, err := w.Activity(ctx, 0)
	if err != nil {
		return "", err
	}

	path, err := export.SaveActivityCSV(dir, entries)
	if err != nil {
		w.bus.Error("Export failed", err)
		return "", err
	}

	w.record(ctx, activity.ActionExport, fmt.Sprintf("Exported %d activity entries to %s", len(entries), path), "")
	w.bus.Success("Activity exported", path)
	return path, nil
}

// ClearActivity deletes every activity entry.
func (w *Workbench) ClearActivity(ctx context.Context) error {
	if err := w.activity.Clear(ctx); err != nil {
		return fmt.Errorf("clear activity: %w", err)
	}
	w.bus.Info("Activity cleared", "")
	return nil
}

// Record appends an activity entry for the current user.
func (w *Workbench) Record(ctx context.Context, act, details, rfpID string) {
	w.record(ctx, act, details, rfpID)
}

func (w *Workbench) record(ctx context.Context, act, details, rfpID string) {
	e := activity.Entry{
		Timestamp: w.now(),
		User:      w.user(),
		Action:    act,
		Details:   details,
		RFPID:     rfpID,
	}
	if err := w.activity.Save(ctx, e); err != nil {
		w.log.Error().Err(err).Str("action", act).Msg("failed to record activity")
	}
}

// RunAction executes a row action and reports the outcome on the bus.
// Placeholder actions only announce themselves.
func RunAction[R any](ctx context.Context, w *Workbench, a action.Action[R], row R) error {
	err := a.Execute(ctx, row)
	switch {
	case errors.Is(err, action.ErrNotImplemented):
		w.bus.Info("Coming soon", a.Label+" is not available yet")
		return nil
	case err != nil:
		w.bus.Error(a.Label+" failed", err)
		return err
	default:
		return nil
	}
}
