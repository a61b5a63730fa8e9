package tui

import (
	"context"
	"time"

	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/tender"
)

func newRFPWizard(wb *tender.Workbench, now time.Time) *wizardForm {
	steps := []formStep{
		{title: "Basics", fields: []*formField{
			newField("title", "Title", "Cloud Infrastructure Migration"),
			newField("department", "Department", "IT"),
			newField("owner", "Owner email", wb.User()),
		}},
		{title: "Commercials", fields: []*formField{
			newField("budget", "Budget", "250000"),
			newField("deadline", "Deadline (YYYY-MM-DD)", now.AddDate(0, 1, 0).Format(rfp.DateLayout)),
			newField("description", "Summary", "One line describing the scope"),
		}},
	}

	return newWizardForm("New RFP", steps, func(ctx context.Context, v map[string]string) error {
		draft, err := rfp.DraftFromValues(v)
		if err != nil {
			return err
		}
		_, err = wb.CreateRFP(ctx, draft)
		return err
	})
}

func newSLAWizard(wb *tender.Workbench, rfpID string) *wizardForm {
	steps := []formStep{
		{title: "Service", fields: []*formField{
			newField("name", "Name", "P1 incidents"),
		}},
		{title: "Targets", fields: []*formField{
			newField("response_hours", "Response time (hours)", "1"),
			newField("resolution_hours", "Resolution time (hours)", "4"),
			newField("penalty_percent", "Penalty (% of monthly fee)", "2.5"),
		}},
	}

	return newWizardForm("Define SLA for "+rfpID, steps, func(ctx context.Context, v map[string]string) error {
		draft, err := rfp.SLAFromValues(rfpID, v)
		if err != nil {
			return err
		}
		_, err = wb.CreateSLA(ctx, draft)
		return err
	})
}
