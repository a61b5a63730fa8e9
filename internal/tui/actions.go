package tui

import (
	"context"

	"github.com/colonyops/tender/internal/core/action"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/styles"
)

func confirmed[R any](a action.Action[R], prompt string) action.Action[R] {
	a.Confirm = prompt
	return a
}

func (m *Model) rfpActions() []action.Action[rfp.RFP] {
	return []action.Action[rfp.RFP]{
		action.New("View details", styles.IconFile, func(ctx context.Context, r rfp.RFP) error {
			return m.openDetail(ctx, r.ID)
		}),
		action.New("Define SLA", styles.IconClock, func(_ context.Context, r rfp.RFP) error {
			m.openForm(newSLAWizard(m.wb, r.ID))
			return nil
		}),
		action.New("Add to comparison", styles.IconCompare, func(_ context.Context, r rfp.RFP) error {
			m.rfps.p.ToggleRow(r.ID, true)
			return nil
		}),
		action.Placeholder[rfp.RFP]("Edit RFP", styles.IconFile),
		action.Placeholder[rfp.RFP]("Invite vendors", styles.IconUser),
		confirmed(action.Placeholder[rfp.RFP]("Archive", styles.IconWarning), "Archive this RFP? It will no longer accept proposals."),
	}
}

func (m *Model) applicantActions() []action.Action[rfp.Applicant] {
	return []action.Action[rfp.Applicant]{
		action.New("View RFP", styles.IconFile, func(ctx context.Context, a rfp.Applicant) error {
			return m.openDetail(ctx, a.RFPID)
		}),
		action.Placeholder[rfp.Applicant]("Approve", styles.IconSuccess),
		confirmed(action.Placeholder[rfp.Applicant]("Reject", styles.IconError), "Reject this proposal?"),
		action.Placeholder[rfp.Applicant]("Send message", styles.IconUser),
		action.Placeholder[rfp.Applicant]("Download proposal", styles.IconExport),
	}
}
