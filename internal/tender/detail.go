package tender

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/rfp"
)

// RFPDetail gathers everything shown on an RFP's detail page.
type RFPDetail struct {
	RFP        rfp.RFP
	Applicants []rfp.Applicant
	SLAs       []rfp.SLA
	Activity   []activity.Entry

	// Links is nil until loaded. LinksErr explains why it could not be.
	Links    []backend.DocumentLink
	LinksErr error
}

// Detail loads the local parts of an RFP's detail page. Document links
// live on the backend and are loaded separately.
func (w *Workbench) Detail(ctx context.Context, id string) (RFPDetail, error) {
	r, err := w.FindRFP(id)
	if err != nil {
		return RFPDetail{}, err
	}

	entries, err := w.ActivityForRFP(ctx, r.ID)
	if err != nil {
		return RFPDetail{}, err
	}

	return RFPDetail{
		RFP:        r,
		Applicants: w.catalog.Applicants(r.ID),
		SLAs:       w.catalog.SLAs(r.ID),
		Activity:   entries,
	}, nil
}

// Markdown renders the detail page. now anchors relative timestamps.
func (d RFPDetail) Markdown(now time.Time) string {
	var b strings.Builder
	r := d.RFP

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "**%s** · %s · %s department\n\n", r.ID, r.Status, r.Department)
	fmt.Fprintf(&b, "| Owner | Budget | Deadline | Workflow step |\n| --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n", r.Owner, rfp.Money(r.Budget), r.Deadline.Format("2006-01-02"), r.WorkflowStep)

	if desc := strings.TrimSpace(r.Description); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	b.WriteString("## Applicants\n\n")
	if len(d.Applicants) == 0 {
		b.WriteString("_No proposals received yet._\n\n")
	} else {
		b.WriteString("| Vendor | Bid | Score | Step | Shortlisted |\n| --- | --- | --- | --- | --- |\n")
		for _, a := range d.Applicants {
			shortlisted := "No"
			if a.Shortlisted {
				shortlisted = "Yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %.0f | %s | %s |\n", a.Vendor, rfp.Money(a.BidAmount), a.Score, a.Step, shortlisted)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Service levels\n\n")
	if len(d.SLAs) == 0 {
		b.WriteString("_No SLAs defined._\n\n")
	} else {
		b.WriteString("| Name | Response | Resolution | Penalty |\n| --- | --- | --- | --- |\n")
		for _, s := range d.SLAs {
			fmt.Fprintf(&b, "| %s | %dh | %dh | %s%% |\n", s.Name, s.ResponseHours, s.ResolutionHours, humanize.Ftoa(s.PenaltyPercent))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Document links\n\n")
	switch {
	case d.LinksErr != nil:
		fmt.Fprintf(&b, "_Unavailable: %s_\n\n", d.LinksErr)
	case d.Links == nil:
		b.WriteString("_Loading..._\n\n")
	case len(d.Links) == 0:
		b.WriteString("_No documents linked._\n\n")
	default:
		for _, l := range d.Links {
			state := "active"
			if !l.IsActive {
				state = "inactive"
			}
			fmt.Fprintf(&b, "- <%s> (%s, added by %s)\n", l.DocumentLink, state, l.CreatedBy)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Activity\n\n")
	if len(d.Activity) == 0 {
		b.WriteString("_Nothing recorded._\n")
	} else {
		for _, e := range d.Activity {
			fmt.Fprintf(&b, "- %s · **%s** %s: %s\n", humanize.RelTime(e.Timestamp, now, "ago", "from now"), e.User, e.Action, e.Details)
		}
	}

	return b.String()
}
