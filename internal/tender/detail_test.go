package tender

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/rfp"
)

func TestWorkbench_Detail(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.wb.CreateSLA(ctx, rfp.SLA{RFPID: "RFP-001", Name: "P1 incidents", ResponseHours: 1, ResolutionHours: 4, PenaltyPercent: 2.5})
	require.NoError(t, err)

	d, err := h.wb.Detail(ctx, "rfp-001")
	require.NoError(t, err)

	assert.Equal(t, "RFP-001", d.RFP.ID)
	assert.Len(t, d.Applicants, 3)
	assert.Len(t, d.SLAs, 1)
	require.Len(t, d.Activity, 1)
	assert.Nil(t, d.Links)

	md := d.Markdown(h.wb.now())
	assert.Contains(t, md, "# Cloud Infrastructure Migration")
	assert.Contains(t, md, "| Nimbus Systems | $1,180,000 | 86 | Technical Evaluation | Yes |")
	assert.Contains(t, md, "| P1 incidents | 1h | 4h | 2.5% |")
	assert.Contains(t, md, "_Loading..._")
	assert.Contains(t, md, "Defined SLA")

	_, err = h.wb.Detail(ctx, "RFP-999")
	assert.ErrorIs(t, err, rfp.ErrNotFound)
}

func TestRFPDetail_MarkdownLinks(t *testing.T) {
	h := newHarness(t)
	d, err := h.wb.Detail(context.Background(), "RFP-004")
	require.NoError(t, err)

	d.Links = []backend.DocumentLink{}
	assert.Contains(t, d.Markdown(h.wb.now()), "_No documents linked._")
	assert.Contains(t, d.Markdown(h.wb.now()), "_No proposals received yet._")

	d.Links = []backend.DocumentLink{{DocumentLink: "https://docs.example.com/soc.pdf", IsActive: true, CreatedBy: "chen@example.com"}}
	assert.Contains(t, d.Markdown(h.wb.now()), "- <https://docs.example.com/soc.pdf> (active, added by chen@example.com)")

	d.LinksErr = errors.New("backend is not configured")
	assert.Contains(t, d.Markdown(h.wb.now()), "_Unavailable: backend is not configured_")
}
