package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/tender"
)

// detailView shows an RFP's detail page as rendered markdown in a
// scrollable viewport.
type detailView struct {
	detail   tender.RFPDetail
	viewport viewport.Model
	now      func() time.Time
}

func newDetailView(d tender.RFPDetail, width, height int, now func() time.Time) *detailView {
	v := &detailView{detail: d, viewport: viewport.New(width, height), now: now}
	v.SetSize(width, height)
	return v
}

// RFPID returns the ID of the RFP being shown.
func (v *detailView) RFPID() string { return v.detail.RFP.ID }

func (v *detailView) SetSize(width, height int) {
	v.viewport.Width = max(width, 20)
	v.viewport.Height = max(height-2, 3)
	v.render()
}

// SetLinks fills in the document links once loaded.
func (v *detailView) SetLinks(links []backend.DocumentLink, err error) {
	if links == nil && err == nil {
		links = []backend.DocumentLink{}
	}
	v.detail.Links = links
	v.detail.LinksErr = err
	v.render()
}

func (v *detailView) render() {
	md := v.detail.Markdown(v.now())

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(v.viewport.Width-4, 20)),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			md = out
		}
	}
	if err != nil {
		log.Warn().Err(err).Str("rfp", v.detail.RFP.ID).Msg("markdown render failed")
	}
	v.viewport.SetContent(md)
}

func (v *detailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *detailView) View() string {
	footer := styles.TableFooterStyle.Render("↑/↓ scroll • esc close")
	return lipgloss.JoinVertical(lipgloss.Left, v.viewport.View(), footer)
}
