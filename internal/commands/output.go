package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/table"
)

// writeTable renders the presenter's current page as aligned columns.
func writeTable[R any](w io.Writer, p *table.Presenter[R]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cols := p.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = strings.ToUpper(c.Label)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, e := range p.Page() {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = p.Cell(e, c)
		}
		_, _ = fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// pageFooter describes the page window, sort and filter of p.
func pageFooter[R any](p *table.Presenter[R]) string {
	pager := p.Pager()
	parts := []string{
		fmt.Sprintf("Page %d of %d", pager.Page(), pager.TotalPages()),
		fmt.Sprintf("%d rows", p.Len()),
	}
	if s := p.Sort(); s.Active() {
		parts = append(parts, fmt.Sprintf("sort: %s %s", s.Key, s.Direction))
	}
	if f := p.Filter(); f != "" {
		parts = append(parts, "filter: "+f)
	}
	return strings.Join(parts, " • ")
}

// summaryLine renders the catalog analytics shown under RFP listings.
func summaryLine(s rfp.Summary) string {
	return fmt.Sprintf("%d RFPs • %d open • %s budget • %d applicants • avg score %.0f",
		s.Total, s.ByStatus[rfp.StatusOpen], rfp.Money(s.TotalBudget), s.Applicants, s.AverageScore)
}

// parseSort splits "key[:asc|desc]" into its parts.
func parseSort(s string) (string, table.Direction) {
	key, dir, _ := strings.Cut(s, ":")
	return strings.TrimSpace(key), table.ParseDirection(dir)
}

func muted(s string) string {
	return styles.MutedStyle.Render(s)
}
