package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/table"
)

const (
	maxCellWidth = 32
	cellGap      = "  "
)

// tableView draws a table.Presenter page and maps keys onto it. The
// presenter owns all state except the cursor and the filter prompt.
type tableView[R any] struct {
	p          *table.Presenter[R]
	keys       KeyMap
	cursor     int // index into the current page
	selectable bool

	filter    textinput.Model
	filtering bool
	filterErr string

	// colorCell optionally styles a rendered cell.
	colorCell func(key string, row R, text string) string
}

func newTableView[R any](p *table.Presenter[R], keys KeyMap, selectable bool) *tableView[R] {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "glob, e.g. cloud* or *IT*"
	ti.CharLimit = 64

	return &tableView[R]{p: p, keys: keys, selectable: selectable, filter: ti}
}

// SetRows replaces the presenter's rows and resets the cursor.
func (v *tableView[R]) SetRows(rows []R) {
	v.p.SetRows(rows)
	v.cursor = 0
}

// Current returns the entry under the cursor.
func (v *tableView[R]) Current() (table.Entry[R], bool) {
	page := v.p.Page()
	if len(page) == 0 {
		return table.Entry[R]{}, false
	}
	v.clampCursor()
	return page[v.cursor], true
}

func (v *tableView[R]) clampCursor() {
	n := len(v.p.Page())
	v.cursor = max(0, min(v.cursor, n-1))
}

// Filtering reports whether the filter prompt has focus.
func (v *tableView[R]) Filtering() bool { return v.filtering }

// UpdateInput forwards non-key messages, such as cursor blinks, to the
// filter prompt.
func (v *tableView[R]) UpdateInput(msg tea.Msg) tea.Cmd {
	if !v.filtering {
		return nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	return cmd
}

// HandleKey applies table navigation keys. It reports whether msg was used.
func (v *tableView[R]) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if v.filtering {
		return true, v.updateFilter(msg)
	}

	pager := v.p.Pager()
	switch {
	case key.Matches(msg, v.keys.Up):
		v.cursor--
	case key.Matches(msg, v.keys.Down):
		v.cursor++
	case key.Matches(msg, v.keys.NextPage):
		pager.Next()
	case key.Matches(msg, v.keys.PrevPage):
		pager.Previous()
	case key.Matches(msg, v.keys.Toggle) && v.selectable:
		if e, ok := v.Current(); ok {
			v.p.ToggleRow(e.ID, !v.p.IsRowSelected(e.ID))
		}
	case key.Matches(msg, v.keys.ToggleAll) && v.selectable:
		v.p.ToggleAllOnPage(!v.p.PageFullySelected())
	case key.Matches(msg, v.keys.Sort):
		v.cycleSort()
	case key.Matches(msg, v.keys.SortFlip):
		if s := v.p.Sort(); s.Active() {
			v.p.ToggleSort(s.Key)
		}
	case key.Matches(msg, v.keys.Filter):
		v.filtering = true
		v.filter.SetValue(strings.Trim(v.p.Filter(), "*"))
		v.filter.CursorEnd()
		return true, v.filter.Focus()
	default:
		return false, nil
	}

	v.clampCursor()
	return true, nil
}

// cycleSort moves the sort to the next sortable column, ascending. After
// the last sortable column the sort is cleared.
func (v *tableView[R]) cycleSort() {
	var keys []string
	for _, c := range v.p.Columns() {
		if c.Sortable {
			keys = append(keys, c.Key)
		}
	}
	if len(keys) == 0 {
		return
	}

	current := v.p.Sort().Key
	next := keys[0]
	for i, k := range keys {
		if k == current {
			if i+1 == len(keys) {
				next = ""
			} else {
				next = keys[i+1]
			}
			break
		}
	}
	_ = v.p.SetSort(next, table.Ascending)
	v.cursor = 0
}

func (v *tableView[R]) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		v.filtering = false
		v.filter.Blur()
		return nil
	case tea.KeyEsc:
		v.filtering = false
		v.filter.Blur()
		v.filter.SetValue("")
		v.filterErr = ""
		_ = v.p.SetFilter("")
		v.cursor = 0
		return nil
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	if err := v.p.SetFilter(v.filter.Value()); err != nil {
		v.filterErr = err.Error()
	} else {
		v.filterErr = ""
		v.cursor = 0
	}
	return cmd
}

// View renders header, page rows and footer clipped to width.
func (v *tableView[R]) View(width int) string {
	cols := v.p.Columns()
	page := v.p.Page()
	v.clampCursor()

	cells := make([][]string, len(page))
	widths := make([]int, len(cols))
	headers := make([]string, len(cols))
	sort := v.p.Sort()

	for i, c := range cols {
		headers[i] = c.Label
		if sort.Key == c.Key {
			icon := styles.IconSortAsc
			if sort.Direction == table.Descending {
				icon = styles.IconSortDesc
			}
			headers[i] += " " + icon
		}
		widths[i] = ansi.StringWidth(headers[i])
	}
	for r, e := range page {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			text := ansi.Truncate(v.p.Cell(e, c), maxCellWidth, "…")
			cells[r][i] = text
			widths[i] = max(widths[i], ansi.StringWidth(text))
		}
	}

	prefix := "  "
	if v.selectable {
		prefix += "  "
	}

	lines := make([]string, 0, len(page)+3)
	header := prefix + joinCells(headers, widths)
	lines = append(lines, styles.TableHeaderStyle.Render(clip(header, width)))

	if len(page) == 0 {
		lines = append(lines, styles.MutedStyle.Render("  No rows"))
	}

	for r, e := range page {
		row := make([]string, len(cols))
		for i, c := range cols {
			text := pad(cells[r][i], widths[i])
			if v.colorCell != nil {
				text = v.colorCell(c.Key, e.Row, text)
			}
			row[i] = text
		}

		marker := "  "
		if r == v.cursor {
			marker = "› "
		}
		if v.selectable {
			if v.p.IsRowSelected(e.ID) {
				marker += styles.TableSelectedStyle.Render(styles.IconChecked) + " "
			} else {
				marker += styles.IconUnchecked + " "
			}
		}

		line := clip(marker+strings.Join(row, cellGap), width)
		if r == v.cursor {
			line = styles.TableCursorStyle.Render(pad(line, width))
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", v.footer())
	if v.filtering {
		lines = append(lines, v.filter.View())
	}
	if v.filterErr != "" {
		lines = append(lines, styles.FormErrorStyle.Render(v.filterErr))
	}
	return strings.Join(lines, "\n")
}

func (v *tableView[R]) footer() string {
	pager := v.p.Pager()
	parts := []string{
		fmt.Sprintf("Page %d of %d", pager.Page(), pager.TotalPages()),
		fmt.Sprintf("%d rows", v.p.Len()),
	}
	if v.selectable {
		parts = append(parts, fmt.Sprintf("%d selected", v.p.Selection().Len()))
	}
	if s := v.p.Sort(); s.Active() {
		if c, ok := table.ColumnByKey(v.p.Columns(), s.Key); ok {
			parts = append(parts, fmt.Sprintf("sort: %s %s", c.Label, s.Direction))
		}
	}
	if f := v.p.Filter(); f != "" {
		parts = append(parts, "filter: "+f)
	}

	out := styles.TableFooterStyle.Render(strings.Join(parts, " • "))
	if v.selectable && v.p.CanCompare() {
		out += "  " + styles.SummaryStyle.Render(styles.IconCompare+" c compare selected")
	}
	return out
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, widths[i])
	}
	return strings.Join(padded, cellGap)
}

func pad(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// clip cuts s to width cells. A width of zero leaves s untouched.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "")
}
