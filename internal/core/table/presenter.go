package table

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IDFunc returns a row's stable identifier. An empty result makes the
// presenter fall back to a positional identifier.
type IDFunc[R any] func(R) string

// Entry is a row together with its resolved identifier and its position in
// the collection passed to SetRows.
type Entry[R any] struct {
	Row   R
	ID    string
	Index int
}

// PositionalID is the identifier used for rows without one.
func PositionalID(index int) string {
	return fmt.Sprintf("row-%d", index)
}

// Presenter composes pagination, selection, sorting and filtering over an
// in-memory collection. It is not safe for concurrent use.
type Presenter[R any] struct {
	columns []Column[R]
	idFn    IDFunc[R]

	all     []Entry[R] // collection order
	visible []Entry[R] // filtered and sorted

	pager     *Paginator
	selection *Selection
	sort      SortState
	filter    string
}

// NewPresenter creates a presenter with an empty collection.
func NewPresenter[R any](columns []Column[R], id IDFunc[R], pageSize int) *Presenter[R] {
	return &Presenter[R]{
		columns:   columns,
		idFn:      id,
		pager:     NewPaginator(0, pageSize),
		selection: NewSelection(),
	}
}

// SetRows replaces the collection. The selection is cleared and the view
// returns to the first page; sort and filter settings are kept.
func (p *Presenter[R]) SetRows(rows []R) {
	p.all = make([]Entry[R], len(rows))
	for i, r := range rows {
		id := ""
		if p.idFn != nil {
			id = p.idFn(r)
		}
		if id == "" {
			id = PositionalID(i)
		}
		p.all[i] = Entry[R]{Row: r, ID: id, Index: i}
	}

	p.selection.Clear()
	p.refresh()
	p.pager.GoToPage(1)
}

// Columns returns the column descriptors.
func (p *Presenter[R]) Columns() []Column[R] { return p.columns }

// Len returns the number of rows after filtering.
func (p *Presenter[R]) Len() int { return len(p.visible) }

// Entries returns every filtered and sorted entry.
func (p *Presenter[R]) Entries() []Entry[R] { return p.visible }

// Page returns the entries on the current page.
func (p *Presenter[R]) Page() []Entry[R] {
	start, end := p.pager.Bounds()
	return p.visible[start:end]
}

// Pager exposes the pagination controller.
func (p *Presenter[R]) Pager() *Paginator { return p.pager }

// Selection exposes the selection tracker.
func (p *Presenter[R]) Selection() *Selection { return p.selection }

// Sort returns the active sort state.
func (p *Presenter[R]) Sort() SortState { return p.sort }

// Filter returns the active filter pattern.
func (p *Presenter[R]) Filter() string { return p.filter }

// Lookup finds an entry in the full collection by identifier.
func (p *Presenter[R]) Lookup(id string) (Entry[R], bool) {
	for _, e := range p.all {
		if e.ID == id {
			return e, true
		}
	}
	return Entry[R]{}, false
}

// ToggleRow checks or unchecks a single row.
func (p *Presenter[R]) ToggleRow(id string, checked bool) {
	p.selection.Toggle(id, checked)
}

// ToggleAllOnPage checks every row on the current page, or clears the
// whole selection when checked is false.
func (p *Presenter[R]) ToggleAllOnPage(checked bool) {
	page := p.Page()
	ids := make([]string, len(page))
	for i, e := range page {
		ids[i] = e.ID
	}
	p.selection.ToggleAllOnPage(ids, checked)
}

// PageFullySelected reports whether every row on the current page is checked.
func (p *Presenter[R]) PageFullySelected() bool {
	page := p.Page()
	ids := make([]string, len(page))
	for i, e := range page {
		ids[i] = e.ID
	}
	return p.selection.AllSelected(ids)
}

// IsRowSelected reports whether the row is checked.
func (p *Presenter[R]) IsRowSelected(id string) bool {
	return p.selection.IsSelected(id)
}

// SelectNone clears the selection.
func (p *Presenter[R]) SelectNone() { p.selection.Clear() }

// CanCompare reports whether the compare action should be offered.
func (p *Presenter[R]) CanCompare() bool { return p.selection.CanCompare() }

// Selected resolves the selection against the full collection, in selection
// order. Filtered-out rows stay selected and are included.
func (p *Presenter[R]) Selected() []Entry[R] {
	ids := p.selection.IDs()
	out := make([]Entry[R], 0, len(ids))
	for _, id := range ids {
		if e, ok := p.Lookup(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// ToggleSort activates or flips sorting on the column with key. It returns
// false when the column does not exist or is not sortable.
func (p *Presenter[R]) ToggleSort(key string) bool {
	col, ok := ColumnByKey(p.columns, key)
	if !ok || !col.Sortable {
		return false
	}
	p.sort.Toggle(key)
	p.refresh()
	p.pager.GoToPage(1)
	return true
}

// SetSort sets the sort column and direction directly. An empty key clears
// sorting.
func (p *Presenter[R]) SetSort(key string, dir Direction) error {
	if key == "" {
		p.sort.Clear()
		p.refresh()
		return nil
	}
	col, ok := ColumnByKey(p.columns, key)
	if !ok {
		return fmt.Errorf("unknown column %q", key)
	}
	if !col.Sortable {
		return fmt.Errorf("column %q is not sortable", key)
	}
	p.sort = SortState{Key: key, Direction: dir}
	p.refresh()
	p.pager.GoToPage(1)
	return nil
}

// SetFilter restricts visible rows to those with any cell matching the glob
// pattern (case-insensitive). A pattern without wildcards matches as a
// substring. The selection is kept.
func (p *Presenter[R]) SetFilter(pattern string) error {
	// Globs treat '/' as a path separator; cell text is not a path.
	pattern = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(pattern)), "/", " ")
	if pattern != "" && !strings.ContainsAny(pattern, "*?[{") {
		pattern = "*" + pattern + "*"
	}
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid filter pattern %q", pattern)
	}
	p.filter = pattern
	p.refresh()
	p.pager.GoToPage(1)
	return nil
}

// Cell returns the rendered text for column col of entry e.
func (p *Presenter[R]) Cell(e Entry[R], col Column[R]) string {
	return col.Cell(e.Row, e.Index)
}

// Compare builds the comparison matrix for the current selection.
func (p *Presenter[R]) Compare() Comparison {
	return BuildComparison(p.columns, p.Selected())
}

func (p *Presenter[R]) refresh() {
	visible := make([]Entry[R], 0, len(p.all))
	for _, e := range p.all {
		if p.matches(e) {
			visible = append(visible, e)
		}
	}

	if p.sort.Active() {
		if col, ok := ColumnByKey(p.columns, p.sort.Key); ok {
			sortEntries(visible, col, p.sort.Direction)
		}
	}

	p.visible = visible
	p.pager.SetTotal(len(visible))
}

func (p *Presenter[R]) matches(e Entry[R]) bool {
	if p.filter == "" {
		return true
	}
	for _, col := range p.columns {
		text := strings.ReplaceAll(strings.ToLower(col.Cell(e.Row, e.Index)), "/", " ")
		if ok, _ := doublestar.Match(p.filter, text); ok {
			return true
		}
	}
	return false
}
