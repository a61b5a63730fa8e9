package table

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 10

// Paginator slices a collection of known size into fixed-size pages.
// Pages are 1-indexed. An empty collection still has one (empty) page.
type Paginator struct {
	page  int
	size  int
	total int
}

// NewPaginator creates a paginator positioned on the first page.
func NewPaginator(total, size int) *Paginator {
	if size < 1 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	return &Paginator{page: 1, size: size, total: total}
}

// Page returns the current 1-indexed page.
func (p *Paginator) Page() int { return p.page }

// Size returns the page size.
func (p *Paginator) Size() int { return p.size }

// Total returns the number of rows being paginated.
func (p *Paginator) Total() int { return p.total }

// TotalPages returns ceil(total/size), with a minimum of one page.
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// Bounds returns the [start, end) offsets of the current page.
func (p *Paginator) Bounds() (int, int) {
	start := (p.page - 1) * p.size
	end := min(start+p.size, p.total)
	return start, end
}

// GoToPage moves to page n, clamped to [1, TotalPages].
func (p *Paginator) GoToPage(n int) {
	p.page = max(1, min(n, p.TotalPages()))
}

// HasNext reports whether a page exists after the current one.
func (p *Paginator) HasNext() bool { return p.page < p.TotalPages() }

// HasPrevious reports whether a page exists before the current one.
func (p *Paginator) HasPrevious() bool { return p.page > 1 }

// Next advances one page. It is a no-op on the last page.
func (p *Paginator) Next() {
	if p.HasNext() {
		p.page++
	}
}

// Previous goes back one page. It is a no-op on the first page.
func (p *Paginator) Previous() {
	if p.HasPrevious() {
		p.page--
	}
}

// SetTotal updates the row count and re-clamps the current page.
func (p *Paginator) SetTotal(total int) {
	p.total = max(total, 0)
	p.GoToPage(p.page)
}

// SetSize changes the page size and returns to the first page.
func (p *Paginator) SetSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	p.size = size
	p.page = 1
}
