package table

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Direction is the order applied to the active sort column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc". Anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Descending
	}
	return Ascending
}

// SortState tracks a single active sort column.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort column is set.
func (s SortState) Active() bool { return s.Key != "" }

// Toggle activates key ascending, or flips the direction if key is already
// the active column.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// Clear removes the active sort column.
func (s *SortState) Clear() {
	*s = SortState{}
}

// sortEntries orders entries in place by col. Ties keep collection order.
func sortEntries[R any](entries []Entry[R], col Column[R], dir Direction) {
	slices.SortStableFunc(entries, func(a, b Entry[R]) int {
		c := CompareValues(col.Raw(a.Row), col.Raw(b.Row))
		if dir == Descending {
			return -c
		}
		return c
	})
}

// CompareValues orders two raw field values. Values of the same kind are
// compared natively; mixed or unknown kinds fall back to their display text.
func CompareValues(a, b any) int {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareBools(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return strings.Compare(strings.ToLower(FormatValue(a)), strings.ToLower(FormatValue(b)))
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
