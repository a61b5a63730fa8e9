package table

// Selection tracks checked row identifiers across the whole collection.
// Identifiers are reported in the order they were first selected.
type Selection struct {
	ids   map[string]struct{}
	order []string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds id when checked is true and removes it otherwise.
func (s *Selection) Toggle(id string, checked bool) {
	if checked {
		s.add(id)
		return
	}
	s.remove(id)
}

// ToggleAllOnPage adds every id in pageIDs when checked is true. When
// checked is false the entire selection is cleared, not just the page.
func (s *Selection) ToggleAllOnPage(pageIDs []string, checked bool) {
	if !checked {
		s.Clear()
		return
	}
	for _, id := range pageIDs {
		s.add(id)
	}
}

// IsSelected reports whether id is in the selection.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// AllSelected reports whether every id in ids is selected. An empty slice
// is never considered fully selected.
func (s *Selection) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

// Len returns the number of selected identifiers.
func (s *Selection) Len() int { return len(s.order) }

// CanCompare reports whether enough rows are selected to compare them.
func (s *Selection) CanCompare() bool { return s.Len() > 1 }

// IDs returns a copy of the selected identifiers in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
	s.order = s.order[:0]
}

func (s *Selection) add(id string) {
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) remove(id string) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
