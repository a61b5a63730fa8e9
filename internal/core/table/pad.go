package table

// Pad returns rows extended to at least minLen entries. Filler rows are
// produced by clone(first, index) for each missing index, so clone must be
// deterministic and give every filler row its own identity.
//
// Pad is demo scaffolding for small collections; nothing in the presenter
// calls it implicitly. The input slice is never modified.
func Pad[R any](rows []R, minLen int, clone func(base R, index int) R) []R {
	if len(rows) == 0 || len(rows) >= minLen || clone == nil {
		return rows
	}

	out := make([]R, len(rows), minLen)
	copy(out, rows)
	for i := len(rows); i < minLen; i++ {
		out = append(out, clone(rows[0], i))
	}
	return out
}
