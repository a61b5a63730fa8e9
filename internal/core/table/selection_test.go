package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	s := NewSelection()

	s.Toggle("a", true)
	s.Toggle("b", true)
	s.Toggle("a", true)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsSelected("a"))
	assert.Equal(t, []string{"a", "b"}, s.IDs())

	s.Toggle("a", false)
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, []string{"b"}, s.IDs())

	s.Toggle("missing", false)
	assert.Equal(t, 1, s.Len())
}

func TestSelection_ToggleAllOnPageTwiceIsEmpty(t *testing.T) {
	s := NewSelection()
	page := []string{"r1", "r2", "r3"}

	s.ToggleAllOnPage(page, true)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.AllSelected(page))

	s.ToggleAllOnPage(page, false)
	assert.Equal(t, 0, s.Len())
}

func TestSelection_UncheckAllClearsOtherPages(t *testing.T) {
	s := NewSelection()
	s.Toggle("other-page", true)

	s.ToggleAllOnPage([]string{"r1"}, true)
	s.ToggleAllOnPage([]string{"r1"}, false)

	assert.False(t, s.IsSelected("other-page"))
}

func TestSelection_CanCompare(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want bool
	}{
		{name: "none", ids: nil, want: false},
		{name: "one", ids: []string{"a"}, want: false},
		{name: "duplicate of one", ids: []string{"a", "a"}, want: false},
		{name: "two", ids: []string{"a", "b"}, want: true},
		{name: "three", ids: []string{"a", "b", "c"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			for _, id := range tt.ids {
				s.Toggle(id, true)
			}
			assert.Equal(t, tt.want, s.CanCompare())
		})
	}
}

func TestSelection_AllSelectedEmptyPage(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.AllSelected(nil))
}
