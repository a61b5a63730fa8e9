package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepper_ClampsAtEnds(t *testing.T) {
	s := New("Basics", "Budget", "Review")

	assert.True(t, s.IsFirst())
	s.Previous()
	assert.Equal(t, 1, s.Current())

	s.Next()
	s.Next()
	assert.True(t, s.IsLast())
	assert.Equal(t, "Review", s.Title())

	s.Next()
	assert.Equal(t, 3, s.Current())

	s.Previous()
	assert.Equal(t, "Step 2 of 3: Budget", s.Progress())

	s.Reset()
	assert.Equal(t, 1, s.Current())
}

func TestStepper_SingleStep(t *testing.T) {
	s := New("Only")

	assert.True(t, s.IsFirst())
	assert.True(t, s.IsLast())
	s.Next()
	assert.Equal(t, 1, s.Current())
}

func TestStepper_PanicsWithoutSteps(t *testing.T) {
	assert.Panics(t, func() { New() })
}
