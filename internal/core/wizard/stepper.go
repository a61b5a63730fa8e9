// Package wizard implements linear multi-step form navigation.
package wizard

import "fmt"

// Stepper walks steps 1..N. Next and Previous clamp at the ends.
type Stepper struct {
	titles  []string
	current int
}

// New creates a stepper with one step per title, positioned on step 1.
// It panics when titles is empty, since a wizard needs at least one step.
func New(titles ...string) *Stepper {
	if len(titles) == 0 {
		panic("wizard: at least one step is required")
	}
	return &Stepper{titles: titles, current: 1}
}

// Current returns the 1-indexed current step.
func (s *Stepper) Current() int { return s.current }

// Len returns the number of steps.
func (s *Stepper) Len() int { return len(s.titles) }

// Title returns the current step's title.
func (s *Stepper) Title() string { return s.titles[s.current-1] }

// Titles returns all step titles.
func (s *Stepper) Titles() []string { return s.titles }

// IsFirst reports whether the stepper is on step 1.
func (s *Stepper) IsFirst() bool { return s.current == 1 }

// IsLast reports whether the stepper is on the final step.
func (s *Stepper) IsLast() bool { return s.current == len(s.titles) }

// Next advances one step, staying on the last step.
func (s *Stepper) Next() {
	if !s.IsLast() {
		s.current++
	}
}

// Previous goes back one step, staying on step 1.
func (s *Stepper) Previous() {
	if !s.IsFirst() {
		s.current--
	}
}

// Reset returns to step 1.
func (s *Stepper) Reset() { s.current = 1 }

// Progress renders "Step i of N: Title".
func (s *Stepper) Progress() string {
	return fmt.Sprintf("Step %d of %d: %s", s.current, len(s.titles), s.Title())
}
