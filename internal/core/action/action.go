// Package action describes per-row actions offered from a table's action menu.
package action

import (
	"context"
	"errors"
	"fmt"
)

// Kind distinguishes real actions from placeholders that only announce
// themselves.
type Kind int

const (
	KindRun Kind = iota
	KindNotImplemented
)

func (k Kind) String() string {
	if k == KindNotImplemented {
		return "not_implemented"
	}
	return "run"
}

// ErrNotImplemented is returned when a placeholder action is executed.
var ErrNotImplemented = errors.New("coming soon")

// Action is one entry of a row's action menu.
type Action[R any] struct {
	Label   string
	Icon    string
	Kind    Kind
	Confirm string // non-empty if confirmation required
	Run     func(ctx context.Context, row R) error
}

// New returns a runnable action.
func New[R any](label, icon string, run func(ctx context.Context, row R) error) Action[R] {
	return Action[R]{Label: label, Icon: icon, Kind: KindRun, Run: run}
}

// Placeholder returns an action that is shown but not yet implemented.
func Placeholder[R any](label, icon string) Action[R] {
	return Action[R]{Label: label, Icon: icon, Kind: KindNotImplemented}
}

// NeedsConfirm returns true if the action requires user confirmation.
func (a Action[R]) NeedsConfirm() bool {
	return a.Confirm != ""
}

// Implemented reports whether executing the action does any work.
func (a Action[R]) Implemented() bool {
	return a.Kind == KindRun && a.Run != nil
}

// Execute runs the action against row. Placeholders return ErrNotImplemented
// without side effects.
func (a Action[R]) Execute(ctx context.Context, row R) error {
	if !a.Implemented() {
		return fmt.Errorf("%s: %w", a.Label, ErrNotImplemented)
	}
	return a.Run(ctx, row)
}

// Find returns the action with the given label.
func Find[R any](actions []Action[R], label string) (Action[R], bool) {
	for _, a := range actions {
		if a.Label == label {
			return a, true
		}
	}
	return Action[R]{}, false
}
