package commands

import (
	"errors"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/colonyops/tender/internal/core/rfp"
)

// errNoTerminal is returned when a prompt is needed but stdin is not a terminal.
var errNoTerminal = errors.New("stdin is not a terminal; pass the values as flags")

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNoTerminal
	}
	return nil
}

func amountInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("is required")
	}
	_, err := rfp.ParseAmount(s)
	return err
}

func dateInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(rfp.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
