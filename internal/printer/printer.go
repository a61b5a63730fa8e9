// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tender/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to out and problems to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New returns a Printer writing to out and errOut. Nil writers fall back to
// stdout and stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut}
}

// NewContext stores p on ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored on ctx, or one writing to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

func (p *Printer) line(w io.Writer, color lipgloss.Color, icon, msg string) {
	mark := lipgloss.NewStyle().Foreground(color).Render(icon)
	_, _ = fmt.Fprintf(w, "%s %s\n", mark, msg)
}

// Success prints a title with an optional muted detail.
func (p *Printer) Success(title, detail string) {
	msg := title
	if detail != "" {
		msg += " " + styles.MutedStyle.Render(detail)
	}
	p.line(p.out, styles.CurrentPalette.Success, "✔", msg)
}

// Successf prints a formatted success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.CurrentPalette.Success, "✔", fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.CurrentPalette.Primary, "●", fmt.Sprintf(format, args...))
}

// Warnf prints a formatted warning to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.errOut, styles.CurrentPalette.Warning, "●", fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.errOut, styles.CurrentPalette.Error, "✘", fmt.Sprintf(format, args...))
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a bold title followed by a divider.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.out, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.out, styles.DividerStyle.Render("────────────────────────────────────────"))
}
