package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/wizard"
)

type formField struct {
	key   string // matches the validation field name
	label string
	input textinput.Model
}

func newField(key, label, placeholder string) *formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 48
	return &formField{key: key, label: label, input: ti}
}

type formStep struct {
	title  string
	fields []*formField
}

// wizardForm is a multi-step text form. The last step reviews the values
// and submits them; validation errors are shown next to their fields.
type wizardForm struct {
	title   string
	stepper *wizard.Stepper
	steps   []formStep
	focus   int

	submit func(ctx context.Context, values map[string]string) error

	fieldErrs map[string]string
	formErr   string
	done      bool
	cancelled bool
}

func newWizardForm(title string, steps []formStep, submit func(context.Context, map[string]string) error) *wizardForm {
	titles := make([]string, 0, len(steps)+1)
	for _, s := range steps {
		titles = append(titles, s.title)
	}
	titles = append(titles, "Review")

	f := &wizardForm{
		title:   title,
		stepper: wizard.New(titles...),
		steps:   append(steps, formStep{title: "Review"}),
		submit:  submit,
	}
	f.focusField(0)
	return f
}

func (f *wizardForm) Done() bool      { return f.done }
func (f *wizardForm) Cancelled() bool { return f.cancelled }

func (f *wizardForm) stepFields() []*formField {
	return f.steps[f.stepper.Current()-1].fields
}

func (f *wizardForm) values() map[string]string {
	out := make(map[string]string)
	for _, s := range f.steps {
		for _, fld := range s.fields {
			out[fld.key] = strings.TrimSpace(fld.input.Value())
		}
	}
	return out
}

func (f *wizardForm) focusField(i int) tea.Cmd {
	fields := f.stepFields()
	for _, fld := range fields {
		fld.input.Blur()
	}
	if len(fields) == 0 {
		f.focus = 0
		return nil
	}
	f.focus = max(0, min(i, len(fields)-1))
	return fields[f.focus].input.Focus()
}

// Update handles a message while the form has focus.
func (f *wizardForm) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			if f.stepper.IsFirst() {
				f.cancelled = true
				return nil
			}
			f.stepper.Previous()
			return f.focusField(0)
		case "tab", "down":
			return f.focusField(f.focus + 1)
		case "shift+tab", "up":
			return f.focusField(f.focus - 1)
		case "enter":
			if f.focus < len(f.stepFields())-1 {
				return f.focusField(f.focus + 1)
			}
			if !f.stepper.IsLast() {
				f.stepper.Next()
				return f.focusField(0)
			}
			f.doSubmit(ctx)
			return nil
		}
	}

	fields := f.stepFields()
	if len(fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	fld := fields[f.focus]
	fld.input, cmd = fld.input.Update(msg)
	delete(f.fieldErrs, fld.key)
	return cmd
}

func (f *wizardForm) doSubmit(ctx context.Context) {
	err := f.submit(ctx, f.values())
	if err == nil {
		f.done = true
		return
	}

	f.fieldErrs = map[string]string{}
	f.formErr = ""

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		f.formErr = err.Error()
		return
	}
	for _, fe := range fieldErrs {
		f.fieldErrs[fe.Field] = fe.Err.Error()
	}

	// Jump back to the first step holding an invalid field.
	for i, s := range f.steps {
		for j, fld := range s.fields {
			if _, bad := f.fieldErrs[fld.key]; bad {
				for f.stepper.Current() > i+1 {
					f.stepper.Previous()
				}
				f.focusField(j)
				return
			}
		}
	}
	f.formErr = err.Error()
}

// View renders the current step.
func (f *wizardForm) View() string {
	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render(f.title))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(f.stepper.Progress()))
	b.WriteString("\n\n")

	if f.stepper.IsLast() {
		for _, s := range f.steps {
			for _, fld := range s.fields {
				value := strings.TrimSpace(fld.input.Value())
				if value == "" {
					value = styles.MutedStyle.Render("(empty)")
				}
				fmt.Fprintf(&b, "%s %s\n", styles.MutedStyle.Render(fld.label+":"), value)
			}
		}
	}

	for i, fld := range f.stepFields() {
		style := styles.FormFieldStyle
		if i == f.focus {
			style = styles.FormFieldFocusedStyle
		}
		field := fld.label + "\n" + fld.input.View()
		if msg, bad := f.fieldErrs[fld.key]; bad {
			field += "\n" + styles.FormErrorStyle.Render(msg)
		}
		b.WriteString(style.Render(field))
		b.WriteString("\n")
	}

	if f.formErr != "" {
		b.WriteString("\n" + styles.FormErrorStyle.Render(f.formErr) + "\n")
	}

	help := "enter next • tab/↑/↓ field • esc back"
	if f.stepper.IsLast() {
		help = "enter submit • esc back"
	}
	body := lipgloss.JoinVertical(lipgloss.Left, strings.TrimRight(b.String(), "\n"), styles.ModalHelpStyle.Render(help))
	return styles.ModalStyle.Render(body)
}
