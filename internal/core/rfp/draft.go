package rfp

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// DateLayout is the date format accepted for deadlines.
const DateLayout = "2006-01-02"

// DraftFromValues parses form values keyed by field name into an RFP draft.
// Only format errors are reported; RFP.Validate covers the rest.
func DraftFromValues(v map[string]string) (RFP, error) {
	var errs criterio.FieldErrorsBuilder

	budget, err := ParseAmount(v["budget"])
	if err != nil {
		errs = errs.Append("budget", err)
	}

	var deadline time.Time
	if d := strings.TrimSpace(v["deadline"]); d != "" {
		deadline, err = time.Parse(DateLayout, d)
		if err != nil {
			errs = errs.Append("deadline", errors.New("use YYYY-MM-DD"))
		}
	}

	if err := errs.ToError(); err != nil {
		return RFP{}, err
	}

	draft := RFP{
		Title:      strings.TrimSpace(v["title"]),
		Department: strings.TrimSpace(v["department"]),
		Owner:      strings.TrimSpace(v["owner"]),
		Budget:     budget,
		Deadline:   deadline,
	}
	if desc := strings.TrimSpace(v["description"]); desc != "" {
		draft.Description = "## Scope\n\n" + desc + "\n"
	}
	return draft, nil
}

// SLAFromValues parses form values keyed by field name into an SLA draft
// for rfpID.
func SLAFromValues(rfpID string, v map[string]string) (SLA, error) {
	var errs criterio.FieldErrorsBuilder

	response, err := strconv.Atoi(strings.TrimSpace(v["response_hours"]))
	if err != nil {
		errs = errs.Append("response_hours", errors.New("enter whole hours"))
	}
	resolution, err := strconv.Atoi(strings.TrimSpace(v["resolution_hours"]))
	if err != nil {
		errs = errs.Append("resolution_hours", errors.New("enter whole hours"))
	}

	var penalty float64
	if p := strings.TrimSuffix(strings.TrimSpace(v["penalty_percent"]), "%"); p != "" {
		penalty, err = strconv.ParseFloat(p, 64)
		if err != nil {
			errs = errs.Append("penalty_percent", errors.New("enter a number"))
		}
	}

	if err := errs.ToError(); err != nil {
		return SLA{}, err
	}

	return SLA{
		RFPID:           rfpID,
		Name:            strings.TrimSpace(v["name"]),
		ResponseHours:   response,
		ResolutionHours: resolution,
		PenaltyPercent:  penalty,
	}, nil
}

// ParseAmount accepts "250000", "250,000" and "$250,000". Empty is zero so
// that validation reports it as a missing budget.
func ParseAmount(s string) (float64, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("enter an amount such as 250000")
	}
	return f, nil
}
