package rfp

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tender/internal/core/validate"
)

// SLA is a service level agreement drafted for an RFP's eventual contract.
type SLA struct {
	ID              string
	RFPID           string
	Name            string
	ResponseHours   int
	ResolutionHours int
	PenaltyPercent  float64
	CreatedAt       time.Time
}

// Validate checks an SLA draft before it is added to the catalog.
func (s SLA) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if s.ResponseHours <= 0 {
		errs = errs.Append("response_hours", errors.New("must be positive"))
	}
	if s.ResolutionHours < s.ResponseHours {
		errs = errs.Append("resolution_hours", errors.New("must not be shorter than response time"))
	}
	if s.PenaltyPercent < 0 || s.PenaltyPercent > 100 {
		errs = errs.Append("penalty_percent", errors.New("must be between 0 and 100"))
	}

	return criterio.ValidateStruct(
		validate.RequiredField("rfp_id", s.RFPID),
		validate.RequiredField("name", s.Name),
		errs.ToError(),
	)
}

// Validate checks an RFP draft before it is added to the catalog.
func (r RFP) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if r.Budget <= 0 {
		errs = errs.Append("budget", errors.New("must be positive"))
	}
	if r.Status != "" && !r.Status.IsValid() {
		errs = errs.Append("status", fmt.Errorf("unknown status %q", r.Status))
	}

	return criterio.ValidateStruct(
		validate.RequiredField("title", r.Title),
		validate.RequiredField("department", r.Department),
		validate.EmailField("owner", r.Owner),
		errs.ToError(),
	)
}

// SLAs returns all SLAs, or only those for rfpID when non-empty.
func (c *Catalog) SLAs(rfpID string) []SLA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if rfpID == "" {
		return slices.Clone(c.slas)
	}
	var out []SLA
	for _, s := range c.slas {
		if s.RFPID == rfpID {
			out = append(out, s)
		}
	}
	return out
}

// AddSLA appends an SLA, assigning an ID when missing.
func (c *Catalog) AddSLA(s SLA) SLA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.ID == "" {
		s.ID = fmt.Sprintf("SLA-%03d", len(c.slas)+1)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	c.slas = append(c.slas, s)
	return s
}
