package rfp

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Catalog is the in-memory set of procurement records the workbench shows.
// It is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	rfps       []RFP
	applicants []Applicant
	contracts  []Contract
	users      []User
	slas       []SLA
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// RFPs returns a copy of all RFPs in insertion order.
func (c *Catalog) RFPs() []RFP {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.rfps)
}

// RFP returns a single RFP by ID.
func (c *Catalog) RFP(id string) (RFP, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.rfps {
		if strings.EqualFold(r.ID, id) {
			return r, nil
		}
	}
	return RFP{}, fmt.Errorf("rfp %q: %w", id, ErrNotFound)
}

// AddRFP appends an RFP. A missing ID gets the next sequential one.
func (c *Catalog) AddRFP(r RFP) RFP {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r.ID == "" {
		r.ID = RFPID(len(c.rfps))
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = StatusDraft
	}
	if r.WorkflowStep == "" {
		r.WorkflowStep = StepIntake
	}
	c.rfps = append(c.rfps, r)
	return r
}

// Applicants returns all applicants, or only those for rfpID when non-empty.
func (c *Catalog) Applicants(rfpID string) []Applicant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if rfpID == "" {
		return slices.Clone(c.applicants)
	}
	var out []Applicant
	for _, a := range c.applicants {
		if strings.EqualFold(a.RFPID, rfpID) {
			out = append(out, a)
		}
	}
	return out
}

// AddApplicant appends an applicant, assigning an ID when missing.
func (c *Catalog) AddApplicant(a Applicant) Applicant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Step == "" {
		a.Step = StepIntake
	}
	c.applicants = append(c.applicants, a)
	return a
}

// Contracts returns all contracts.
func (c *Catalog) Contracts() []Contract {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.contracts)
}

// AddContract appends a contract.
func (c *Catalog) AddContract(ct Contract) Contract {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ct.ID == "" {
		ct.ID = fmt.Sprintf("CT-%03d", len(c.contracts)+1)
	}
	c.contracts = append(c.contracts, ct)
	return ct
}

// Users returns all users.
func (c *Catalog) Users() []User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.users)
}

// AddUser appends a user.
func (c *Catalog) AddUser(u User) User {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = append(c.users, u)
	return u
}

// RFPID formats the sequential identifier for the RFP at index.
func RFPID(index int) string {
	return fmt.Sprintf("RFP-%03d", index+1)
}

// CloneRFP derives a deterministic filler RFP from base for demo padding.
func CloneRFP(base RFP, index int) RFP {
	r := base
	r.ID = RFPID(index)
	r.Title = fmt.Sprintf("%s (Lot %d)", base.Title, index+1)
	r.Budget = base.Budget + float64(index)*2500
	r.Deadline = base.Deadline.AddDate(0, 0, index)
	r.Status = Statuses[index%len(Statuses)]
	r.WorkflowStep = []string{StepIntake, StepEvaluation, StepCommercial, StepNegotiation, StepAward}[index%5]
	return r
}
