// Package rfp holds the procurement domain: requests for proposal, the
// applicants bidding on them, awarded contracts and workbench users.
package rfp

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist in the catalog.
var ErrNotFound = errors.New("not found")

// Status is the lifecycle label of an RFP.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusOpen        Status = "open"
	StatusUnderReview Status = "under_review"
	StatusAwarded     Status = "awarded"
	StatusClosed      Status = "closed"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusDraft, StatusOpen, StatusUnderReview, StatusAwarded, StatusClosed}

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusOpen:
		return "Open"
	case StatusUnderReview:
		return "Under Review"
	case StatusAwarded:
		return "Awarded"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Workflow step labels attached to RFPs and applicants for display. No
// engine drives transitions between them.
const (
	StepIntake      = "Intake"
	StepEvaluation  = "Technical Evaluation"
	StepCommercial  = "Commercial Review"
	StepNegotiation = "Negotiation"
	StepAward       = "Award"
)

// RFP is a procurement solicitation.
type RFP struct {
	ID           string
	Title        string
	Department   string
	Owner        string
	Status       Status
	Budget       float64
	Deadline     time.Time
	WorkflowStep string
	Description  string // markdown
	CreatedAt    time.Time
}

// Applicant is a vendor that submitted a proposal against an RFP.
type Applicant struct {
	ID          string
	RFPID       string
	Vendor      string
	Contact     string
	BidAmount   float64
	Score       float64 // 0-100 review score
	Step        string
	SubmittedAt time.Time
	Shortlisted bool
}

// Contract is an awarded agreement that resulted from an RFP.
type Contract struct {
	ID     string
	RFPID  string
	Vendor string
	Value  float64
	Start  time.Time
	End    time.Time
	Signed bool
}

// Role is a workbench permission group.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOfficer  Role = "procurement_officer"
	RoleReviewer Role = "reviewer"
	RoleViewer   Role = "viewer"
)

// User is a workbench account.
type User struct {
	Email    string
	Name     string
	Role     Role
	Active   bool
	LastSeen time.Time
}
