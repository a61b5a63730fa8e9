package rfp

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/colonyops/tender/internal/core/table"
)

// Money renders an amount as "$1,250,000".
func Money(amount float64) string {
	return "$" + humanize.Commaf(amount)
}

func renderMoney(v any, _ RFP, _ int) string {
	amount, _ := v.(float64)
	return Money(amount)
}

// RFPColumns describes the RFP listing. The catalog supplies applicant counts.
func RFPColumns(c *Catalog) []table.Column[RFP] {
	return []table.Column[RFP]{
		{Key: "title", Label: "Title", Sortable: true, Value: func(r RFP) any { return r.Title }},
		{Key: "id", Label: "ID", Sortable: true, Value: func(r RFP) any { return r.ID }},
		{Key: "department", Label: "Department", Sortable: true, Value: func(r RFP) any { return r.Department }},
		{
			Key: "status", Label: "Status", Sortable: true,
			Value:  func(r RFP) any { return string(r.Status) },
			Render: func(_ any, r RFP, _ int) string { return r.Status.String() },
		},
		{Key: "budget", Label: "Budget", Sortable: true, Value: func(r RFP) any { return r.Budget }, Render: renderMoney},
		{Key: "deadline", Label: "Deadline", Sortable: true, Value: func(r RFP) any { return r.Deadline }},
		{
			Key: "applicants", Label: "Applicants", Sortable: true,
			Value: func(r RFP) any { return len(c.Applicants(r.ID)) },
		},
		{Key: "step", Label: "Workflow Step", Value: func(r RFP) any { return r.WorkflowStep }},
		{Key: "owner", Label: "Owner", Value: func(r RFP) any { return r.Owner }},
	}
}

// RFPRowID identifies RFP rows.
func RFPRowID(r RFP) string { return r.ID }

// ApplicantColumns describes the applicant tracking table.
func ApplicantColumns() []table.Column[Applicant] {
	return []table.Column[Applicant]{
		{Key: "vendor", Label: "Vendor", Sortable: true, Value: func(a Applicant) any { return a.Vendor }},
		{Key: "rfp", Label: "RFP", Sortable: true, Value: func(a Applicant) any { return a.RFPID }},
		{
			Key: "bid", Label: "Bid", Sortable: true,
			Value:  func(a Applicant) any { return a.BidAmount },
			Render: func(v any, _ Applicant, _ int) string { return Money(v.(float64)) },
		},
		{
			Key: "score", Label: "Score", Sortable: true,
			Value:  func(a Applicant) any { return a.Score },
			Render: func(v any, _ Applicant, _ int) string { return fmt.Sprintf("%.0f/100", v.(float64)) },
		},
		{Key: "step", Label: "Workflow Step", Sortable: true, Value: func(a Applicant) any { return a.Step }},
		{Key: "shortlisted", Label: "Shortlisted", Sortable: true, Value: func(a Applicant) any { return a.Shortlisted }},
		{Key: "submitted", Label: "Submitted", Sortable: true, Value: func(a Applicant) any { return a.SubmittedAt }},
		{Key: "contact", Label: "Contact", Value: func(a Applicant) any { return a.Contact }},
	}
}

// ApplicantRowID identifies applicant rows.
func ApplicantRowID(a Applicant) string { return a.ID }

// ContractColumns describes the contract table.
func ContractColumns() []table.Column[Contract] {
	return []table.Column[Contract]{
		{Key: "vendor", Label: "Vendor", Sortable: true, Value: func(ct Contract) any { return ct.Vendor }},
		{Key: "id", Label: "ID", Sortable: true, Value: func(ct Contract) any { return ct.ID }},
		{Key: "rfp", Label: "RFP", Sortable: true, Value: func(ct Contract) any { return ct.RFPID }},
		{
			Key: "value", Label: "Value", Sortable: true,
			Value:  func(ct Contract) any { return ct.Value },
			Render: func(v any, _ Contract, _ int) string { return Money(v.(float64)) },
		},
		{Key: "start", Label: "Start", Sortable: true, Value: func(ct Contract) any { return ct.Start }},
		{Key: "end", Label: "End", Sortable: true, Value: func(ct Contract) any { return ct.End }},
		{Key: "signed", Label: "Signed", Value: func(ct Contract) any { return ct.Signed }},
	}
}

// ContractRowID identifies contract rows.
func ContractRowID(ct Contract) string { return ct.ID }

// UserColumns describes the user administration table.
func UserColumns() []table.Column[User] {
	return []table.Column[User]{
		{Key: "name", Label: "Name", Sortable: true, Value: func(u User) any { return u.Name }},
		{Key: "email", Label: "Email", Sortable: true, Value: func(u User) any { return u.Email }},
		{Key: "role", Label: "Role", Sortable: true, Value: func(u User) any { return string(u.Role) }},
		{Key: "active", Label: "Active", Sortable: true, Value: func(u User) any { return u.Active }},
		{
			Key: "last_seen", Label: "Last Seen", Sortable: true,
			Value: func(u User) any { return u.LastSeen },
			Render: func(v any, _ User, _ int) string {
				return humanize.Time(v.(time.Time))
			},
		},
	}
}

// UserRowID identifies user rows.
func UserRowID(u User) string { return u.Email }
