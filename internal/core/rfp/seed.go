package rfp

import "time"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedCatalog returns a catalog populated with demo procurement data.
func SeedCatalog() *Catalog {
	c := NewCatalog()

	for _, r := range []RFP{
		{
			ID: "RFP-001", Title: "Cloud Infrastructure Migration", Department: "IT",
			Owner: "ana@example.com", Status: StatusOpen, Budget: 1250000,
			Deadline: day(2026, 11, 30), WorkflowStep: StepEvaluation, CreatedAt: day(2026, 8, 1),
			Description: "## Scope\n\nMigrate on-premise workloads to a managed cloud provider.\n\n" +
				"- 140 virtual machines\n- 12 TB of object storage\n- 24/7 support with a 99.9% SLA\n",
		},
		{
			ID: "RFP-002", Title: "Office Furniture Supply", Department: "Facilities",
			Owner: "ben@example.com", Status: StatusUnderReview, Budget: 180000,
			Deadline: day(2026, 10, 31), WorkflowStep: StepCommercial, CreatedAt: day(2026, 7, 12),
			Description: "## Scope\n\nErgonomic desks and chairs for **three floors** of the head office.\n",
		},
		{
			ID: "RFP-003", Title: "Fleet Telematics Platform", Department: "Operations",
			Owner: "ana@example.com", Status: StatusAwarded, Budget: 420000,
			Deadline: day(2026, 6, 15), WorkflowStep: StepAward, CreatedAt: day(2026, 3, 2),
			Description: "## Scope\n\nGPS tracking and driver analytics for 300 vehicles.\n",
		},
		{
			ID: "RFP-004", Title: "Security Operations Center Services", Department: "IT",
			Owner: "chen@example.com", Status: StatusDraft, Budget: 960000,
			Deadline: day(2027, 1, 20), WorkflowStep: StepIntake, CreatedAt: day(2026, 9, 20),
			Description: "## Scope\n\nManaged detection and response, including incident retainers.\n",
		},
		{
			ID: "RFP-005", Title: "Catering for Annual Summit", Department: "Events",
			Owner: "ben@example.com", Status: StatusClosed, Budget: 45000,
			Deadline: day(2026, 4, 1), WorkflowStep: StepAward, CreatedAt: day(2026, 1, 10),
			Description: "## Scope\n\nThree-day catering for 600 attendees.\n",
		},
	} {
		c.AddRFP(r)
	}

	for _, a := range []Applicant{
		{ID: "APP-001", RFPID: "RFP-001", Vendor: "Nimbus Systems", Contact: "bids@nimbus.example", BidAmount: 1180000, Score: 86, Step: StepEvaluation, SubmittedAt: day(2026, 9, 2), Shortlisted: true},
		{ID: "APP-002", RFPID: "RFP-001", Vendor: "Stratus Partners", Contact: "rfp@stratus.example", BidAmount: 1095000, Score: 79, Step: StepEvaluation, SubmittedAt: day(2026, 9, 5)},
		{ID: "APP-003", RFPID: "RFP-001", Vendor: "Orbital Cloud", Contact: "sales@orbital.example", BidAmount: 1310000, Score: 91, Step: StepCommercial, SubmittedAt: day(2026, 9, 9), Shortlisted: true},
		{ID: "APP-004", RFPID: "RFP-002", Vendor: "Seatwell", Contact: "tenders@seatwell.example", BidAmount: 171500, Score: 74, Step: StepCommercial, SubmittedAt: day(2026, 8, 14)},
		{ID: "APP-005", RFPID: "RFP-002", Vendor: "Deskcraft", Contact: "hello@deskcraft.example", BidAmount: 165000, Score: 81, Step: StepNegotiation, SubmittedAt: day(2026, 8, 20), Shortlisted: true},
		{ID: "APP-006", RFPID: "RFP-003", Vendor: "TrackLine", Contact: "gov@trackline.example", BidAmount: 398000, Score: 88, Step: StepAward, SubmittedAt: day(2026, 4, 11), Shortlisted: true},
		{ID: "APP-007", RFPID: "RFP-005", Vendor: "Harvest Table", Contact: "events@harvest.example", BidAmount: 43800, Score: 69, Step: StepAward, SubmittedAt: day(2026, 2, 3)},
	} {
		c.AddApplicant(a)
	}

	c.AddContract(Contract{ID: "CT-001", RFPID: "RFP-003", Vendor: "TrackLine", Value: 398000, Start: day(2026, 7, 1), End: day(2028, 6, 30), Signed: true})
	c.AddContract(Contract{ID: "CT-002", RFPID: "RFP-005", Vendor: "Harvest Table", Value: 43800, Start: day(2026, 4, 20), End: day(2026, 4, 23), Signed: true})

	for _, u := range []User{
		{Email: "ana@example.com", Name: "Ana Ruiz", Role: RoleAdmin, Active: true, LastSeen: day(2026, 10, 18)},
		{Email: "ben@example.com", Name: "Ben Okafor", Role: RoleOfficer, Active: true, LastSeen: day(2026, 10, 17)},
		{Email: "chen@example.com", Name: "Chen Li", Role: RoleReviewer, Active: true, LastSeen: day(2026, 10, 2)},
		{Email: "dana@example.com", Name: "Dana Moss", Role: RoleViewer, Active: false, LastSeen: day(2026, 5, 30)},
	} {
		c.AddUser(u)
	}

	return c
}
