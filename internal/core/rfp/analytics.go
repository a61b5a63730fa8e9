package rfp

// Summary aggregates catalog figures for dashboard headers.
type Summary struct {
	Total          int
	ByStatus       map[Status]int
	TotalBudget    float64
	Applicants     int
	AverageScore   float64
	ContractsValue float64
}

// Summarize computes a Summary over rfps, applicants and contracts.
func Summarize(rfps []RFP, applicants []Applicant, contracts []Contract) Summary {
	s := Summary{
		Total:      len(rfps),
		ByStatus:   make(map[Status]int, len(Statuses)),
		Applicants: len(applicants),
	}

	for _, r := range rfps {
		s.ByStatus[r.Status]++
		s.TotalBudget += r.Budget
	}

	if len(applicants) > 0 {
		var total float64
		for _, a := range applicants {
			total += a.Score
		}
		s.AverageScore = total / float64(len(applicants))
	}

	for _, ct := range contracts {
		s.ContractsValue += ct.Value
	}

	return s
}

// Summary returns the analytics summary for the whole catalog.
func (c *Catalog) Summary() Summary {
	return Summarize(c.RFPs(), c.Applicants(""), c.Contracts())
}
