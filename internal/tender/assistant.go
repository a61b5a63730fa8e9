package tender

import (
	"context"
	"fmt"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
)

// AssistantService forwards questions to the hosted RFP query function.
type AssistantService struct {
	auth *AuthService
	wb   *Workbench
}

// NewAssistantService creates an AssistantService.
func NewAssistantService(auth *AuthService, wb *Workbench) *AssistantService {
	return &AssistantService{auth: auth, wb: wb}
}

// Ask sends question, optionally scoped to rfpID, and records the query.
func (s *AssistantService) Ask(ctx context.Context, question, rfpID string) (backend.Answer, error) {
	answer, err := s.auth.Client().Ask(ctx, backend.Question{Question: question, RFPID: rfpID})
	if err != nil {
		return backend.Answer{}, err
	}

	s.wb.Record(ctx, activity.ActionQuery, fmt.Sprintf("Asked %q", question), rfpID)
	return answer, nil
}
