package tender

import (
	"context"
	"fmt"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
)

// LinkService manages contract document links on the backend and records
// every change.
type LinkService struct {
	auth *AuthService
	wb   *Workbench
}

// NewLinkService creates a LinkService.
func NewLinkService(auth *AuthService, wb *Workbench) *LinkService {
	return &LinkService{auth: auth, wb: wb}
}

// List returns links matching f. Reads work without a session.
func (s *LinkService) List(ctx context.Context, f backend.LinkFilter) ([]backend.DocumentLink, error) {
	return s.auth.Client().Links().List(ctx, f)
}

// Get returns one link.
func (s *LinkService) Get(ctx context.Context, id string) (backend.DocumentLink, error) {
	return s.auth.Client().Links().Get(ctx, id)
}

// Create adds a link for the signed-in user.
func (s *LinkService) Create(ctx context.Context, n backend.NewLink) (backend.DocumentLink, error) {
	if err := n.Validate(); err != nil {
		return backend.DocumentLink{}, err
	}

	client, session, err := s.auth.AuthedClient()
	if err != nil {
		return backend.DocumentLink{}, err
	}
	if n.CreatedBy == "" {
		n.CreatedBy = session.User.Email
	}

	link, err := client.Links().Create(ctx, n)
	if err != nil {
		s.wb.bus.Error("Could not add document link", err)
		return backend.DocumentLink{}, err
	}

	s.wb.Record(ctx, activity.ActionCreate, fmt.Sprintf("Added document link %s", link.DocumentLink), link.RFPID)
	s.wb.bus.Success("Document link added", link.DocumentLink)
	return link, nil
}

// Update applies p to an existing link.
func (s *LinkService) Update(ctx context.Context, id string, p backend.LinkPatch) (backend.DocumentLink, error) {
	client, _, err := s.auth.AuthedClient()
	if err != nil {
		return backend.DocumentLink{}, err
	}

	link, err := client.Links().Update(ctx, id, p)
	if err != nil {
		s.wb.bus.Error("Could not update document link", err)
		return backend.DocumentLink{}, err
	}

	s.wb.Record(ctx, activity.ActionUpdate, fmt.Sprintf("Updated document link %s", link.ID), link.RFPID)
	s.wb.bus.Success("Document link updated", link.ID)
	return link, nil
}

// Delete removes a link.
func (s *LinkService) Delete(ctx context.Context, id string) error {
	client, _, err := s.auth.AuthedClient()
	if err != nil {
		return err
	}

	if err := client.Links().Delete(ctx, id); err != nil {
		s.wb.bus.Error("Could not delete document link", err)
		return err
	}

	s.wb.Record(ctx, activity.ActionDelete, fmt.Sprintf("Deleted document link %s", id), "")
	s.wb.bus.Success("Document link deleted", id)
	return nil
}
