package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tender/internal/core/validate"
)

const linksPath = "/rest/v1/process_document_links"

// DocumentLink is a contract or supporting document attached to an RFP.
type DocumentLink struct {
	ID           string    `json:"id"`
	RFPID        string    `json:"rfp_id"`
	DocumentLink string    `json:"document_link"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LinkFilter narrows List results. Zero values match everything.
type LinkFilter struct {
	RFPID    string
	IsActive *bool
}

// NewLink is the payload for creating a document link.
type NewLink struct {
	RFPID        string `json:"rfp_id"`
	DocumentLink string `json:"document_link"`
	IsActive     bool   `json:"is_active"`
	CreatedBy    string `json:"created_by,omitempty"`
}

// Validate checks required fields and the link format.
func (n NewLink) Validate() error {
	return criterio.ValidateStruct(
		validate.RequiredField("rfp_id", n.RFPID),
		validate.LinkField("document_link", n.DocumentLink),
	)
}

// LinkPatch holds the fields to change on an existing link. Nil fields are
// left untouched.
type LinkPatch struct {
	DocumentLink *string   `json:"document_link,omitempty"`
	IsActive     *bool     `json:"is_active,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks that the patch changes something and that any new link is well formed.
func (p LinkPatch) Validate() error {
	if p.DocumentLink == nil && p.IsActive == nil {
		return criterio.NewFieldErrors("patch", errors.New("nothing to update"))
	}
	if p.DocumentLink != nil {
		return validate.LinkField("document_link", *p.DocumentLink)
	}
	return nil
}

// ProcessDocumentLinks is the CRUD service for the process_document_links table.
type ProcessDocumentLinks struct {
	client *Client
}

// List returns links matching f, newest first.
func (s *ProcessDocumentLinks) List(ctx context.Context, f LinkFilter) ([]DocumentLink, error) {
	q := url.Values{
		"select": {"*"},
		"order":  {"created_at.desc"},
	}
	if f.RFPID != "" {
		q.Set("rfp_id", "eq."+f.RFPID)
	}
	if f.IsActive != nil {
		q.Set("is_active", "eq."+strconv.FormatBool(*f.IsActive))
	}

	links := []DocumentLink{}
	if err := s.client.do(ctx, request{method: http.MethodGet, path: linksPath, query: q}, &links); err != nil {
		return nil, fmt.Errorf("list document links: %w", err)
	}
	return links, nil
}

// Get returns a single link by ID.
func (s *ProcessDocumentLinks) Get(ctx context.Context, id string) (DocumentLink, error) {
	if err := validate.RequiredField("id", id); err != nil {
		return DocumentLink{}, err
	}

	var links []DocumentLink
	q := url.Values{"select": {"*"}, "id": {"eq." + id}}
	if err := s.client.do(ctx, request{method: http.MethodGet, path: linksPath, query: q}, &links); err != nil {
		return DocumentLink{}, fmt.Errorf("get document link %s: %w", id, err)
	}
	return first(links, id)
}

// Create inserts a link and returns the stored record.
func (s *ProcessDocumentLinks) Create(ctx context.Context, n NewLink) (DocumentLink, error) {
	if err := n.Validate(); err != nil {
		return DocumentLink{}, err
	}

	var links []DocumentLink
	err := s.client.do(ctx, request{
		method:  http.MethodPost,
		path:    linksPath,
		body:    n,
		headers: map[string]string{"Prefer": "return=representation"},
	}, &links)
	if err != nil {
		return DocumentLink{}, fmt.Errorf("create document link: %w", err)
	}
	return first(links, "")
}

// Update applies p to the link with the given ID.
func (s *ProcessDocumentLinks) Update(ctx context.Context, id string, p LinkPatch) (DocumentLink, error) {
	if err := criterio.ValidateStruct(validate.RequiredField("id", id), p.Validate()); err != nil {
		return DocumentLink{}, err
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}

	var links []DocumentLink
	err := s.client.do(ctx, request{
		method:  http.MethodPatch,
		path:    linksPath,
		query:   url.Values{"id": {"eq." + id}},
		body:    p,
		headers: map[string]string{"Prefer": "return=representation"},
	}, &links)
	if err != nil {
		return DocumentLink{}, fmt.Errorf("update document link %s: %w", id, err)
	}
	return first(links, id)
}

// Delete removes the link with the given ID.
func (s *ProcessDocumentLinks) Delete(ctx context.Context, id string) error {
	if err := validate.RequiredField("id", id); err != nil {
		return err
	}

	var links []DocumentLink
	err := s.client.do(ctx, request{
		method:  http.MethodDelete,
		path:    linksPath,
		query:   url.Values{"id": {"eq." + id}},
		headers: map[string]string{"Prefer": "return=representation"},
	}, &links)
	if err != nil {
		return fmt.Errorf("delete document link %s: %w", id, err)
	}
	_, err = first(links, id)
	return err
}

func first(links []DocumentLink, id string) (DocumentLink, error) {
	if len(links) == 0 {
		if id == "" {
			return DocumentLink{}, fmt.Errorf("empty response: %w", ErrNotFound)
		}
		return DocumentLink{}, fmt.Errorf("document link %s: %w", id, ErrNotFound)
	}
	return links[0], nil
}
