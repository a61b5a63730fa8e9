package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/colonyops/tender/internal/core/validate"
)

// QueryFunction is the edge function backing the RFP query assistant.
const QueryFunction = "rfp-query"

// Invoke calls the named edge function with a JSON body and decodes the
// JSON reply into out.
func (c *Client) Invoke(ctx context.Context, name string, body, out any) error {
	if err := validate.RequiredField("function", name); err != nil {
		return err
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/functions/v1/" + name, body: body}, out); err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}
	return nil
}

// Question is a natural-language query, optionally scoped to one RFP.
type Question struct {
	Question string `json:"question"`
	RFPID    string `json:"rfp_id,omitempty"`
}

// Answer is the assistant's reply.
type Answer struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// Ask sends q to the query assistant.
func (c *Client) Ask(ctx context.Context, q Question) (Answer, error) {
	if err := validate.RequiredField("question", q.Question); err != nil {
		return Answer{}, err
	}

	var a Answer
	if err := c.Invoke(ctx, QueryFunction, q, &a); err != nil {
		return Answer{}, err
	}
	return a, nil
}
