package logging

import "context"

type contextKey string

const (
	rfpIDKey contextKey = "rfp_id"
	userKey  contextKey = "user"
)

// WithRFPID adds an RFP ID to the context.
func WithRFPID(ctx context.Context, rfpID string) context.Context {
	return context.WithValue(ctx, rfpIDKey, rfpID)
}

// WithUser adds the acting user's email to the context.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetRFPID retrieves the RFP ID from the context.
// Returns empty string if not present.
func GetRFPID(ctx context.Context) string {
	if id, ok := ctx.Value(rfpIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUser retrieves the acting user from the context.
// Returns empty string if not present.
func GetUser(ctx context.Context) string {
	if u, ok := ctx.Value(userKey).(string); ok {
		return u
	}
	return ""
}
