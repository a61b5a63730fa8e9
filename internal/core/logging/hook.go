package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts rfp_id and user from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if rfpID := GetRFPID(ctx); rfpID != "" {
		e.Str("rfp_id", rfpID)
	}

	if user := GetUser(ctx); user != "" {
		e.Str("user", user)
	}
}
