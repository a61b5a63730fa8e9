package logging

import (
	"context"
	"testing"
)

func TestWithRFPID(t *testing.T) {
	ctx := WithRFPID(context.Background(), "RFP-001")

	if got := GetRFPID(ctx); got != "RFP-001" {
		t.Errorf("GetRFPID() = %q, want %q", got, "RFP-001")
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "ana@example.com")

	if got := GetUser(ctx); got != "ana@example.com" {
		t.Errorf("GetUser() = %q, want %q", got, "ana@example.com")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetRFPID(ctx); got != "" {
		t.Errorf("GetRFPID() = %q, want empty string", got)
	}
	if got := GetUser(ctx); got != "" {
		t.Errorf("GetUser() = %q, want empty string", got)
	}
}
