package tui

import (
	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
)

type activityLoadedMsg struct {
	entries []activity.Entry
	err     error
}

type linksLoadedMsg struct {
	rfpID string
	links []backend.DocumentLink
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}
