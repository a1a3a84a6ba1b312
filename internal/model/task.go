package model

import (
	"strings"
	"time"
)

// FetchTask represents a single search request flowing through the scrape
// pipeline. A task is created fresh per search and fully discarded when a
// new search begins.
type FetchTask struct {
	ID         string
	Champion   string // raw user input
	Slug       string // normalized URL segment
	URL        string
	Status     FetchStatus
	LastError  string    // last error message if any
	StartedAt  time.Time // when the fetch started
	FinishedAt time.Time // when the fetch finished
	Results    ResultSet // populated only on FetchStatusCompleted
}

// GetDisplayName returns the raw champion name, the slug, or the URL in
// order of preference.
func (ft *FetchTask) GetDisplayName() string {
	if name := strings.TrimSpace(ft.Champion); name != "" {
		return name
	}
	if ft.Slug != "" {
		return ft.Slug
	}
	return ft.URL
}

// Elapsed returns how long the task has been (or was) running.
func (ft *FetchTask) Elapsed() time.Duration {
	if ft.StartedAt.IsZero() {
		return 0
	}
	if ft.FinishedAt.IsZero() {
		return time.Since(ft.StartedAt)
	}
	return ft.FinishedAt.Sub(ft.StartedAt)
}
