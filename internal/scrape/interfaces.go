package scrape

import (
	"github.com/aramlens/aram-builds/internal/model"
)

// Fetcher defines the interface for the build fetch service.
type Fetcher interface {
	// SetUpdateCallback registers the function invoked on every task
	// status transition.
	SetUpdateCallback(func(*model.FetchTask))

	// Fetch starts a background fetch for a champion name. It fails when
	// a fetch is already in flight or the name normalizes to nothing.
	Fetch(champion string) (*model.FetchTask, error)

	// CurrentTask returns the most recent task, if any.
	CurrentTask() (*model.FetchTask, bool)
}
