package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aramlens/aram-builds/internal/model"
	"github.com/aramlens/aram-builds/internal/platform"
)

// Service runs the fetch-parse-aggregate-download pipeline for one search
// at a time. The pipeline runs on a single background goroutine; results
// are handed to the UI through the update callback as a completed,
// immutable task. There is no cancellation: a started fetch runs to
// completion or failure.
type Service struct {
	client  *Client
	baseURL string

	mutex    sync.Mutex
	current  *model.FetchTask
	onUpdate func(*model.FetchTask) // callback for UI updates
}

// NewService creates a new fetch service talking to baseURL.
func NewService(baseURL string, client *Client) *Service {
	if baseURL == "" {
		baseURL = platform.DefaultBaseURL
	}
	if client == nil {
		client = NewClient(ClientOptions{})
	}
	return &Service{
		client:  client,
		baseURL: baseURL,
	}
}

// SetUpdateCallback sets the callback function for task status updates.
// The callback may be invoked from the background goroutine; UI consumers
// must reschedule onto their own thread.
func (s *Service) SetUpdateCallback(callback func(*model.FetchTask)) {
	s.onUpdate = callback
}

// CurrentTask returns the most recent task, if any.
func (s *Service) CurrentTask() (*model.FetchTask, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.current, s.current != nil
}

// Fetch starts a background fetch for the given champion name. Only one
// fetch may be in flight at a time; the UI disables its trigger while a
// task is active, and this guard backs that up.
func (s *Service) Fetch(champion string) (*model.FetchTask, error) {
	slug := platform.NormalizeChampionName(champion)
	if slug == "" {
		return nil, fmt.Errorf("champion name %q has no usable characters", champion)
	}

	s.mutex.Lock()
	if s.current != nil && s.current.Status.IsActive() {
		s.mutex.Unlock()
		return nil, fmt.Errorf("a fetch is already in progress")
	}

	task := &model.FetchTask{
		ID:        uuid.NewString(),
		Champion:  champion,
		Slug:      slug,
		URL:       platform.BuildPageURL(s.baseURL, slug),
		Status:    model.FetchStatusPending,
		StartedAt: time.Now(),
	}
	s.current = task
	s.mutex.Unlock()

	go s.runFetch(task)
	return task, nil
}

// runFetch executes the whole pipeline sequentially on one goroutine.
func (s *Service) runFetch(task *model.FetchTask) {
	ctx := context.Background()

	s.setStatus(task, model.FetchStatusFetching, "")

	doc, err := s.client.FetchPage(ctx, task.URL)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.finish(task, model.FetchStatusNotFound, "")
		} else {
			s.finish(task, model.FetchStatusError, err.Error())
		}
		return
	}

	// The site can serve a generic page with a 200 status for champions
	// it does not know about.
	if !HasBuildMarkers(doc) {
		s.finish(task, model.FetchStatusNotFound, "")
		return
	}

	results := s.client.CollectBuilds(ctx, doc)

	s.mutex.Lock()
	task.Results = results
	s.mutex.Unlock()
	s.finish(task, model.FetchStatusCompleted, "")
}

func (s *Service) setStatus(task *model.FetchTask, status model.FetchStatus, lastError string) {
	s.mutex.Lock()
	task.Status = status
	task.LastError = lastError
	s.mutex.Unlock()

	s.notifyUpdate(task)
}

func (s *Service) finish(task *model.FetchTask, status model.FetchStatus, lastError string) {
	s.mutex.Lock()
	task.Status = status
	task.LastError = lastError
	task.FinishedAt = time.Now()
	s.mutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.FetchTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}
