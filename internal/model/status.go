package model

// FetchStatus represents the status of a build fetch task
type FetchStatus string

const (
	// FetchStatusPending means the task has been created but not started
	FetchStatusPending FetchStatus = "Pending"

	// FetchStatusFetching means the scrape pipeline is running
	FetchStatusFetching FetchStatus = "Fetching"

	// FetchStatusCompleted means the task finished with a result set
	FetchStatusCompleted FetchStatus = "Completed"

	// FetchStatusNotFound means the champion page does not exist
	FetchStatusNotFound FetchStatus = "NotFound"

	// FetchStatusError means the fetch failed with a transfer error
	FetchStatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true if the task is still running
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusPending || fs == FetchStatusFetching
}

// IsFinished returns true if the task reached a terminal state
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusCompleted || fs == FetchStatusNotFound || fs == FetchStatusError
}
