// Package directory holds the user directory: loading the collection once,
// and deriving the visible subset from a search query.
package directory

import (
	"errors"
	"slices"

	"userdir/internal/domain"
)

// User-facing messages
const (
	LoadFailureMessage = "Failed to fetch users. Please try again later."
	EmptyResultMessage = "No users found matching your search criteria."
)

// ErrAlreadyLoaded is returned when a second collection is offered to a directory
var ErrAlreadyLoaded = errors.New("directory already loaded")

// Status is the load state of a directory
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Directory is the state of one mounted user directory. It has a single
// owner and is not safe for concurrent use.
type Directory struct {
	allUsers     []domain.User
	visibleUsers []domain.User
	query        string // raw input, updated on every keystroke
	appliedQuery string // query the visible users were computed from
	status       Status
	message      string
}

// New creates a directory waiting for its collection
func New() *Directory {
	return &Directory{
		allUsers:     []domain.User{},
		visibleUsers: []domain.User{},
		status:       StatusLoading,
	}
}

// Status returns the current load status
func (d *Directory) Status() Status {
	return d.status
}

// Message returns the user-visible error message when the load failed
func (d *Directory) Message() string {
	return d.message
}

// Query returns the raw search text
func (d *Directory) Query() string {
	return d.query
}

// AppliedQuery returns the query the visible users currently reflect
func (d *Directory) AppliedQuery() string {
	return d.appliedQuery
}

// SetQuery records the raw search text without recomputing anything
func (d *Directory) SetQuery(text string) {
	d.query = text
}

// ApplyQuery recomputes the visible users for text
func (d *Directory) ApplyQuery(text string) {
	d.appliedQuery = text
	d.visibleUsers = Filter(d.allUsers, text)
}

// Loaded stores the fetched collection. It can only succeed once, and never
// after a failure.
func (d *Directory) Loaded(users []domain.User) error {
	if d.status != StatusLoading {
		return ErrAlreadyLoaded
	}
	if users == nil {
		users = []domain.User{}
	}
	d.allUsers = users
	d.status = StatusLoaded
	d.ApplyQuery(d.appliedQuery)
	return nil
}

// Failed marks the load as failed. The cause is not exposed; every failure
// shows the same message.
func (d *Directory) Failed() {
	if d.status != StatusLoading {
		return
	}
	d.status = StatusFailed
	d.message = LoadFailureMessage
}

// AllUsers returns a copy of the loaded collection
func (d *Directory) AllUsers() []domain.User {
	return slices.Clone(d.allUsers)
}

// VisibleUsers returns a copy of the users matching the applied query
func (d *Directory) VisibleUsers() []domain.User {
	return slices.Clone(d.visibleUsers)
}

// Total returns the size of the loaded collection
func (d *Directory) Total() int {
	return len(d.allUsers)
}

// VisibleCount returns how many users match the applied query
func (d *Directory) VisibleCount() int {
	return len(d.visibleUsers)
}

// IsEmptyResult reports whether the empty-state message should be shown
func (d *Directory) IsEmptyResult() bool {
	return d.status == StatusLoaded && len(d.visibleUsers) == 0
}
