package ui

import (
	"userdir/internal/domain"
)

// usersLoadedMsg carries the fetched collection for one mount
type usersLoadedMsg struct {
	generation int
	users      []domain.User
}

// usersFailedMsg reports a failed fetch for one mount
type usersFailedMsg struct {
	generation int
	err        error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
