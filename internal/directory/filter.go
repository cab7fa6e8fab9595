package directory

import (
	"strings"

	"userdir/internal/domain"
)

// Filter returns the users matching query, in the order given.
// An empty or whitespace-only query matches everyone and returns users as is.
func Filter(users []domain.User, query string) []domain.User {
	if strings.TrimSpace(query) == "" {
		return users
	}

	lowerQuery := strings.ToLower(query)

	filtered := make([]domain.User, 0, len(users))
	for _, user := range users {
		if Matches(user, lowerQuery) {
			filtered = append(filtered, user)
		}
	}
	return filtered
}

// Matches reports whether an already lowercased query is a substring of the
// user's name, username or email
func Matches(user domain.User, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(user.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(user.Username), lowerQuery) ||
		strings.Contains(strings.ToLower(user.Email), lowerQuery)
}
