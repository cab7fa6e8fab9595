//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// usersJSON is a trimmed copy of the public placeholder users
const usersJSON = `[
  {"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
   "phone": "1-770-736-8031 x56442", "website": "hildegard.org",
   "company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}},
  {"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv",
   "phone": "010-692-6593 x09125", "website": "anastasia.net",
   "company": {"name": "Deckow-Crist", "catchPhrase": "Proactive didactic contingency", "bs": "synergize scalable supply-chains"}},
  {"id": 3, "name": "Clementine Bauch", "username": "Samantha", "email": "Nathan@yesenia.net",
   "phone": "1-463-123-4447", "website": "ramiro.info",
   "company": {"name": "Romaguera-Jacobson", "catchPhrase": "Face to face bifurcated interface", "bs": "e-enable strategic applications"}}
]`

// UsersServer is a local users endpoint counting its requests
type UsersServer struct {
	*httptest.Server
	requests atomic.Int32
}

// NewUsersServer serves usersJSON, or HTTP 500 when failing is true
func NewUsersServer(t *testing.T, failing bool) *UsersServer {
	t.Helper()

	s := &UsersServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		if failing {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersJSON))
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns how many fetches reached the server
func (s *UsersServer) Requests() int {
	return int(s.requests.Load())
}
