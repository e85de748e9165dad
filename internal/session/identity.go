// Package session turns successful credential checks into durable caller
// identities backed by Redis, and resolves those identities on later requests.
package session

import (
	"quill/internal/models"
)

// Identity is the resolved caller of a request: either Anonymous or
// Authenticated with a fully loaded user. It replaces any notion of an
// "is authenticated" flag on the user record itself.
type Identity struct {
	user *models.User
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// Authenticated returns the identity for a logged-in user.
func Authenticated(user *models.User) Identity {
	return Identity{user: user}
}

// IsAuthenticated reports whether the identity carries a logged-in user.
func (id Identity) IsAuthenticated() bool {
	return id.user != nil
}

// User returns the authenticated user, or ok=false for Anonymous.
func (id Identity) User() (*models.User, bool) {
	if id.user == nil {
		return nil, false
	}
	return id.user, true
}
