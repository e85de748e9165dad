// Package authz gates post mutations to the administrator account.
package authz

import (
	"quill/internal/models"
	"quill/internal/session"
)

// Action is a privileged operation on posts.
type Action string

const (
	ActionCreatePost Action = "create-post"
	ActionEditPost   Action = "edit-post"
	ActionDeletePost Action = "delete-post"
)

// Gate decides whether an identity may perform a privileged action. The policy
// is a single global rule: only the administrator account mutates posts. It is
// deliberately not a general permission system.
type Gate struct {
	adminID uint
}

// NewGate creates a gate for the given administrator user id.
func NewGate(adminID uint) *Gate {
	return &Gate{adminID: adminID}
}

// Authorize returns nil when the identity is the administrator, and a
// ForbiddenError for every other identity, Anonymous included.
func (g *Gate) Authorize(identity session.Identity, action Action) error {
	user, ok := identity.User()
	if !ok || user.ID != g.adminID {
		return models.NewForbiddenError("only the administrator can " + string(action))
	}
	return nil
}

// AdminID returns the administrator user id the gate enforces.
func (g *Gate) AdminID() uint {
	return g.adminID
}
