// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// CurrentPasswordKey identifies the cached password of the signed-in member in the credential store.
// It holds the server-issued temporary password until the first change succeeds, and the
// current password afterwards.
const CurrentPasswordKey = "tontine.currentPassword"

// UserIdentity is the member currently using the application, as decoded from the backend's access token.
type UserIdentity struct {
	ID         uuid.UUID // The member's identifier on the backend.
	Email      string    // Login identifier and contact address.
	Name       string    // Display name.
	Roles      []string  // Roles granted by the backend, e.g. "member", "treasurer".
	FirstLogin bool      // True while the member still holds a server-issued temporary password.

	AccessToken string `json:"-"` // Raw bearer token sent with backend calls.
}

// HasRole reports whether the identity carries the given role.
func (u *UserIdentity) HasRole(role string) bool {
	if u == nil {
		return false
	}

	return slices.Contains(u.Roles, role)
}

// Session is a snapshot of the process-wide session state.
type Session struct {
	User      *UserIdentity // Nil when nobody is signed in.
	IsLoading bool          // True while the persisted session is being loaded.
}

// IsAuthenticated reports whether the snapshot carries a signed-in member.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}
