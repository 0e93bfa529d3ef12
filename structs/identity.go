package structs

import "github.com/google/uuid"

// Identity is who is looking at a storefront: an authenticated account, an
// anonymous browser session, or both. It is threaded explicitly through
// view/like tracking instead of living on request-global state.
type Identity struct {
	UserID       *uuid.UUID
	SessionToken string
}

// AnonymousIdentity builds an identity backed only by a session token.
func AnonymousIdentity(sessionToken string) Identity {
	return Identity{SessionToken: sessionToken}
}

// UserIdentity builds an identity for an authenticated account that still
// carries its browser session token.
func UserIdentity(userID uuid.UUID, sessionToken string) Identity {
	return Identity{UserID: &userID, SessionToken: sessionToken}
}

// Authenticated reports whether the identity belongs to a logged-in account.
func (id Identity) Authenticated() bool {
	return id.UserID != nil
}
