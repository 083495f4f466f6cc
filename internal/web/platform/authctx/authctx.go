// Package authctx provides web authentication seams.
package authctx

import (
	"context"
	"net/http"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage"
	"github.com/taskgate/taskgate/internal/web/platform/sessioncookie"
)

// ResolveIdentity resolves the caller identity for a request, or nil for anonymous callers.
type ResolveIdentity func(*http.Request) *access.Identity

// SessionIdentity resolves identities through validated session cookies.
//
// The returned identity carries the tier captured at login time. Invalid,
// unknown, and expired sessions all resolve to anonymous.
func SessionIdentity(sessions storage.SessionStore) ResolveIdentity {
	return func(r *http.Request) *access.Identity {
		if r == nil || sessions == nil {
			return nil
		}
		sessionID, ok := sessioncookie.Read(r)
		if !ok {
			return nil
		}
		session, ok, err := sessions.GetSession(requestContext(r), sessionID)
		if err != nil || !ok {
			return nil
		}
		identity := session.Identity()
		return &identity
	}
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
