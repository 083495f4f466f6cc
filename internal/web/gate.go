package web

import (
	"net/http"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/web/platform/authctx"
	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

// requestGate screens every request through the access policy before routing.
//
// Asset and auth-flow paths bypass the gate entirely so the login page and
// its styling stay reachable for everyone. Redirects are 303 See Other for
// browsers and HX-Redirect for HTMX partials.
func requestGate(resolveIdentity authctx.ResolveIdentity) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			if access.GateExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			var identity *access.Identity
			if resolveIdentity != nil {
				identity = resolveIdentity(r)
			}
			switch access.Decide(r.URL.Path, identity) {
			case access.Allow:
				next.ServeHTTP(w, r)
			case access.RedirectToLogin:
				httpx.WriteRedirect(w, r, routepath.Login)
			case access.RedirectToAccessDenied:
				httpx.WriteRedirect(w, r, routepath.AccessDenied)
			default:
				httpx.WriteRedirect(w, r, routepath.AccessDenied)
			}
		})
	}
}
