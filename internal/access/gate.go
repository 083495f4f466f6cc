package access

import "strings"

// Decision is the outcome of gating one inbound request.
type Decision int

const (
	// Allow lets the request through to its handler.
	Allow Decision = iota
	// RedirectToLogin means the route needs a logged-in caller and none is
	// present.
	RedirectToLogin
	// RedirectToAccessDenied means the caller is logged in but below the
	// route's required tier.
	RedirectToAccessDenied
)

// String renders the decision for logs.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToAccessDenied:
		return "redirect_to_access_denied"
	default:
		return "unknown"
	}
}

// Decide gates one request path against the caller's identity.
//
// The identity-presence check runs before the tier comparison so the two
// redirect targets stay distinct: "log in first" versus "logged in but not
// privileged enough".
func Decide(path string, identity *Identity) Decision {
	required := RequiredTier(path)

	if required >= TierUnauthenticated && identity == nil {
		return RedirectToLogin
	}

	callerTier := TierPublic
	if identity != nil {
		callerTier = identity.Tier
	}
	if !callerTier.Satisfies(required) {
		return RedirectToAccessDenied
	}
	return Allow
}

// GateExempt reports whether the gate must skip a path entirely.
//
// The login and access-denied endpoints are escape hatches for the gate's own
// redirects; gating them would loop. Static assets are never gated.
func GateExempt(path string) bool {
	if path == "/favicon.ico" || path == "/login" || path == "/access-denied" {
		return true
	}
	if strings.HasPrefix(path, "/static/") {
		return true
	}
	if strings.HasSuffix(path, ".css") || strings.HasSuffix(path, ".js") {
		return true
	}
	return false
}
