// Package access defines the privilege model and the per-request
// authorization gate for the task service.
package access

// Tier is a caller's ordinal privilege level.
//
// The ordering is total and fixed: a tier satisfies a requirement when it
// compares greater than or equal to it.
type Tier int

const (
	TierPublic          Tier = 0
	TierUnauthenticated Tier = 1
	TierFreeUser        Tier = 2
	TierPremiumUser     Tier = 3
	TierAdmin           Tier = 4
)

// Satisfies reports whether t meets the required tier.
func (t Tier) Satisfies(required Tier) bool {
	return t >= required
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return t >= TierPublic && t <= TierAdmin
}

// String renders the tier name for logs and the admin UI.
func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierUnauthenticated:
		return "unauthenticated"
	case TierFreeUser:
		return "free"
	case TierPremiumUser:
		return "premium"
	case TierAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Identity is the session-carried view of an authenticated user.
//
// The tier is a login-time snapshot: revoking a user's tier does not rewrite
// identities already held by live sessions.
type Identity struct {
	UserID   int64
	Username string
	Tier     Tier
}
