package access

import "strings"

// policyRule maps a path predicate to the tier it demands.
type policyRule struct {
	match    func(path string) bool
	required Tier
}

// policyRules resolve first-match-wins. Order is load-bearing: prefixes may
// nest as routes grow, so new rules must slot in deliberately rather than be
// appended.
var policyRules = []policyRule{
	{func(p string) bool { return p == "/" || strings.HasPrefix(p, "/public") }, TierPublic},
	{func(p string) bool { return strings.HasPrefix(p, "/account") || strings.HasPrefix(p, "/login") }, TierUnauthenticated},
	{func(p string) bool { return strings.HasPrefix(p, "/dashboard") }, TierFreeUser},
	{func(p string) bool { return strings.HasPrefix(p, "/todos/all") }, TierAdmin},
	{func(p string) bool { return strings.HasPrefix(p, "/profile") }, TierPremiumUser},
	{func(p string) bool { return strings.HasPrefix(p, "/admin") }, TierAdmin},
}

// RequiredTier resolves the tier a request path demands.
//
// Unmatched paths fall through to TierFreeUser so that every new route is
// authenticated by default instead of silently public.
func RequiredTier(path string) Tier {
	for _, rule := range policyRules {
		if rule.match(path) {
			return rule.required
		}
	}
	return TierFreeUser
}
