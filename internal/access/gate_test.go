package access

import "testing"

func TestDecideRedirectsAnonymousToLogin(t *testing.T) {
	for _, path := range []string{"/dashboard", "/profile", "/admin", "/todos/all", "/account", "/unmapped"} {
		if got := Decide(path, nil); got != RedirectToLogin {
			t.Fatalf("Decide(%q, nil) = %v, want %v", path, got, RedirectToLogin)
		}
	}
}

func TestDecideAllowsAnonymousOnPublicRoutes(t *testing.T) {
	for _, path := range []string{"/", "/public", "/public/faq"} {
		if got := Decide(path, nil); got != Allow {
			t.Fatalf("Decide(%q, nil) = %v, want %v", path, got, Allow)
		}
	}
}

func TestDecideAllowsIffTierSuffices(t *testing.T) {
	tiers := []Tier{TierPublic, TierUnauthenticated, TierFreeUser, TierPremiumUser, TierAdmin}
	paths := []string{"/", "/public", "/account", "/login", "/dashboard", "/profile", "/todos/all", "/admin", "/unmapped"}
	for _, tier := range tiers {
		identity := &Identity{UserID: 1, Username: "u", Tier: tier}
		for _, path := range paths {
			got := Decide(path, identity)
			if tier.Satisfies(RequiredTier(path)) {
				if got != Allow {
					t.Fatalf("Decide(%q, tier %v) = %v, want %v", path, tier, got, Allow)
				}
				continue
			}
			if got != RedirectToAccessDenied {
				t.Fatalf("Decide(%q, tier %v) = %v, want %v", path, tier, got, RedirectToAccessDenied)
			}
		}
	}
}

func TestDecideTodosAllScenario(t *testing.T) {
	free := &Identity{UserID: 3, Username: "free", Tier: TierFreeUser}
	premium := &Identity{UserID: 2, Username: "premium", Tier: TierPremiumUser}
	admin := &Identity{UserID: 1, Username: "admin", Tier: TierAdmin}

	if got := Decide("/todos/all", admin); got != Allow {
		t.Fatalf("admin on /todos/all = %v, want %v", got, Allow)
	}
	if got := Decide("/todos/all", premium); got != RedirectToAccessDenied {
		t.Fatalf("premium on /todos/all = %v, want %v", got, RedirectToAccessDenied)
	}
	if got := Decide("/todos/all", free); got != RedirectToAccessDenied {
		t.Fatalf("free on /todos/all = %v, want %v", got, RedirectToAccessDenied)
	}
	if got := Decide("/todos/all", nil); got != RedirectToLogin {
		t.Fatalf("anonymous on /todos/all = %v, want %v", got, RedirectToLogin)
	}
}

func TestGateExemptPaths(t *testing.T) {
	exempt := []string{"/favicon.ico", "/login", "/access-denied", "/static/css/main.css", "/static/js/htmx.js", "/theme.css", "/app.js"}
	for _, path := range exempt {
		if !GateExempt(path) {
			t.Fatalf("expected %q to be gate-exempt", path)
		}
	}
	gated := []string{"/", "/dashboard", "/login/reset", "/staticish", "/todos/all"}
	for _, path := range gated {
		if GateExempt(path) {
			t.Fatalf("expected %q to be gated", path)
		}
	}
}

func TestDecisionString(t *testing.T) {
	if Allow.String() != "allow" || RedirectToLogin.String() != "redirect_to_login" {
		t.Fatal("unexpected decision names")
	}
	if Decision(42).String() != "unknown" {
		t.Fatalf("Decision(42).String() = %q", Decision(42).String())
	}
}
