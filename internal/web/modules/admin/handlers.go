package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage"
	module "github.com/taskgate/taskgate/internal/web/module"
	apperrors "github.com/taskgate/taskgate/internal/web/platform/errors"
	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/platform/pagerender"
	"github.com/taskgate/taskgate/internal/web/routepath"
	"github.com/taskgate/taskgate/internal/web/templates"
)

type handlers struct {
	users storage.UserStore
	deps  module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{users: deps.Users, deps: deps}
}

func (h handlers) identity(r *http.Request) *access.Identity {
	if h.deps.ResolveIdentity == nil {
		return nil
	}
	return h.deps.ResolveIdentity(r)
}

// requireAdmin returns the caller identity or writes an error response. The
// gate already screens these routes; this is the handler-level guard for
// direct composition without the gate.
func (h handlers) requireAdmin(w http.ResponseWriter, r *http.Request) (*access.Identity, bool) {
	identity := h.identity(r)
	if identity == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "login required"))
		return nil, false
	}
	if !identity.Tier.Satisfies(access.TierAdmin) {
		httpx.WriteError(w, apperrors.E(apperrors.KindForbidden, "admin tier required"))
		return nil, false
	}
	return identity, true
}

func (h handlers) handleUsers(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}
	if h.users == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	users, err := h.users.ListUsers(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to load users"))
		return
	}
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "Admin",
		Fragment: templates.AdminUsersFragment(users, ""),
	})
}

func (h handlers) handleSetTier(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}
	if h.users == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	userID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil || userID <= 0 {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "invalid user id"))
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse tier form"))
		return
	}
	tierValue, err := strconv.Atoi(strings.TrimSpace(r.FormValue("tier")))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "invalid tier"))
		return
	}
	tier := access.Tier(tierValue)
	if !tier.Valid() || tier == access.TierPublic {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "tier is not assignable"))
		return
	}

	affected, err := h.users.SetTier(httpx.RequestContext(r), userID, tier)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to update tier"))
		return
	}
	if !affected {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "user not found"))
		return
	}
	httpx.WriteRedirect(w, r, routepath.Admin)
}
