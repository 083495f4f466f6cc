package public

import (
	"net/http"
	"strings"
	"time"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/platform/id"
	"github.com/taskgate/taskgate/internal/storage"
	module "github.com/taskgate/taskgate/internal/web/module"
	apperrors "github.com/taskgate/taskgate/internal/web/platform/errors"
	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/platform/pagerender"
	"github.com/taskgate/taskgate/internal/web/platform/sessioncookie"
	"github.com/taskgate/taskgate/internal/web/routepath"
	"github.com/taskgate/taskgate/internal/web/templates"
)

const sessionTTL = 7 * 24 * time.Hour

// loginFailureMessage is shown for wrong passwords and unknown usernames
// alike so the form never confirms which accounts exist.
const loginFailureMessage = "Invalid username or password"

type handlers struct {
	users    storage.UserStore
	sessions storage.SessionStore
	deps     module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{
		users:    deps.Users,
		sessions: deps.Sessions,
		deps:     deps,
	}
}

func (h handlers) identity(r *http.Request) *access.Identity {
	if h.deps.ResolveIdentity == nil {
		return nil
	}
	return h.deps.ResolveIdentity(r)
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	identity := h.identity(r)
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "Task Tracker",
		Fragment: templates.HomeFragment(identity),
	})
}

func (h handlers) handlePublic(w http.ResponseWriter, r *http.Request) {
	identity := h.identity(r)
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "Public",
		Fragment: templates.PublicFragment(),
	})
}

func (h handlers) handleAccessDenied(w http.ResponseWriter, r *http.Request) {
	identity := h.identity(r)
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:      "Access Denied",
		StatusCode: http.StatusForbidden,
		Fragment:   templates.AccessDeniedFragment(),
	})
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	identity := h.identity(r)
	if identity != nil {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	_ = pagerender.WriteModulePage(w, r, nil, pagerender.ModulePage{
		Title:    "Login",
		Fragment: templates.LoginFragment(""),
	})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if h.users == nil || h.sessions == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse login form"))
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, ok, err := h.users.FindByCredentials(httpx.RequestContext(r), username, password)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "login is unavailable"))
		return
	}
	if !ok {
		_ = pagerender.WriteModulePage(w, r, nil, pagerender.ModulePage{
			Title:      "Login",
			StatusCode: http.StatusUnauthorized,
			Fragment:   templates.LoginFragment(loginFailureMessage),
		})
		return
	}

	sessionID, err := id.NewID()
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to start session"))
		return
	}
	now := time.Now().UTC()
	session := storage.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Tier:      user.Tier,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := h.sessions.PutSession(httpx.RequestContext(r), session); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to start session"))
		return
	}
	sessioncookie.Write(w, r, session.ID)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok && h.sessions != nil {
		_ = h.sessions.DeleteSession(httpx.RequestContext(r), sessionID)
	}
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	pagerender.WriteNotFound(w, r, h.identity(r))
}
