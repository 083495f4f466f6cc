package tasks

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
	tasks storage.TaskStore
	deps  module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{tasks: deps.Tasks, deps: deps}
}

func (h handlers) identity(r *http.Request) *access.Identity {
	if h.deps.ResolveIdentity == nil {
		return nil
	}
	return h.deps.ResolveIdentity(r)
}

// requireIdentity returns the caller identity or writes an unauthorized
// response. The gate already screens these routes; this is the handler-level
// guard for direct composition without the gate.
func (h handlers) requireIdentity(w http.ResponseWriter, r *http.Request) (*access.Identity, bool) {
	identity := h.identity(r)
	if identity == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnauthorized, "login required"))
		return nil, false
	}
	return identity, true
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	if h.tasks == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	list, err := h.tasks.ListForOwner(httpx.RequestContext(r), identity.UserID)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to load tasks"))
		return
	}
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "Dashboard",
		Fragment: templates.DashboardFragment(list, ""),
	})
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "Profile",
		Fragment: templates.ProfileFragment(*identity),
	})
}

func (h handlers) handleListAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	if h.tasks == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	list, err := h.tasks.ListAll(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to load tasks"))
		return
	}
	_ = pagerender.WriteModulePage(w, r, identity, pagerender.ModulePage{
		Title:    "All Tasks",
		Fragment: templates.AllTasksFragment(list),
	})
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	if h.tasks == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse task form"))
		return
	}
	title := r.FormValue("title")
	description := strings.TrimSpace(r.FormValue("description"))

	ctx := httpx.RequestContext(r)
	taskID, err := h.tasks.Create(ctx, identity.UserID, title, description)
	if err == storage.ErrEmptyTitle {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "task title is required"))
		return
	}
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to create task"))
		return
	}

	if httpx.IsHTMXRequest(r) {
		task, ok, err := h.tasks.GetTask(ctx, taskID)
		if err != nil || !ok {
			httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to load created task"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.TaskItem(task).Render(ctx, w)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

// loadOwnedTask resolves the task from the path id and enforces the
// ownership boundary: only the owner or an admin may touch a task.
func (h handlers) loadOwnedTask(w http.ResponseWriter, r *http.Request, identity *access.Identity) (storage.Task, bool) {
	taskID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil || taskID <= 0 {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "invalid task id"))
		return storage.Task{}, false
	}
	task, ok, err := h.tasks.GetTask(httpx.RequestContext(r), taskID)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to load task"))
		return storage.Task{}, false
	}
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "task not found"))
		return storage.Task{}, false
	}
	if task.OwnerID != identity.UserID && identity.Tier != access.TierAdmin {
		httpx.WriteError(w, apperrors.E(apperrors.KindForbidden, "task belongs to another user"))
		return storage.Task{}, false
	}
	return task, true
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	if h.tasks == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	task, ok := h.loadOwnedTask(w, r, identity)
	if !ok {
		return
	}
	ctx := httpx.RequestContext(r)
	affected, err := h.tasks.SetCompleted(ctx, task.ID, !task.Completed)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to update task"))
		return
	}
	if !affected {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "task not found"))
		return
	}
	if httpx.IsHTMXRequest(r) {
		task.Completed = !task.Completed
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templates.TaskItem(task).Render(ctx, w)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}
	if h.tasks == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "storage is not configured"))
		return
	}
	task, ok := h.loadOwnedTask(w, r, identity)
	if !ok {
		return
	}
	affected, err := h.tasks.Delete(httpx.RequestContext(r), task.ID)
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "failed to delete task"))
		return
	}
	if !affected {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "task not found"))
		return
	}
	if httpx.IsHTMXRequest(r) {
		// Empty body: the outerHTML swap removes the task element.
		w.WriteHeader(http.StatusOK)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}
