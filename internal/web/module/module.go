// Package module defines the shared contracts web modules are composed from.
package module

import (
	"net/http"

	"github.com/taskgate/taskgate/internal/storage"
	"github.com/taskgate/taskgate/internal/web/platform/authctx"
)

// Dependencies carries the runtime collaborators shared across web modules.
type Dependencies struct {
	Users           storage.UserStore
	Tasks           storage.TaskStore
	Sessions        storage.SessionStore
	ResolveIdentity authctx.ResolveIdentity
}

// Module registers a cohesive group of routes on the shared mux.
type Module interface {
	Name() string
	Register(mux *http.ServeMux, deps Dependencies)
}
