// Package public hosts the unauthenticated web surface: landing page,
// public page, login and logout flows, and the shared fallback routes.
package public

import (
	"net/http"

	module "github.com/taskgate/taskgate/internal/web/module"
)

// Module mounts the public routes.
type Module struct{}

// New constructs the public module.
func New() Module {
	return Module{}
}

// Name identifies the module in composition logs.
func (Module) Name() string {
	return "public"
}

// Register mounts the public routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) {
	registerRoutes(mux, newHandlers(deps))
}
