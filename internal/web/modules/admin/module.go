// Package admin hosts the user-administration surface.
package admin

import (
	"net/http"

	module "github.com/taskgate/taskgate/internal/web/module"
)

// Module mounts the admin routes.
type Module struct{}

// New constructs the admin module.
func New() Module {
	return Module{}
}

// Name identifies the module in composition logs.
func (Module) Name() string {
	return "admin"
}

// Register mounts the admin routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) {
	registerRoutes(mux, newHandlers(deps))
}
