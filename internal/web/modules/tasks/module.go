// Package tasks hosts the authenticated task-management surface.
package tasks

import (
	"net/http"

	module "github.com/taskgate/taskgate/internal/web/module"
)

// Module mounts the task routes.
type Module struct{}

// New constructs the tasks module.
func New() Module {
	return Module{}
}

// Name identifies the module in composition logs.
func (Module) Name() string {
	return "tasks"
}

// Register mounts the task routes on the shared mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) {
	registerRoutes(mux, newHandlers(deps))
}
