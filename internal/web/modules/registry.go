// Package modules composes the default web module registry.
package modules

import (
	module "github.com/taskgate/taskgate/internal/web/module"
	"github.com/taskgate/taskgate/internal/web/modules/admin"
	"github.com/taskgate/taskgate/internal/web/modules/public"
	"github.com/taskgate/taskgate/internal/web/modules/tasks"
)

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Module aliases the module interface contract.
type Module = module.Module

// Default returns the stable web modules in mount order.
func Default() []Module {
	return []Module{
		public.New(),
		tasks.New(),
		admin.New(),
	}
}
