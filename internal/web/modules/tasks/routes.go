package tasks

import (
	"net/http"

	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.TodosAll, h.handleListAll)

	mux.HandleFunc(http.MethodPost+" "+routepath.Todos, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.Todos, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.TodoToggle, h.handleToggle)
	mux.HandleFunc(http.MethodDelete+" "+routepath.TodoResource, h.handleDelete)
	// Non-JS fallback for clients without HTMX.
	mux.HandleFunc(http.MethodPost+" "+routepath.TodoDelete, h.handleDelete)
}
