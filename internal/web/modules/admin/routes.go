package admin

import (
	"net/http"

	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleUsers)

	mux.HandleFunc(http.MethodPost+" "+routepath.AdminUserTier, h.handleSetTier)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminUserTier, httpx.MethodNotAllowed(http.MethodPost))
}
