// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/web/platform/httpx"
	"github.com/taskgate/taskgate/internal/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using the shared app-shell contract.
//
// HTMX requests get the bare fragment so partial swaps stay cheap; everything
// else gets the fragment wrapped in the full layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, identity *access.Identity, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if httpx.IsHTMXRequest(r) {
		return fragment.Render(ctx, w)
	}
	return templates.Page(page.Title, identity, fragment).Render(ctx, w)
}

// WriteNotFound writes the shared 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, identity *access.Identity) {
	_ = WriteModulePage(w, r, identity, ModulePage{
		Title:      "Not Found",
		StatusCode: http.StatusNotFound,
		Fragment:   templates.NotFoundFragment(),
	})
}
