package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/web/templates"
)

func TestWriteModulePageFullLayout(t *testing.T) {
	rec := httptest.NewRecorder()
	identity := &access.Identity{UserID: 1, Username: "free", Tier: access.TierFreeUser}
	err := WriteModulePage(rec, httptest.NewRequest(http.MethodGet, "/public", nil), identity, ModulePage{
		Title:    "Public",
		Fragment: templates.PublicFragment(),
	})
	if err != nil {
		t.Fatalf("write page: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatal("expected full layout for browser request")
	}
	if !strings.Contains(body, "Public Page") {
		t.Fatal("expected fragment content")
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestWriteModulePageHTMXFragmentOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	err := WriteModulePage(rec, req, nil, ModulePage{
		Title:    "Public",
		Fragment: templates.PublicFragment(),
	})
	if err != nil {
		t.Fatalf("write page: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatal("HTMX response must not include the layout shell")
	}
	if !strings.Contains(body, "Public Page") {
		t.Fatal("expected fragment content")
	}
}

func TestWriteModulePageDefaultsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteModulePage(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil, ModulePage{Title: "Empty"}); err != nil {
		t.Fatalf("write page: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected default 200, got %d", rec.Code)
	}
}

func TestWriteNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found") {
		t.Fatal("expected not found page body")
	}
}
