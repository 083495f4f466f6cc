package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessageFallsBackToKind(t *testing.T) {
	err := E(KindForbidden, "")
	if err.Error() != "forbidden" {
		t.Fatalf("expected kind fallback, got %q", err.Error())
	}
	err = E(KindNotFound, "task not found")
	if err.Error() != "task not found" {
		t.Fatalf("expected message, got %q", err.Error())
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{E(KindInvalidInput, "bad form"), http.StatusBadRequest},
		{E(KindUnauthorized, "no session"), http.StatusUnauthorized},
		{E(KindForbidden, "not yours"), http.StatusForbidden},
		{E(KindUnavailable, "store down"), http.StatusServiceUnavailable},
		{E(KindNotFound, "missing"), http.StatusNotFound},
		{E(KindUnknown, "boom"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handle toggle: %w", E(KindForbidden, "not yours"))
	if got := HTTPStatus(wrapped); got != http.StatusForbidden {
		t.Fatalf("expected forbidden from wrapped error, got %d", got)
	}
}
