package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{"workspace", domain.ErrWorkspaceNotFound, http.StatusNotFound},
		{"menu", domain.ErrUnknownMenuItem, http.StatusNotFound},
		{"sign in", domain.ErrSignInRequired, http.StatusForbidden},
		{"wrapped filter", fmt.Errorf("set: %w", domain.ErrInvalidFilter), http.StatusUnprocessableEntity},
		{"user", domain.ErrInvalidUser, http.StatusUnprocessableEntity},
		{"selection", domain.ErrInvalidSelection, http.StatusUnprocessableEntity},
		{"unknown", errors.New("redis exploded"), http.StatusInternalServerError},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
				t.Fatalf("expected error envelope, got %q", rec.Body.String())
			}
			if tc.code == http.StatusInternalServerError && body.Error != "internal server error" {
				t.Fatalf("internal details leaked: %q", body.Error)
			}
		})
	}
}
