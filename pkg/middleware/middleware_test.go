package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCallerIdentity(t *testing.T) {
	var got models.Identity
	h := CallerIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Caller(r.Context())
	}))

	t.Run("Header Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(CallerHeader, " alice ")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, models.Identity("alice"), got)
	})

	t.Run("Header Missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, got.IsZero())
	})
}

func TestRequireCaller(t *testing.T) {
	h := CallerIdentity(RequireCaller(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(CallerHeader, "alice")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "no")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/storefronts/x", nil)
	req.Header.Set(CallerHeader, "mallory")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"caller":"mallory"`)
	assert.Contains(t, buf.String(), `"status":403`)
}
