package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chris/marketplace-ledger/pkg/models"
)

// CallerHeader carries the caller identity authenticated by the host.
const CallerHeader = "X-Caller-Identity"

type callerKey struct{}

// CallerIdentity stores the identity from CallerHeader in the request context.
// A missing header leaves the zero identity.
func CallerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := models.Identity(strings.TrimSpace(r.Header.Get(CallerHeader)))
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// RequireCaller rejects requests that carry no caller identity.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Caller(r.Context()).IsZero() {
			http.Error(w, "Missing "+CallerHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithCaller(ctx context.Context, caller models.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// Caller returns the identity stored by CallerIdentity.
func Caller(ctx context.Context) models.Identity {
	caller, _ := ctx.Value(callerKey{}).(models.Identity)
	return caller
}
