package mcp

// In this file: bearer-token authentication middleware for the HTTP
// transport.

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type ctxKey int

// authUserKey stores the authenticated username in the request context.
const authUserKey ctxKey = iota

// AuthUser returns the username authenticated by BearerAuth, or "" when the
// request was not authenticated.
func AuthUser(ctx context.Context) string {
	user, _ := ctx.Value(authUserKey).(string)
	return user
}

// BearerAuth returns a middleware that checks the Authorization header
// against the token map (token to username).  A nil or empty map disables
// authentication and all requests pass through.  Rejections use the
// JSON-RPC error envelope expected by MCP clients.
func BearerAuth(tokens map[string]string, lg *slog.Logger) func(http.Handler) http.Handler {
	if lg == nil {
		lg = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		if len(tokens) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Unauthorized: missing Authorization header")
				return
			}
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				unauthorized(w, `Unauthorized: invalid Authorization header format (expected "Bearer <token>")`)
				return
			}
			username, ok := tokens[strings.TrimSpace(token)]
			if !ok {
				unauthorized(w, "Unauthorized: invalid token")
				return
			}
			lg.DebugContext(r.Context(), "authenticated request", "user", username)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authUserKey, username)))
		})
	}
}

// unauthorized writes a 401 response with a JSON-RPC error body.
func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32001,"message":` + quote(msg) + `},"id":null}`))
}

func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
