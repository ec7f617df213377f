package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-storefront/utils"
)

// Key type for context
type contextKey string

const (
	UserContextKey  = contextKey("user")
	cookieWriterKey = contextKey("cookieWriter")
	SessionCookie   = "token"
)

// AuthMiddleware reads the session token from the HTTP-only cookie (or an
// Authorization bearer header for non-browser clients), attaches the claims
// to the request context when the token verifies, and always attaches the
// response writer so resolvers can set or clear the session cookie.
// Requests without a valid token proceed anonymously; each resolver decides
// whether authentication is required.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), cookieWriterKey, w)

			if tokenStr := tokenFromRequest(r); tokenStr != "" {
				claims, err := utils.ParseJWT(tokenStr, secret)
				if err == nil {
					ctx = context.WithValue(ctx, UserContextKey, claims)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// UserID returns the authenticated caller's id, if any.
func UserID(ctx context.Context) (string, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// SetSessionCookie delivers a session token to the caller as an HTTP-only
// cookie with a one-year max age.
func SetSessionCookie(ctx context.Context, token string) {
	w, ok := ctx.Value(cookieWriterKey).(http.ResponseWriter)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(utils.SessionDuration.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(ctx context.Context) {
	w, ok := ctx.Value(cookieWriterKey).(http.ResponseWriter)
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
