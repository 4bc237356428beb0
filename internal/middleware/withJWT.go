package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/shortlink-app/shortlink/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// VisitorIDKey is the key used to store and retrieve the visitor ID from the
// request context.
const VisitorIDKey ContextKey = "visitorID"

// InjectVisitorID adds the visitor ID to the request context, making it
// accessible for downstream handlers.
func InjectVisitorID(req *http.Request, visitorID string) *http.Request {
	ctx := context.WithValue(req.Context(), VisitorIDKey, visitorID)
	return req.WithContext(ctx)
}

// WithJWT checks for a valid session JWT in the request's cookies. If the
// token is missing, a new one is generated and sent to the client. The
// visitor ID from the claims is injected into the request context.
func WithJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, cErr := r.Cookie("token")
			visitorID := ""

			if cErr != nil {
				tokenString, generatedID, err := auth.BuildJWTString()
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     "token",
					Value:    tokenString,
					Expires:  time.Now().Add(service.TokenExp),
					HttpOnly: true,
					Path:     "/",
				})

				visitorID = generatedID
			}

			if cookie != nil {
				claims, err := auth.ParseClaims(cookie)
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				visitorID = claims.VisitorID
			}

			next.ServeHTTP(w, InjectVisitorID(r, visitorID))
		})
	}
}
