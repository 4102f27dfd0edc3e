package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyIsDemo
)

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

func isDemoFrom(ctx context.Context) bool {
	demo, _ := ctx.Value(ctxKeyIsDemo).(bool)
	return demo
}

// authenticate resolves the caller from a Bearer JWT and stores the
// user id and demo flag on the request context. Everything behind it
// can assume a valid identity.
func (h *handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeFailure(w, http.StatusUnauthorized, "No token provided")
			return
		}
		raw := strings.TrimPrefix(authHeader, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return h.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			writeFailure(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, _ := claims["id"].(string)
		email, _ := claims["email"].(string)
		if userID == "" {
			writeFailure(w, http.StatusUnauthorized, "Invalid token payload")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		ctx = context.WithValue(ctx, ctxKeyIsDemo, email == h.demoEmail)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// restrictDemo blocks writes from the demo account; reads pass through.
func restrictDemo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDemoFrom(r.Context()) {
			writeFailure(w, http.StatusForbidden,
				"This Account is only for Demo Purposes. Modifications are not allowed.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func zapRequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info(
				"http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
