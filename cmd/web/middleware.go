package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userContextKey = contextKey("user")

type userClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (app *application) newToken(user *models.User) (string, error) {
	claims := userClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(app.jwtSecret)
}

func (app *application) parseToken(raw string) (*userClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &userClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return app.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// requireSignIn checks the bearer token and stashes the claims on the
// request context. No session state is kept for API auth.
func (app *application) requireSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			app.writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Unauthorized Access",
			})
			return
		}

		claims, err := app.parseToken(raw)
		if err != nil {
			app.writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Unauthorized Access",
			})
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := app.requestUser(r)
		if claims == nil || claims.Role != "admin" {
			app.writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Unauthorized Access",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (app *application) requestUser(r *http.Request) *userClaims {
	claims, _ := r.Context().Value(userContextKey).(*userClaims)
	return claims
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.Infow("request", "remote", r.RemoteAddr, "method", r.Method, "url", r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.logger.Errorw("panic recovered", "err", err)
				app.clientError(w, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
