package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"storefx/internal/adapters"
	"storefx/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userContextKey contextKey = "user_id"

// Auth validates storefront session tokens and gates admin-only routes.
// The token only identifies the user; the role is read from the profiles
// table so a revoked admin loses access without waiting for token expiry.
type Auth struct {
	secret   []byte
	profiles adapters.ProfileStore
}

func NewAuth(secret string, profiles adapters.ProfileStore) *Auth {
	return &Auth{secret: []byte(secret), profiles: profiles}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Session parses the Bearer session token and injects the user ID into the
// request context. Responds 401 on any failure.
func (a *Auth) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			writeAuthError(w, http.StatusUnauthorized, "invalid token format")
			return
		}
		if len(a.secret) == 0 {
			writeAuthError(w, http.StatusInternalServerError, "auth is not configured")
			return
		}

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return a.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			writeAuthError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin checks the authenticated user's profile role. Fail-closed: a
// missing profile or a lookup failure denies access.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		role, err := a.profiles.GetRole(r.Context(), userID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("Admin check failed")
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}
		if role != domain.RoleAdmin {
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext returns the authenticated user ID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(userContextKey).(uuid.UUID)
	return id, ok
}

func writeAuthError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": errorMsg})
}
