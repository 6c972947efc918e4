package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"loanpayback/internal/logger"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
	"loanpayback/internal/reqctx"
	"loanpayback/internal/utils"
	helpers "loanpayback/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type userResolver interface {
	GetActiveByID(ctx context.Context, id int) (*models.User, error)
}

// JWTAuth verifies the bearer token per request: extract, check signature
// and expiry, then resolve the subject to a currently active user. No
// session state is kept between requests; a deactivated user is rejected
// even with an unexpired token.
func JWTAuth(secret string, users userResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: missing or malformed token")
				helpers.Error(w, http.StatusUnauthorized, "missing or malformed token")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "token has expired"
				}
				logger.WithCtx(r.Context()).Warn("JWTAuth: token rejected", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, msg)
				return
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				logger.WithCtx(r.Context()).Warn("JWTAuth: invalid payload", zap.Any("claims", claims))
				helpers.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := users.GetActiveByID(r.Context(), int(userID))
			if err != nil {
				if errors.Is(err, repository.ErrNoRows) {
					logger.WithCtx(r.Context()).Warn("JWTAuth: user not found or inactive", zap.Int("user_id", int(userID)))
					helpers.Error(w, http.StatusUnauthorized, "user not found")
					return
				}
				logger.WithCtx(r.Context()).Error("JWTAuth: user lookup failed", zap.Error(err), zap.Int("user_id", int(userID)))
				helpers.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUser, user)
			ctx = reqctx.WithUserID(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly gates admin routes. Must run after JWTAuth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			helpers.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
