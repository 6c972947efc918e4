package middleware

import (
	"context"

	"loanpayback/internal/models"
)

type ContextKey string

const (
	ContextRequestID ContextKey = "request_id"
	ContextUser      ContextKey = "user"
)

// UserFromContext returns the authenticated user placed by JWTAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ContextUser).(*models.User)
	return u, ok
}
