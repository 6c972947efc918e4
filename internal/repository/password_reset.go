package repository

import (
	"context"
	"time"

	"loanpayback/internal/logger"
	"loanpayback/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO password_reset_tokens (user_id, token, expires_at, is_used) VALUES ($1, $2, $3, FALSE)`,
		userID, token, expiresAt,
	)
	if err != nil {
		logger.Log.Error("reset token insert failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

// GetValid returns the token record iff it is unused and unexpired.
// Read-only: verification never mutates state.
func (r *PasswordResetRepository) GetValid(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, is_used, used_at, created_at
		FROM password_reset_tokens
		WHERE token = $1
		  AND NOT is_used
		  AND expires_at > now()
	`, token)

	var t models.PasswordResetToken
	if err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.IsUsed, &t.UsedAt, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkUsed consumes the token. After this, GetValid no longer matches it.
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET is_used = TRUE, used_at = now() WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("reset token consume failed (repo)", zap.Error(err), zap.Int64("token_id", id))
	}
	return err
}
