package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
	"loanpayback/internal/utils"

	"go.uber.org/zap"
)

const resetTokenTTL = 24 * time.Hour

type PasswordService struct {
	repo  PasswordResetRepo
	users UserRepo
}

type PasswordResetRepo interface {
	Create(ctx context.Context, userID int, token string, expiresAt time.Time) error
	GetValid(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
}

func NewPasswordService(repo PasswordResetRepo, users UserRepo) *PasswordService {
	return &PasswordService{repo: repo, users: users}
}

// RequestReset issues a fresh reset token for the account behind email.
// Earlier unexpired tokens stay valid; every live token can be consumed
// independently. An unknown email returns ("", nil) so the handler can keep
// the response identical either way (enumeration resistance).
func (s *PasswordService) RequestReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	logger.Log.Info("password reset requested (service)", zap.String("email", email))

	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNoRows) {
			logger.Log.Error("reset lookup failed (service)", zap.Error(err))
		}
		return "", nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Log.Error("reset token generation failed (service)", zap.Error(err), zap.Int("user_id", user.ID))
		return "", apperrors.Wrap(apperrors.Internal, "reset request failed", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	expires := time.Now().Add(resetTokenTTL)
	if err := s.repo.Create(ctx, user.ID, token, expires); err != nil {
		return "", apperrors.Wrap(apperrors.Unavailable, "reset request failed", err)
	}

	logger.Log.Info("reset token issued (service)", zap.Int("user_id", user.ID), zap.Time("expires_at", expires))
	return token, nil
}

// VerifyToken returns the token record iff it is unused and unexpired.
// Verification alone never mutates state.
func (s *PasswordService) VerifyToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	rec, err := s.repo.GetValid(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.ErrInvalidResetToken
		}
		return nil, apperrors.Wrap(apperrors.Unavailable, "token verification failed", err)
	}
	return rec, nil
}

// ResetPassword consumes a valid token and replaces the user's digest.
// Consumption is what makes the token single-use: a second attempt fails
// verification because is_used is set.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logger.Log.Info("password reset attempt (service)")

	if len(newPassword) < 8 {
		return apperrors.New(apperrors.Validation, "password must be at least 8 characters")
	}

	rec, err := s.VerifyToken(ctx, token)
	if err != nil {
		logger.Log.Warn("reset token rejected (service)", zap.Error(err))
		return err
	}

	if err := s.users.UpdatePassword(ctx, rec.UserID, utils.HashPassword(newPassword)); err != nil {
		return apperrors.Wrap(apperrors.Unavailable, "password reset failed", err)
	}

	if err := s.repo.MarkUsed(ctx, rec.ID); err != nil {
		logger.Log.Error("reset token consume failed (service)", zap.Error(err), zap.Int64("token_id", rec.ID))
		return apperrors.Wrap(apperrors.Unavailable, "password reset failed", err)
	}

	logger.Log.Info("password reset ok (service)", zap.Int("user_id", rec.UserID))
	return nil
}
