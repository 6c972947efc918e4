package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/models"
	"loanpayback/internal/repository"
	"loanpayback/internal/utils"
)

type mockResetRepo struct {
	tokens map[string]*models.PasswordResetToken
	nextID int64
}

func newMockResetRepo() *mockResetRepo {
	return &mockResetRepo{tokens: make(map[string]*models.PasswordResetToken), nextID: 1}
}

func (m *mockResetRepo) Create(_ context.Context, userID int, token string, expiresAt time.Time) error {
	m.tokens[token] = &models.PasswordResetToken{
		ID:        m.nextID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	m.nextID++
	return nil
}

func (m *mockResetRepo) GetValid(_ context.Context, token string) (*models.PasswordResetToken, error) {
	rec, ok := m.tokens[token]
	if !ok || rec.IsUsed || !time.Now().Before(rec.ExpiresAt) {
		return nil, repository.ErrNoRows
	}
	return rec, nil
}

func (m *mockResetRepo) MarkUsed(_ context.Context, id int64) error {
	for _, rec := range m.tokens {
		if rec.ID == id {
			now := time.Now()
			rec.IsUsed = true
			rec.UsedAt = &now
		}
	}
	return nil
}

func passwordFixture() (*PasswordService, *mockUserRepo, *mockResetRepo) {
	users := newMockUserRepo()
	users.users["testuser"] = &models.User{
		ID:             1,
		Username:       "testuser",
		Email:          "test@example.com",
		HashedPassword: utils.HashPassword("oldpassword"),
		IsActive:       true,
	}
	resets := newMockResetRepo()
	return NewPasswordService(resets, users), users, resets
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	service, _, resets := passwordFixture()

	token, err := service.RequestReset(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}
	if token != "" {
		t.Fatal("unknown email must not yield a token")
	}
	if len(resets.tokens) != 0 {
		t.Fatal("no token record may be created for an unknown email")
	}
}

func TestResetPassword_FullFlow(t *testing.T) {
	service, users, _ := passwordFixture()

	token, err := service.RequestReset(context.Background(), "test@example.com")
	if err != nil || token == "" {
		t.Fatalf("token issuance failed: %v", err)
	}

	if err := service.ResetPassword(context.Background(), token, "newpassword1"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !utils.CheckPasswordHash("newpassword1", users.users["testuser"].HashedPassword) {
		t.Fatal("stored digest does not match the new password")
	}
}

func TestResetPassword_SingleUse(t *testing.T) {
	service, _, _ := passwordFixture()

	token, _ := service.RequestReset(context.Background(), "test@example.com")
	if err := service.ResetPassword(context.Background(), token, "newpassword1"); err != nil {
		t.Fatalf("first reset failed: %v", err)
	}

	err := service.ResetPassword(context.Background(), token, "anotherpass1")
	if !errors.Is(err, apperrors.ErrInvalidResetToken) {
		t.Fatalf("consumed token must not verify again, got %v", err)
	}
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	service, _, resets := passwordFixture()

	token, _ := service.RequestReset(context.Background(), "test@example.com")
	resets.tokens[token].ExpiresAt = time.Now().Add(-time.Minute)

	err := service.ResetPassword(context.Background(), token, "newpassword1")
	if !errors.Is(err, apperrors.ErrInvalidResetToken) {
		t.Fatalf("expired token must not verify, got %v", err)
	}
}

func TestResetPassword_ShortPassword(t *testing.T) {
	service, _, _ := passwordFixture()

	token, _ := service.RequestReset(context.Background(), "test@example.com")
	err := service.ResetPassword(context.Background(), token, "short")
	if apperrors.KindOf(err) != apperrors.Validation {
		t.Fatalf("expected Validation kind, got %v", err)
	}

	// The rejected attempt must not consume the token.
	if _, err := service.VerifyToken(context.Background(), token); err != nil {
		t.Fatalf("token must still verify: %v", err)
	}
}

func TestRequestReset_MultipleLiveTokens(t *testing.T) {
	service, _, _ := passwordFixture()

	first, _ := service.RequestReset(context.Background(), "test@example.com")
	second, _ := service.RequestReset(context.Background(), "test@example.com")
	if first == second {
		t.Fatal("tokens must be unique")
	}

	// Issuing a new token does not invalidate earlier ones.
	if _, err := service.VerifyToken(context.Background(), first); err != nil {
		t.Fatalf("first token must still verify: %v", err)
	}
	if _, err := service.VerifyToken(context.Background(), second); err != nil {
		t.Fatalf("second token must still verify: %v", err)
	}
}
