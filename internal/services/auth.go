package services

import (
	"context"
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

type AuthService struct {
	repo UserRepo
}

func NewAuthService(repo UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	GetActiveByID(ctx context.Context, id int) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int) error
	UpdateProfile(ctx context.Context, userID int, fullName, email *string) error
	UpdatePassword(ctx context.Context, userID int, hashedPassword string) error
	SetActive(ctx context.Context, userID int, active bool) error
	GetAllUsers(ctx context.Context, includeInactive bool) ([]*models.User, error)
}

// RegisterUser validates the request, checks uniqueness among active users
// and stores the password digest.
func (s *AuthService) RegisterUser(ctx context.Context, input *models.RegisterRequest) (*models.User, error) {
	logger.Log.Info("registering user (service)", zap.String("username", input.Username), zap.String("email", input.Email))

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if taken, err := s.repo.IsUsernameTaken(ctx, input.Username); err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "registration failed", err)
	} else if taken {
		return nil, apperrors.ErrUsernameTaken
	}
	if taken, err := s.repo.IsEmailTaken(ctx, input.Email); err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "registration failed", err)
	} else if taken {
		return nil, apperrors.ErrEmailTaken
	}

	user := &models.User{
		Username:       input.Username,
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: utils.HashPassword(input.Password),
		IsActive:       true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Log.Error("user insert failed (service)", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.Unavailable, "registration failed", err)
	}

	logger.Log.Info("user registered (service)", zap.String("username", user.Username), zap.Int("user_id", user.ID))
	return user, nil
}

func validateRegistration(input *models.RegisterRequest) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)

	if len(input.Username) < 3 {
		return apperrors.New(apperrors.Validation, "username must be at least 3 characters")
	}
	at := strings.Index(input.Email, "@")
	if at < 1 || !strings.Contains(input.Email[at:], ".") {
		return apperrors.New(apperrors.Validation, "valid email is required")
	}
	if len(input.Password) < 8 {
		return apperrors.New(apperrors.Validation, "password must be at least 8 characters")
	}
	if len(input.FullName) > 100 {
		return apperrors.New(apperrors.Validation, "full name is too long")
	}
	return nil
}

// VerifyPassword reports whether the active user's stored digest matches.
// Absent users yield false, never an error.
func (s *AuthService) VerifyPassword(ctx context.Context, username, password string) bool {
	user, err := s.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		return false
	}
	return utils.CheckPasswordHash(password, user.HashedPassword)
}

// LoginUser verifies credentials and issues a session token. The failure
// does not reveal whether the username exists.
func (s *AuthService) LoginUser(ctx context.Context, username, password, jwtSecret string, ttl time.Duration) (string, *models.User, error) {
	logger.Log.Info("login attempt (service)", zap.String("username", username))

	user, err := s.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNoRows) {
			logger.Log.Error("user lookup failed (service)", zap.Error(err))
		}
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		logger.Log.Warn("wrong password (service)", zap.String("username", username))
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warn("last_login update failed (service)", zap.Error(err), zap.Int("user_id", user.ID))
	}

	token, err := utils.GenerateToken(jwtSecret, user.ID, user.Username, ttl)
	if err != nil {
		logger.Log.Error("token generation failed (service)", zap.Error(err))
		return "", nil, apperrors.Wrap(apperrors.Internal, "login failed", err)
	}

	logger.Log.Info("login ok (service)", zap.String("username", username), zap.Int("user_id", user.ID))
	return token, user, nil
}

// IssueToken signs a session token for an already-authenticated user
// (registration returns one immediately).
func (s *AuthService) IssueToken(user *models.User, jwtSecret string, ttl time.Duration) (string, error) {
	return utils.GenerateToken(jwtSecret, user.ID, user.Username, ttl)
}

func (s *AuthService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.Unavailable, "user lookup failed", err)
	}
	return user, nil
}

// UpdateProfile changes full_name/email; a changed email is re-checked for
// uniqueness among active users.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, input *models.UpdateProfileRequest) (*models.User, error) {
	logger.Log.Info("updating profile (service)", zap.Int("user_id", user.ID))

	if input.Email != nil && *input.Email != user.Email {
		at := strings.Index(*input.Email, "@")
		if at < 1 || !strings.Contains((*input.Email)[at:], ".") {
			return nil, apperrors.New(apperrors.Validation, "valid email is required")
		}
		if taken, err := s.repo.IsEmailTaken(ctx, *input.Email); err != nil {
			return nil, apperrors.Wrap(apperrors.Unavailable, "profile update failed", err)
		} else if taken {
			return nil, apperrors.ErrEmailTaken
		}
	}

	if err := s.repo.UpdateProfile(ctx, user.ID, input.FullName, input.Email); err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "profile update failed", err)
	}
	return s.GetUserByID(ctx, user.ID)
}

func (s *AuthService) ListUsers(ctx context.Context, includeInactive bool) ([]*models.User, error) {
	users, err := s.repo.GetAllUsers(ctx, includeInactive)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Unavailable, "user listing failed", err)
	}
	return users, nil
}

// SetUserActive activates or deactivates a user. Admins cannot deactivate
// themselves; the caller enforces that with actorID.
func (s *AuthService) SetUserActive(ctx context.Context, actorID, userID int, active bool) error {
	if !active && actorID == userID {
		return apperrors.New(apperrors.Validation, "cannot deactivate your own account")
	}
	if err := s.repo.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return apperrors.New(apperrors.NotFound, "user not found")
		}
		return apperrors.Wrap(apperrors.Unavailable, "user update failed", err)
	}
	logger.Log.Info("user active flag changed (service)", zap.Int("user_id", userID), zap.Bool("active", active), zap.Int("actor_id", actorID))
	return nil
}
