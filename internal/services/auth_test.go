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

type mockUserRepo struct {
	users    map[string]*models.User
	lastUser *models.User
	nextID   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	u, ok := m.users[username]
	return ok && u.IsActive, nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) GetActiveByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok || !u.IsActive {
		return nil, repository.ErrNoRows
	}
	return u, nil
}

func (m *mockUserRepo) GetActiveByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (m *mockUserRepo) GetActiveByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id && u.IsActive {
			return u, nil
		}
	}
	return nil, repository.ErrNoRows
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, userID int) error {
	for _, u := range m.users {
		if u.ID == userID {
			now := time.Now()
			u.LastLogin = &now
		}
	}
	return nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, userID int, fullName, email *string) error {
	for _, u := range m.users {
		if u.ID == userID {
			if fullName != nil {
				u.FullName = *fullName
			}
			if email != nil {
				u.Email = *email
			}
		}
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, userID int, hashedPassword string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.HashedPassword = hashedPassword
		}
	}
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, userID int, active bool) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.IsActive = active
			return nil
		}
	}
	return repository.ErrNoRows
}

func (m *mockUserRepo) GetAllUsers(_ context.Context, includeInactive bool) ([]*models.User, error) {
	var out []*models.User
	for _, u := range m.users {
		if includeInactive || u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
	}
}

func TestRegisterUser(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	user, err := service.RegisterUser(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.HashedPassword == "" {
		t.Fatal("password was not hashed or user was not stored")
	}
	if repo.lastUser.HashedPassword == "password123" {
		t.Fatal("password stored in plain text")
	}
	if !user.IsActive {
		t.Fatal("new user must be active")
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	service := NewAuthService(newMockUserRepo())

	cases := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"short username", func(r *models.RegisterRequest) { r.Username = "ab" }},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := registerRequest()
			tc.mutate(req)
			_, err := service.RegisterUser(context.Background(), req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if apperrors.KindOf(err) != apperrors.Validation {
				t.Fatalf("expected Validation kind, got %v", apperrors.KindOf(err))
			}
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	if _, err := service.RegisterUser(context.Background(), registerRequest()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	req := registerRequest()
	req.Email = "other@example.com"
	_, err := service.RegisterUser(context.Background(), req)
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterUser_ReusesDeactivatedUsername(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	first, err := service.RegisterUser(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := service.SetUserActive(context.Background(), 99, first.ID, false); err != nil {
		t.Fatalf("deactivation failed: %v", err)
	}

	// Uniqueness is scoped to active accounts; a deactivated account's
	// username and email are free again.
	second, err := service.RegisterUser(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("re-registration after deactivation failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected a fresh account")
	}
}

func TestLoginUser_Success(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.users["testuser"] = &models.User{
		ID:             1,
		Username:       "testuser",
		HashedPassword: utils.HashPassword("password123"),
		IsActive:       true,
	}

	token, user, err := service.LoginUser(context.Background(), "testuser", "password123", "secret", time.Hour)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if user.LastLogin == nil {
		t.Fatal("last_login was not updated")
	}

	claims, err := utils.ParseToken("secret", token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if int(claims["user_id"].(float64)) != 1 {
		t.Fatal("token carries wrong user_id")
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.users["testuser"] = &models.User{
		ID:             1,
		Username:       "testuser",
		HashedPassword: utils.HashPassword("password123"),
		IsActive:       true,
	}

	_, _, wrongPass := service.LoginUser(context.Background(), "testuser", "nope", "secret", time.Hour)
	_, _, noUser := service.LoginUser(context.Background(), "ghost", "nope", "secret", time.Hour)

	// Both failures must be indistinguishable to the caller.
	if !errors.Is(wrongPass, apperrors.ErrInvalidCredentials) || !errors.Is(noUser, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected uniform ErrInvalidCredentials, got %v / %v", wrongPass, noUser)
	}
}

func TestLoginUser_Deactivated(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.users["testuser"] = &models.User{
		ID:             1,
		Username:       "testuser",
		HashedPassword: utils.HashPassword("password123"),
		IsActive:       false,
	}

	_, _, err := service.LoginUser(context.Background(), "testuser", "password123", "secret", time.Hour)
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("deactivated user must not log in, got %v", err)
	}
}

func TestSetUserActive_SelfDeactivation(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.users["admin"] = &models.User{ID: 7, Username: "admin", IsActive: true, IsAdmin: true}

	err := service.SetUserActive(context.Background(), 7, 7, false)
	if err == nil {
		t.Fatal("expected self-deactivation to be rejected")
	}
	if apperrors.KindOf(err) != apperrors.Validation {
		t.Fatalf("expected Validation kind, got %v", apperrors.KindOf(err))
	}

	// Deactivating someone else works.
	repo.users["other"] = &models.User{ID: 8, Username: "other", IsActive: true}
	if err := service.SetUserActive(context.Background(), 7, 8, false); err != nil {
		t.Fatalf("deactivation failed: %v", err)
	}
	if repo.users["other"].IsActive {
		t.Fatal("user is still active")
	}
}

func TestSetUserActive_UnknownUser(t *testing.T) {
	service := NewAuthService(newMockUserRepo())

	err := service.SetUserActive(context.Background(), 1, 99, true)
	if apperrors.KindOf(err) != apperrors.NotFound {
		t.Fatalf("expected NotFound kind, got %v", err)
	}
}
