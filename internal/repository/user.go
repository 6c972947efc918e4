package repository

import (
	"context"

	"loanpayback/internal/logger"
	"loanpayback/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, full_name, hashed_password, is_active, is_admin, created_at, last_login`

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("creating user (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	query := `
	INSERT INTO users (username, email, full_name, hashed_password, is_active, is_admin)
	VALUES ($1, $2, $3, $4, TRUE, FALSE)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.FullName,
		user.HashedPassword,
	).Scan(&user.ID, &user.CreatedAt)
}

// IsUsernameTaken checks uniqueness among active users, case-sensitive as
// stored.
func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	logger.Log.Debug("checking username uniqueness (repo)", zap.String("username", username))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND is_active)`
	var exists bool
	err := r.db.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		logger.Log.Error("username check failed (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	logger.Log.Debug("checking email uniqueness (repo)", zap.String("email", email))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND is_active)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("email check failed (repo)", zap.Error(err))
	}
	return exists, err
}

// GetActiveByUsername returns the active user with that username. Inactive
// users are invisible to authentication.
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_active`
	return r.scanUser(ctx, query, username)
}

func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_active`
	return r.scanUser(ctx, query, email)
}

func (r *UserRepository) GetActiveByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_active`
	return r.scanUser(ctx, query, id)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.IsActive,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		logger.Log.Error("last_login update failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, fullName, email *string) error {
	logger.Log.Info("updating profile (repo)", zap.Int("user_id", userID))
	query := `
	UPDATE users
	SET full_name = COALESCE($2, full_name),
	    email     = COALESCE($3, email)
	WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, fullName, email)
	if err != nil {
		logger.Log.Error("profile update failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET hashed_password = $1 WHERE id = $2`, hashedPassword, userID)
	if err != nil {
		logger.Log.Error("password update failed (repo)", zap.Error(err), zap.Int("user_id", userID))
	}
	return err
}

func (r *UserRepository) SetActive(ctx context.Context, userID int, active bool) error {
	logger.Log.Info("setting is_active (repo)", zap.Int("user_id", userID), zap.Bool("active", active))
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)
	if err != nil {
		logger.Log.Error("is_active update failed (repo)", zap.Error(err), zap.Int("user_id", userID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context, includeInactive bool) ([]*models.User, error) {
	logger.Log.Debug("listing users (repo)", zap.Bool("include_inactive", includeInactive))
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active ORDER BY created_at DESC`
	if includeInactive {
		query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("user listing failed (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.FullName,
			&u.HashedPassword,
			&u.IsActive,
			&u.IsAdmin,
			&u.CreatedAt,
			&u.LastLogin,
		)
		if err != nil {
			logger.Log.Error("user scan failed (repo)", zap.Error(err))
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
