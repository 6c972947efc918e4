package handlers

import (
	"encoding/json"
	"net/http"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/config"
	"loanpayback/internal/logger"
	"loanpayback/internal/middleware"
	"loanpayback/internal/models"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *services.AuthService
	cfg  *config.Config
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates the account and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} helpers.Response
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "invalid payload"))
		return
	}

	user, err := h.auth.RegisterUser(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.auth.IssueToken(user, h.cfg.JWTSecret, h.cfg.AccessTTL())
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.Internal, "registration failed", err))
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", zap.String("username", user.Username), zap.Int("user_id", user.ID))
	helpers.JSON(w, http.StatusCreated, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} helpers.Response
// @Router /token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, r, apperrors.New(apperrors.Validation, "username and password required"))
		return
	}

	token, user, err := h.auth.LoginUser(r.Context(), req.Username, req.Password, h.cfg.JWTSecret, h.cfg.AccessTTL())
	if err != nil {
		writeError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Response
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates full_name/email; email uniqueness is re-checked.
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} helpers.Response
// @Router /me/update [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "invalid payload"))
		return
	}

	updated, err := h.auth.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, updated)
}
