package handlers

import (
	"encoding/json"
	"net/http"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/models"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	passwords *services.PasswordService
}

func NewPasswordHandler(passwords *services.PasswordService) *PasswordHandler {
	return &PasswordHandler{passwords: passwords}
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Always answers success-shaped so email existence cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} helpers.Response
// @Router /forgot-password [post]
func (h *PasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, r, apperrors.New(apperrors.Validation, "email required"))
		return
	}

	token, err := h.passwords.RequestReset(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := map[string]string{
		"message": "If the email exists, a reset token has been issued",
	}
	// No mail delivery is wired up, so a freshly issued token rides back in
	// the response body. Unknown emails get the same message without a token.
	if token != "" {
		resp["reset_token"] = token
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Reset a password
// @Description Consumes a single-use reset token and stores the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /reset-password [post]
func (h *PasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, r, apperrors.New(apperrors.Validation, "token and new_password required"))
		return
	}

	if err := h.passwords.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("password reset completed", zap.String("handler", "ResetPassword"))
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Password has been reset"})
}
