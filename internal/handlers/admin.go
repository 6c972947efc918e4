package handlers

import (
	"net/http"
	"strconv"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	"loanpayback/internal/middleware"
	"loanpayback/internal/services"
	helpers "loanpayback/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AdminHandler struct {
	auth  *services.AuthService
	stats *services.StatsService
}

func NewAdminHandler(auth *services.AuthService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{auth: auth, stats: stats}
}

// ListUsers godoc
// @Summary List users
// @Description Active users by default; pass include_inactive=true for all.
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param include_inactive query bool false "Include deactivated accounts"
// @Success 200 {array} models.User
// @Failure 403 {object} helpers.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	users, err := h.auth.ListUsers(r.Context(), includeInactive)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, users)
}

// ActivateUser godoc
// @Summary Activate a user account
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/users/{id}/activate [post]
func (h *AdminHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// DeactivateUser godoc
// @Summary Deactivate a user account
// @Description Admins cannot deactivate their own account.
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/users/{id}/deactivate [post]
func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *AdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apperrors.New(apperrors.Unauthenticated, "unauthorized"))
		return
	}

	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, apperrors.New(apperrors.Validation, "invalid user id"))
		return
	}

	if err := h.auth.SetUserActive(r.Context(), actor.ID, userID, active); err != nil {
		writeError(w, r, err)
		return
	}

	msg := "User deactivated"
	if active {
		msg = "User activated"
	}
	logger.WithCtx(r.Context()).Info("user status changed",
		zap.Int("target_user_id", userID),
		zap.Bool("active", active))
	helpers.JSON(w, http.StatusOK, map[string]string{"message": msg})
}

// AllStatistics godoc
// @Summary Per-user aggregated metrics for all users
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.UserStatistics
// @Failure 403 {object} helpers.Response
// @Router /admin/statistics [get]
func (h *AdminHandler) AllStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.AllUserStatistics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}
