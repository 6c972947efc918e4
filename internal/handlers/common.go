package handlers

import (
	"net/http"

	"loanpayback/internal/apperrors"
	"loanpayback/internal/logger"
	helpers "loanpayback/internal/utils/helpers"

	"go.uber.org/zap"
)

// writeError maps a service error onto the taxonomy's status and client-safe
// message. The underlying cause is logged, never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.Status(err)
	log := logger.WithCtx(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Warn("request rejected", zap.String("reason", apperrors.Message(err)))
	}
	helpers.Error(w, status, apperrors.Message(err))
}
