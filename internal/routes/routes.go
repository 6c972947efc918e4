package routes

import (
	"loanpayback/internal/handlers"
	"loanpayback/internal/middleware"
	"loanpayback/internal/repository"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	users *repository.UserRepository,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	predictHandler *handlers.PredictHandler,
	historyHandler *handlers.HistoryHandler,
	statsHandler *handlers.StatsHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// Public routes
	router.HandleFunc("/", healthHandler.Index).Methods("GET")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/token", authHandler.Login).Methods("POST")
	router.HandleFunc("/forgot-password", passwordHandler.ForgotPassword).Methods("POST")
	router.HandleFunc("/reset-password", passwordHandler.ResetPassword).Methods("POST")

	// JWT-protected routes
	protected := router.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret, users))

	protected.HandleFunc("/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/me/update", authHandler.UpdateProfile).Methods("PUT")

	protected.HandleFunc("/predict", predictHandler.Predict).Methods("POST")
	protected.HandleFunc("/predict/batch", predictHandler.PredictBatch).Methods("POST")

	protected.HandleFunc("/history/predictions", historyHandler.Predictions).Methods("GET")
	protected.HandleFunc("/history/batch", historyHandler.Batches).Methods("GET")
	protected.HandleFunc("/history/batch/{id:[0-9]+}", historyHandler.BatchDetails).Methods("GET")

	protected.HandleFunc("/statistics", statsHandler.Overview).Methods("GET")
	protected.HandleFunc("/statistics/user", statsHandler.UserStatistics).Methods("GET")
	protected.HandleFunc("/statistics/credit-score", statsHandler.CreditScoreAnalysis).Methods("GET")
	protected.HandleFunc("/statistics/recent", statsHandler.Recent).Methods("GET")

	// Admin-only routes
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}/activate", adminHandler.ActivateUser).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}/deactivate", adminHandler.DeactivateUser).Methods("POST")
	admin.HandleFunc("/statistics", adminHandler.AllStatistics).Methods("GET")
}
