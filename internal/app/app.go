package app

import (
	"loanpayback/internal/config"
	"loanpayback/internal/db"
	"loanpayback/internal/handlers"
	"loanpayback/internal/logger"
	"loanpayback/internal/ml"
	"loanpayback/internal/repository"
	"loanpayback/internal/routes"
	"loanpayback/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Scoring artifacts load once at startup. A load failure is not fatal:
	// the API serves auth/history/statistics and fails /predict requests
	// with a stable error until artifacts are fixed and the process restarts.
	engine, err := ml.Load(cfg.ModelDir)
	if err != nil {
		logger.Log.Error("scoring artifacts failed to load, predictions disabled",
			zap.String("model_dir", cfg.ModelDir),
			zap.Error(err))
		engine = nil
	} else {
		logger.Log.Info("scoring artifacts loaded",
			zap.String("model_dir", cfg.ModelDir),
			zap.Int("feature_count", engine.FeatureCount()))
	}

	// Repositories
	userRepo := repository.NewUserRepository(conn)
	resetRepo := repository.NewPasswordResetRepository(conn)
	predictionRepo := repository.NewPredictionRepository(conn)

	// Services
	authService := services.NewAuthService(userRepo)
	passwordService := services.NewPasswordService(resetRepo, userRepo)
	predictionService := services.NewPredictionService(engine, predictionRepo)
	batchService := services.NewBatchService(predictionService, predictionRepo)
	statsService := services.NewStatsService(predictionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	passwordHandler := handlers.NewPasswordHandler(passwordService)
	predictHandler := handlers.NewPredictHandler(predictionService, batchService)
	historyHandler := handlers.NewHistoryHandler(predictionService)
	statsHandler := handlers.NewStatsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(authService, statsService)
	healthHandler := handlers.NewHealthHandler(conn, predictionService)

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret, userRepo,
		authHandler, passwordHandler, predictHandler,
		historyHandler, statsHandler, adminHandler, healthHandler)

	return router, nil
}
