package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/server"
)

// @title Clubhouse API
// @version 1.0
// @description Membership subscription engine for youth sports clubs
// @BasePath /api/v1
func main() {
	server.InitializeHandlers()
	defer func() {
		_ = logger.Sync()
	}()

	router := server.NewRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting API server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
