package main

import (
	"log"

	_ "taskman/docs"
	"taskman/internal/config"
	"taskman/internal/logger"
	"taskman/internal/server"
)

// @title           Task Management API
// @version         1.0
// @description     API for managing projects, tasks, users and performance reports.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey UserIdHeader
// @in header
// @name X-User-Id
// @description External id (UUID) of the acting user.

// @schemes http
func main() {
	cfg := config.Load()
	appLogger := logger.New(cfg.LogLevel)

	s, err := server.Init(cfg, appLogger)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
