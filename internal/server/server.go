package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskman/internal/config"
	"taskman/internal/handler"
	"taskman/internal/middleware"
	"taskman/internal/repository"
	"taskman/internal/service"
	"taskman/migrations"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger
}

func Init(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	logger.Info().Msg("connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying DB: %w", err)
	}
	if err := runMigrations(sqlDB, cfg.DBName); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info().Msg("migrations applied")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	projectService := service.NewProjectService(logger, projectRepo, taskRepo, userRepo)
	taskService := service.NewTaskService(logger, projectRepo, taskRepo, historyRepo, userRepo)
	reportService := service.NewReportService(logger, taskRepo, userRepo)

	// Initialize handlers
	infoHandler := handler.NewInfoHandler()
	userHandler := handler.NewUserHandler(userRepo)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	reportHandler := handler.NewReportHandler(reportService)

	r := gin.Default()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/info", infoHandler.Get)

		// User routes
		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.GetAll)
		api.GET("/users/:userId", userHandler.GetByID)
		api.PUT("/users/:userId", userHandler.Update)

		// Read routes
		api.GET("/projects", projectHandler.GetAll)
		api.GET("/projects/:projectId", projectHandler.GetByID)
		api.GET("/projects/:projectId/tasks", taskHandler.GetByProjectID)
		api.GET("/tasks/:taskId", taskHandler.GetByID)
		api.GET("/tasks/:taskId/history", taskHandler.GetHistory)
		api.PUT("/projects/:projectId", projectHandler.Update)
		api.DELETE("/projects/:projectId", projectHandler.Delete)
		api.DELETE("/tasks/:taskId", taskHandler.Delete)

		// Routes that record authorship require the X-User-Id header
		identified := api.Group("/")
		identified.Use(middleware.RequireIdentity())
		{
			identified.POST("/projects", projectHandler.Create)
			identified.POST("/projects/:projectId/tasks", taskHandler.Create)
			identified.PUT("/tasks/:taskId", taskHandler.Update)
			identified.PUT("/tasks/:taskId/status", taskHandler.UpdateStatus)
			identified.POST("/tasks/:taskId/comments", taskHandler.AddComment)
			identified.GET("/reports/performance", reportHandler.GetPerformance)
		}
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

func runMigrations(sqlDB *sql.DB, dbName string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{DatabaseName: dbName})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Logger.Info().Str("port", s.Config.ServerPort).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("failed to listen")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	s.Logger.Info().Msg("server exited properly")
}
