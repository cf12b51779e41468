package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/config"
	"github.com/MarvMa/arpas-backend/internal/database"
	"github.com/MarvMa/arpas-backend/internal/handlers"
	"github.com/MarvMa/arpas-backend/internal/logger"
	"github.com/MarvMa/arpas-backend/internal/middlewares"
	"github.com/MarvMa/arpas-backend/internal/repositories"
	"github.com/MarvMa/arpas-backend/internal/routes"
	"github.com/MarvMa/arpas-backend/internal/services"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// Tests drive this directly against their own pool.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	instanceRepo := repositories.NewInstanceRepository(pool)

	projectService := services.NewProjectService(projectRepo)
	itemService := services.NewItemService(itemRepo)
	instanceService := services.NewInstanceService(instanceRepo, projectRepo, itemRepo)

	projectHandler := handlers.NewProjectHandler(projectService, instanceService)
	itemHandler := handlers.NewItemHandler(itemService)
	instanceHandler := handlers.NewInstanceHandler(instanceService)

	routes.RegisterRoutes(router, projectHandler, itemHandler, instanceHandler)

	return router
}

// NewServer loads the configuration, prepares the database and returns an
// HTTP server ready for ListenAndServe. Startup failures are fatal: the
// process has nothing useful to do without its database.
func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Init(cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.EnsureDatabaseExists(cfg); err != nil {
		logger.Fatal("failed to ensure database exists", "error", err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	router := NewRouter(cfg, pool)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	server.RegisterOnShutdown(pool.Close)

	return server
}
