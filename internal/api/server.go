package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"recommender/internal/api/handlers"
	"recommender/internal/api/middleware"
	"recommender/internal/config"
	"recommender/internal/database"
	"recommender/internal/events"
	"recommender/internal/logger"
	"recommender/internal/repository"
	"recommender/internal/services/ecwid"
	"recommender/internal/services/recommendation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, publisher *events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Repositories
	storeRepo := repository.NewStoreRepository(db.DB)
	productRepo := repository.NewProductRepository(db.DB)
	orderRepo := repository.NewOrderRepository(db.DB)
	categoryRepo := repository.NewCategoryRepository(db.DB)

	// Services
	syncService := ecwid.NewSyncService(cfg, productRepo, orderRepo, logger)
	engine := recommendation.NewEngine(productRepo, orderRepo, productRepo, logger)
	categoryEngine := recommendation.NewCategoryEngine(productRepo, orderRepo, categoryRepo, logger)

	// Handlers
	oauthHandler := handlers.NewOAuthHandler(storeRepo, publisher, logger, cfg)
	storeHandler := handlers.NewStoreHandler(storeRepo, syncService, publisher, logger)
	productHandler := handlers.NewProductHandler(productRepo, logger)
	recommendationHandler := handlers.NewRecommendationHandler(engine, categoryEngine, productRepo, categoryRepo, logger)

	// Routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// OAuth
		oauth := v1.Group("/oauth")
		{
			oauth.POST("/install", oauthHandler.Install)
			oauth.GET("/callback", oauthHandler.Callback)
		}

		// Stores
		stores := v1.Group("/stores")
		{
			stores.GET("", storeHandler.List)
			stores.GET("/:storeId", storeHandler.Get)
			stores.DELETE("/:storeId", storeHandler.Delete)
			stores.POST("/:storeId/sync", storeHandler.Sync)

			// Products
			stores.GET("/:storeId/products", productHandler.List)
			stores.GET("/:storeId/products/:productId", productHandler.Get)

			// Recommendations
			stores.POST("/:storeId/recommendations/generate-all", recommendationHandler.GenerateAll)
			stores.POST("/:storeId/recommendations/categories/generate-all", recommendationHandler.GenerateAllCategories)
			stores.POST("/:storeId/products/:productId/recommendations", recommendationHandler.GenerateOne)
			stores.GET("/:storeId/products/:productId/recommendations", recommendationHandler.GetProduct)
			stores.GET("/:storeId/categories/:categoryId/recommendations", recommendationHandler.GetCategory)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the Gin router, used by tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
