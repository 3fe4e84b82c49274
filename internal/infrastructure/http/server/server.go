// Package server assembles the Gin HTTP server for the JSON API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/infrastructure/config"
	"github.com/healthyplate/v1/internal/infrastructure/http/handlers"
	"github.com/healthyplate/v1/internal/infrastructure/http/middleware"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// Server wraps the HTTP listener and its routes.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *zap.Logger
}

// Handlers groups every handler set the router mounts.
type Handlers struct {
	Meal           *handlers.MealHandlers
	Recommendation *handlers.RecommendationHandlers
	Customer       *handlers.CustomerHandlers
	Inventory      *handlers.InventoryHandlers
	Kitchen        *handlers.KitchenHandlers
	Order          *handlers.OrderHandlers
	Purchasing     *handlers.PurchasingHandlers
}

// NewServer builds the configured server with all routes mounted.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *monitoring.MetricsCollector,
	h Handlers,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.Recovery(logger))
	if cfg.Monitoring.EnableMetrics {
		engine.Use(metrics.HTTPMiddleware())
	}

	s := &Server{
		engine: engine,
		config: cfg,
		logger: logger.Named("http-server"),
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}

	s.mountRoutes(metrics, h)
	return s
}

func (s *Server) mountRoutes(metrics *monitoring.MetricsCollector, h Handlers) {
	s.engine.GET(s.config.Monitoring.HealthCheckPath, s.handleHealth)
	if s.config.Monitoring.EnableMetrics {
		s.engine.GET(s.config.Monitoring.MetricsPath, gin.WrapH(metrics.Handler()))
	}

	api := s.engine.Group("/api/v1")

	meals := api.Group("/meals")
	meals.POST("/compose", h.Meal.ComposeMeal)
	meals.GET("/alternatives/:name", h.Meal.SuggestAlternatives)

	api.POST("/recommendations", h.Recommendation.Recommend)

	customers := api.Group("/customers")
	customers.POST("", h.Customer.Register)
	customers.GET("/:email", h.Customer.DietaryInfo)
	customers.POST("/:email/preferences", h.Customer.AddPreference)
	customers.POST("/:email/allergies", h.Customer.AddAllergy)

	inventory := api.Group("/inventory")
	inventory.GET("", h.Inventory.List)
	inventory.GET("/restock", h.Inventory.NeedingRestock)
	inventory.POST("/use", h.Inventory.Use)
	inventory.GET("/:name", h.Inventory.Get)
	inventory.PUT("/:name/stock", h.Inventory.SetStock)
	inventory.PUT("/:name/reorder-level", h.Inventory.SetReorderLevel)

	kitchen := api.Group("/kitchen")
	kitchen.POST("/tasks", h.Kitchen.AssignTask)
	kitchen.GET("/chefs/:name", h.Kitchen.ChefDetails)
	kitchen.GET("/chefs/:name/tasks", h.Kitchen.ChefTasks)

	orders := api.Group("/orders")
	orders.GET("", h.Order.PastOrders)
	orders.GET("/completed", h.Order.CompletedOrders)
	orders.GET("/revenue", h.Order.Revenue)
	orders.GET("/deliveries", h.Order.ScheduledForDelivery)
	orders.GET("/:id", h.Order.OrderDetails)
	orders.POST("/:id/invoice", h.Order.GenerateInvoice)

	purchasing := api.Group("/purchasing")
	purchasing.GET("/price", h.Purchasing.RealTimePrice)
	purchasing.POST("/orders", h.Purchasing.GenerateManualOrder)
	purchasing.POST("/auto-check", h.Purchasing.RunAutoOrderCheck)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"app":       s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Start begins serving. It blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
