// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"fmt"
	"time"

	customerapp "github.com/healthyplate/v1/internal/application/customer"
	inventoryapp "github.com/healthyplate/v1/internal/application/inventory"
	kitchenapp "github.com/healthyplate/v1/internal/application/kitchen"
	mealapp "github.com/healthyplate/v1/internal/application/meal"
	orderapp "github.com/healthyplate/v1/internal/application/order"
	purchasingapp "github.com/healthyplate/v1/internal/application/purchasing"
	recommendationapp "github.com/healthyplate/v1/internal/application/recommendation"
	"github.com/healthyplate/v1/internal/infrastructure/config"
	"github.com/healthyplate/v1/internal/infrastructure/http/handlers"
	"github.com/healthyplate/v1/internal/infrastructure/http/server"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/healthyplate/v1/internal/infrastructure/persistence/gorm"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/sqlite"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"github.com/healthyplate/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RepositoryModule,
	ServiceModule,
	MonitoringModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the SQLite connection through GORM
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		dbPath := cfg.Database.Path
		if cfg.Catalog.InMemory {
			dbPath = ":memory:"
		}

		db, err := sqlite.SetupDatabase(dbPath, gormLogLevel(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.Seed {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", dbPath),
			zap.Bool("in_memory", dbPath == ":memory:"),
		)

		return db, nil
	},
)

func gormLogLevel(cfg *config.Config) gormLogger.LogLevel {
	if cfg.App.Debug {
		return gormLogger.Info
	}
	switch cfg.Database.LogLevel {
	case "info":
		return gormLogger.Info
	case "warn":
		return gormLogger.Warn
	case "error":
		return gormLogger.Error
	default:
		return gormLogger.Silent
	}
}

// RepositoryModule provides repository implementations. The in-memory
// adapters take over when catalog.in_memory is set.
var RepositoryModule = fx.Provide(
	func(cfg *config.Config, db *gorm.DB) outbound.IngredientRepository {
		if cfg.Catalog.InMemory {
			return memory.NewIngredientRepository()
		}
		return gormRepo.NewIngredientRepository(db)
	},
	func(cfg *config.Config, db *gorm.DB) outbound.CustomerRepository {
		if cfg.Catalog.InMemory {
			return memory.NewCustomerRepository()
		}
		return gormRepo.NewCustomerRepository(db)
	},
	func(cfg *config.Config, db *gorm.DB) outbound.RecipeRepository {
		if cfg.Catalog.InMemory {
			return memory.NewRecipeRepository()
		}
		return gormRepo.NewRecipeRepository(db)
	},
	func(cfg *config.Config, db *gorm.DB) outbound.ChefRepository {
		if cfg.Catalog.InMemory {
			return memory.NewChefRepository()
		}
		return gormRepo.NewChefRepository(db)
	},
	func(cfg *config.Config, db *gorm.DB) outbound.OrderRepository {
		if cfg.Catalog.InMemory {
			return memory.NewOrderRepository()
		}
		return gormRepo.NewOrderRepository(db)
	},
	func(cfg *config.Config, db *gorm.DB) outbound.SupplierRepository {
		if cfg.Catalog.InMemory {
			return memory.NewSupplierRepository()
		}
		return gormRepo.NewSupplierRepository(db)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	mealapp.NewMealService,
	recommendationapp.NewRecommendationService,
	customerapp.NewCustomerService,
	inventoryapp.NewInventoryService,
	kitchenapp.NewKitchenService,
	orderapp.NewOrderService,
	purchasingapp.NewPurchasingService,
)

// MonitoringModule provides the Prometheus metrics collector
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewMealHandlers,
	handlers.NewRecommendationHandlers,
	handlers.NewCustomerHandlers,
	handlers.NewInventoryHandlers,
	handlers.NewKitchenHandlers,
	handlers.NewOrderHandlers,
	handlers.NewPurchasingHandlers,
	func(
		meal *handlers.MealHandlers,
		recommendation *handlers.RecommendationHandlers,
		customer *handlers.CustomerHandlers,
		inventory *handlers.InventoryHandlers,
		kitchen *handlers.KitchenHandlers,
		order *handlers.OrderHandlers,
		purchasing *handlers.PurchasingHandlers,
	) server.Handlers {
		return server.Handlers{
			Meal:           meal,
			Recommendation: recommendation,
			Customer:       customer,
			Inventory:      inventory,
			Kitchen:        kitchen,
			Order:          order,
			Purchasing:     purchasing,
		}
	},
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
	metrics *monitoring.MetricsCollector,
	purchasing inbound.PurchasingService,
) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting HealthyPlate application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			if cfg.Monitoring.EnableMetrics {
				go metrics.StartUptimeCounter(runCtx)
			}

			if cfg.Purchasing.AutoOrdersEnabled {
				go runAutoOrderLoop(runCtx, cfg.Purchasing.CheckInterval, purchasing, metrics, log)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HealthyPlate application")
			cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}

// runAutoOrderLoop periodically scans inventory and raises purchase
// orders for anything below its reorder level.
func runAutoOrderLoop(
	ctx context.Context,
	interval time.Duration,
	purchasing inbound.PurchasingService,
	metrics *monitoring.MetricsCollector,
	log *zap.Logger,
) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			notifications, err := purchasing.CheckAndGenerateAutoOrders(ctx)
			if err != nil {
				log.Error("Auto purchase order check failed", zap.Error(err))
				continue
			}
			for _, n := range notifications {
				metrics.PurchaseOrderGenerated(true)
				log.Info("Auto purchase order raised", zap.String("notification", n))
			}
		}
	}
}
