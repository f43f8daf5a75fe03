package bootstrap

import (
	"context"
	"log"

	"harvestguard-be/internal/config"
	"harvestguard-be/internal/constant"
	"harvestguard-be/internal/controller"
	"harvestguard-be/internal/pkg/logger"
	"harvestguard-be/internal/repository/contract"
	"harvestguard-be/internal/repository/implementation"
	"harvestguard-be/internal/repository/memory"
	"harvestguard-be/internal/service"
	"harvestguard-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WizardController    controller.IWizardController
	LocationController  controller.ILocationController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	DashboardNotifier service.IDashboardNotifierService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Redis backs the selection store and the hub's cross-instance pub/sub.
	// Without it the app degrades to in-process storage.
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory selection store", err)
		rdb = nil
	}

	var selectionRepo contract.SelectionRepository
	if rdb != nil {
		selectionRepo = implementation.NewSelectionRepository(rdb)
	} else {
		selectionRepo = memory.NewSelectionRepository()
	}

	// Product catalog: database-backed when a DSN is configured, otherwise
	// the built-in table serves directly.
	var productRepo contract.ProductRepository
	if db != nil {
		if err := implementation.MigrateAndSeed(db, constant.ProductCatalog); err != nil {
			log.Printf("[WARN] Failed to migrate product catalog: %v. Using built-in catalog", err)
			productRepo = memory.NewProductRepository(constant.ProductCatalog)
		} else {
			productRepo = implementation.NewProductRepository(db)
		}
	} else {
		productRepo = memory.NewProductRepository(constant.ProductCatalog)
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(constant.TopicSeriousRisk, pubSub)

	wizardService := service.NewWizardService(selectionRepo, cfg.Defaults)
	locationService := service.NewLocationService(cfg.Services.NominatimBaseURL, selectionRepo, sysLogger)
	riskService := service.NewRiskService(cfg.Services.RiskAPIBaseURL, wizardService, publisherService, sysLogger)
	recommendationService := service.NewRecommendationService(cfg.Services.RiskAPIBaseURL, wizardService, productRepo, sysLogger)
	trackerService := service.NewTrackerService(wizardService)

	dashboardNotifier := service.NewDashboardNotifierService(
		pubSub,
		constant.TopicSeriousRisk,
		selectionRepo,
		wsHub,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		WizardController:    controller.NewWizardController(wizardService),
		LocationController:  controller.NewLocationController(locationService),
		DashboardController: controller.NewDashboardController(riskService, recommendationService, trackerService),

		DashboardNotifier: dashboardNotifier,
		WebSocketHub:      wsHub,
		Logger:            sysLogger,
	}
}
