package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hanbit/shopfront-backend/config"
	"github.com/hanbit/shopfront-backend/internal/app/controller"
	"github.com/hanbit/shopfront-backend/internal/app/repository"
	"github.com/hanbit/shopfront-backend/internal/app/service"
	"github.com/hanbit/shopfront-backend/internal/render"
	"github.com/hanbit/shopfront-backend/internal/router"
	"github.com/hanbit/shopfront-backend/internal/scheduler"
	"github.com/hanbit/shopfront-backend/internal/tenant"
	"github.com/hanbit/shopfront-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Shopfront Backend Server", map[string]interface{}{
		"environment":     cfg.Server.Environment,
		"port":            cfg.Server.Port,
		"platform_domain": cfg.Platform.Domain,
		"data_file":       cfg.Storage.DataFile,
	})

	// Initialize the store document; a failure here is fatal since the
	// server cannot serve anything without its datastore.
	storeRepo := repository.NewFileStoreRepository(cfg.Storage.DataFile)
	if err := storeRepo.Init(); err != nil {
		logger.Fatal("Failed to initialize store", err)
	}

	// Initialize services
	shopService := service.NewShopService(storeRepo, cfg)

	// Startup health check: repair any counter drift before serving.
	if _, err := shopService.ReconcileStats(); err != nil {
		logger.Fatal("Failed startup stats reconciliation", err)
	}

	// Initialize controllers
	resolver := tenant.NewResolver(cfg.Platform.PlatformName())
	renderer := render.NewRenderer(render.Options{
		MainSiteURL: cfg.MainSiteURL(),
		ShopURL:     cfg.ShopURL,
	})
	shopController := controller.NewShopController(shopService)
	pageController := controller.NewPageController(shopService, resolver, renderer)

	// Start the reconciliation scheduler
	reconcileScheduler := scheduler.NewReconcileScheduler(shopService)
	if err := reconcileScheduler.Start(); err != nil {
		logger.Error("Failed to start reconciliation scheduler", err)
	}
	defer reconcileScheduler.Stop()

	// Setup router
	r := router.NewRouter(shopController, pageController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
