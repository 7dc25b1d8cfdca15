package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/joho/godotenv"
	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/handler"
	"github.com/sozhane/backend/internal/pkg/database"
	"github.com/sozhane/backend/internal/pkg/stripeapi"
	"github.com/sozhane/backend/internal/repository"
	"github.com/sozhane/backend/internal/router"
	"github.com/sozhane/backend/internal/service"
	"github.com/sozhane/backend/internal/service/refine"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	// optional .env for local development
	godotenv.Load()

	cfg := config.GetConfig()

	if cfg.Database.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := service.InitDefaultTemplates(db); err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	contractRepo := repository.NewContractRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	stripeClient := stripeapi.NewClient(&cfg.Stripe)

	refineService := refine.NewService(cfg)
	templateService := service.NewTemplateService(templateRepo)
	contractService := service.NewContractService(contractRepo, templateRepo, refineService)
	paymentService := service.NewPaymentService(cfg, stripeClient, userRepo, paymentRepo)

	authHandler := handler.NewAuthHandler(cfg, userRepo)
	templateHandler := handler.NewTemplateHandler(templateService)
	contractHandler := handler.NewContractHandler(contractService)
	generateHandler := handler.NewGenerateHandler(contractService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	healthHandler := handler.NewHealthHandler(db)

	r := router.Setup(cfg, userRepo, authHandler, templateHandler, contractHandler, generateHandler, paymentHandler, healthHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
