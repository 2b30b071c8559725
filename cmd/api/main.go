package main

import (
	"log"

	"noirlabs_billing/internal/adapter/http/routes"
	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Noir Labs Billing API
// @version         1.0
// @description     Xendit invoice creation for authenticated Supabase users, plus subscriptions, waitlist, user settings, activity feed and the admin dashboard.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
