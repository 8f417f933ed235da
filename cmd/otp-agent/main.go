// otp-agent - Local HTTP agent serving one-time passwords
//
// Serves the current TOTP code for the persisted key store over a localhost
// HTTP endpoint, for scripts and tooling that cannot shell out to ft-otp.

package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/84adam/ft-otp/config"
	"github.com/84adam/ft-otp/handlers"
	"github.com/84adam/ft-otp/logging"
	"github.com/84adam/ft-otp/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.ErrorLogger.Fatalf("Configuration error: %v", err)
	}

	loggingConfig := &logging.LogConfig{
		LogDir:     cfg.Logging.Directory,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		LogLevel:   logging.INFO,
	}
	if err := logging.InitLogging(loggingConfig); err != nil {
		logging.ErrorLogger.Fatalf("Failed to initialize logging: %v", err)
	}

	store := storage.NewKeyStore(cfg.KeyFile)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	handlers.NewOTPHandler(store).RegisterRoutes(e)

	addr := cfg.Agent.Host + ":" + cfg.Agent.Port
	logging.InfoLogger.Printf("otp-agent listening on %s (key file: %s)", addr, cfg.KeyFile)

	if err := e.Start(addr); err != nil {
		logging.ErrorLogger.Fatalf("Failed to start agent: %v", err)
	}
}
