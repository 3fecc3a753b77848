package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"perfume-shop/app"
	"perfume-shop/config"
	_ "perfume-shop/docs"
	"perfume-shop/utils"
)

// @title Niche Perfume Backend
// @version 1.0
// @description Fragrance catalog, testimonials, newsletter signups and a session keyed cart.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Service: "perfume-shop",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := utils.WithSignals(context.Background())
	defer cancel()

	application := app.Build(ctx, cfg, logger)
	application.Seed(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.AppEnv, "store", application.Store.Name())
		logger.Info("swagger UI available", "url", "http://localhost:"+cfg.Port+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := srv.Shutdown(stopCtx); err != nil {
		logger.Warn("graceful shutdown timed out", "error", err)
	}
	application.Close(stopCtx)
	logger.Info("bye")
}
