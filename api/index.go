package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"perfume-shop/app"
	"perfume-shop/config"
	"perfume-shop/utils"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = &config.Config{StoreDriver: "unset"}
		}
		logger := utils.NewLogger(utils.LoggerOptions{
			Service: "perfume-shop",
			Env:     cfg.AppEnv,
			Level:   cfg.LogLevel,
		})
		if err != nil {
			logger.Error("failed to load configuration", "error", err)
		}

		ctx := context.Background()
		application := app.Build(ctx, cfg, logger)
		application.Seed(ctx)

		router = application.Router
	})
}

// Handler is the serverless entrypoint. The app is built on the first call
// and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
