package app

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"perfume-shop/config"
	"perfume-shop/controllers"
	"perfume-shop/database"
	"perfume-shop/libs"
	"perfume-shop/middleware"
	"perfume-shop/repositories"
	"perfume-shop/routes"
	"perfume-shop/services"
)

// App is the wired HTTP application and the resources it owns.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  database.Store
	Redis  *redis.Client
	Router *gin.Engine

	seeder      *services.SeedService
	subscribers *services.SubscriberService
}

// Build connects the store and cache described by cfg and wires the app.
// Connection failures degrade the app rather than failing the build.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	store := config.ConnectStore(ctx, cfg, logger)
	rdb := config.ConnectRedis(ctx, cfg, logger)
	return New(cfg, logger, store, rdb)
}

// New wires the app around an already opened store. rdb may be nil.
func New(cfg *config.Config, logger *slog.Logger, store database.Store, rdb *redis.Client) *App {
	fragranceRepo := repositories.NewFragranceRepository(store)
	cartRepo := repositories.NewCartRepository(store)
	testimonialRepo := repositories.NewTestimonialRepository(store)
	subscriberRepo := repositories.NewSubscriberRepository(store)

	var cache services.FragranceCache
	if rdb != nil {
		cache = services.NewRedisFragranceCache(rdb, cfg.CatalogCacheTTL)
	}

	var mailer services.WelcomeMailer
	if cfg.SMTP.Enabled() {
		emailService, err := libs.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From)
		if err != nil {
			logger.Warn("welcome emails disabled", "error", err)
		} else {
			mailer = emailService
		}
	}

	catalogSvc := services.NewCatalogService(fragranceRepo, cache, logger).WithLoadTimeout(cfg.StoreTimeout)
	cartSvc := services.NewCartService(cartRepo, cfg.CartSerializeSessions)
	testimonialSvc := services.NewTestimonialService(testimonialRepo)
	subscriberSvc := services.NewSubscriberService(subscriberRepo, mailer, logger)
	diagnosticsSvc := services.NewDiagnosticsService(store, cfg.DatabaseURL, cfg.DatabaseName)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestTimeout(cfg.StoreTimeout))

	routes.SetupRoutes(router, routes.Controllers{
		Cart:      controllers.NewCartController(cartSvc),
		Fragrance: controllers.NewFragranceController(catalogSvc),
		Content:   controllers.NewContentController(testimonialSvc, subscriberSvc),
		System:    controllers.NewSystemController(diagnosticsSvc),
	})

	return &App{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		Redis:       rdb,
		Router:      router,
		seeder:      services.NewSeedService(store, fragranceRepo, catalogSvc, logger),
		subscribers: subscriberSvc,
	}
}

// Seed inserts the demo catalog when enabled. It never fails.
func (a *App) Seed(ctx context.Context) {
	if !a.Config.SeedOnStartup {
		return
	}
	a.seeder.SeedFragrances(ctx)
}

// Close waits for pending welcome emails, then releases the store and cache.
func (a *App) Close(ctx context.Context) {
	a.subscribers.Wait()
	config.CloseStore(ctx, a.Store, a.Logger)
	config.CloseRedis(a.Redis, a.Logger)
}
