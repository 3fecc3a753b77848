package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"perfume-shop/database"
)

// ConnectStore opens the store selected by STORE_DRIVER. It never returns
// nil: when the store cannot be configured or reached the failure is logged
// and a database.Unavailable carrying the reason is returned.
func ConnectStore(ctx context.Context, cfg *Config, logger *slog.Logger) database.Store {
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.ErrorContext(ctx, "document store not available", "driver", cfg.StoreDriver, "error", err)
		return database.NewUnavailable(err)
	}

	logger.InfoContext(ctx, "document store connected", "driver", store.Name())
	return store
}

func openStore(ctx context.Context, cfg *Config) (database.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StoreDriver)) {
	case "mongo", "mongodb":
		return database.OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	case "postgres", "postgresql":
		return database.OpenPostgres(ctx, cfg.DatabaseURL, cfg.Serverless)
	case "sqlite":
		return database.OpenSQLite(ctx, cfg.SQLitePath)
	case "firestore":
		return database.OpenFirestore(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentials)
	case "memory":
		return database.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func CloseStore(ctx context.Context, store database.Store, logger *slog.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(ctx); err != nil {
		logger.WarnContext(ctx, "closing document store failed", "error", err)
		return
	}
	logger.InfoContext(ctx, "document store closed")
}
