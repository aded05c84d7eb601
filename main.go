// main.go
package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/loader"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("catalog_source", config.Catalog.Source),
	)

	ctx := context.Background()

	// Load the catalog once; missing or malformed data degrades to a partial catalog
	source, closeSource := catalogSource(ctx, config, logger)
	result := loader.Load(ctx, source, logger)
	closeSource()

	if result.Partial() {
		logger.Warn("Catalog loaded with skipped entries", zap.Int("skipped", len(result.Diagnostics)))
	}

	repos := repository.NewRepository(result, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// catalogSource picks the configured source. An unreachable database yields a
// source that reports both resources unavailable, so startup still completes.
func catalogSource(ctx context.Context, config *utils.Config, logger *zap.Logger) (loader.Source, func()) {
	if config.Catalog.Source != utils.CatalogSourcePostgres {
		return loader.NewFileSource(config.Catalog.MoviesPath, config.Catalog.ReviewsPath), func() {}
	}

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to catalog database", zap.Error(err))
		return loader.UnavailableSource(err), func() {}
	}

	logger.Info("Database connected successfully")
	return loader.NewPostgresSource(db), db.Close
}
