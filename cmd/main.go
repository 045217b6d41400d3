package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"gastrogrid/internal/auftrag"
	"gastrogrid/internal/bootstrap"
	"gastrogrid/internal/config"
	"gastrogrid/internal/knowledge"
	"gastrogrid/internal/repository"
	"gastrogrid/internal/session"
	"gastrogrid/internal/tui"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// --- Database ---
	db, err := config.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// --- Repositories ---
	auftragRepo := repository.NewAuftragRepository(db)
	eventRepo := repository.NewEventRepository(db)
	productRepo := repository.NewProductRepository(db)
	lexikonRepo := repository.NewLexikonRepository(db)

	// --- Knowledge seed (first run only) ---
	importer := knowledge.NewImporter(productRepo, lexikonRepo, logger)
	if err := importer.ImportIfNeeded(cfg.Seed.ProduktePath, cfg.Seed.LexikonPath); err != nil {
		logger.Fatal("Knowledge import failed", zap.Error(err))
	}

	if cfg.Seed.Demo {
		if err := bootstrap.SeedDemo(db, logger); err != nil {
			logger.Warn("Demo seed failed", zap.Error(err))
		}
	}

	// --- UI ---
	app := tui.App{
		Session:   session.FromConfig(cfg.Session),
		Jobs:      auftrag.NewJobController(auftragRepo, logger),
		Events:    auftrag.NewEventController(eventRepo, logger),
		Auftraege: auftragRepo,
		EventRepo: eventRepo,
		Lookup:    knowledge.NewLookup(productRepo, lexikonRepo),
		Logger:    logger,
	}
	if err := tui.Run(app); err != nil {
		logger.Fatal("UI terminated with error", zap.Error(err))
	}
}
