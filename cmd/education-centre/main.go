// main is the entry point of the Education Centre record manager.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Open the record store chosen by storage.driver
//  4. Start a session that owns the store
//  5. Run the menu on stdin/stdout until the user exits or input ends
//  6. Close the session, discarding every record
//
// RUNNING:
//
//	go run ./cmd/education-centre --config=config/local.yaml
//
// or with no file at all (defaults plus environment variables):
//
//	STORAGE_DRIVER=sqlite go run ./cmd/education-centre
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/paagano/EducationCentreMIS/internal/config"
	"github.com/paagano/EducationCentreMIS/internal/input"
	"github.com/paagano/EducationCentreMIS/internal/menu"
	"github.com/paagano/EducationCentreMIS/internal/session"
	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/storage/memory"
	"github.com/paagano/EducationCentreMIS/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialise logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting education-centre",
		zap.String("env", cfg.Env),
		zap.String("storage", cfg.Storage.Driver),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The rest of the program only sees the storage.Storage interface.
	store, err := openStorage(cfg.Storage.Driver)
	if err != nil {
		log.Error("failed to initialise storage", zap.Error(err))
		os.Exit(1)
	}

	// ── 4. Start Session ──────────────────────────────────────────────────
	sess := session.New(store, log)

	// ── 5. Run Menu ───────────────────────────────────────────────────────
	runErr := menu.New(sess, os.Stdout).Run(input.NewScanner(os.Stdin, os.Stdout))

	// ── 6. Tear Down ──────────────────────────────────────────────────────
	if err := sess.Close(); err != nil {
		log.Error("failed to close session", zap.Error(err))
	}

	if runErr != nil {
		log.Error("menu stopped", zap.Error(runErr))
		os.Exit(1)
	}
}

func openStorage(driver string) (storage.Storage, error) {
	switch driver {
	case "sqlite":
		return sqlite.New()
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// setupLogger returns a *zap.Logger configured for the given environment.
//
// Development (dev): human-readable console output at DEBUG level.
// Staging: JSON at DEBUG level.
// Production (prod): JSON at INFO level.
//
// cfg.Log.Level, when set, overrides the level; cfg.Log.Output picks the sink.
func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config

	switch cfg.Env {
	case "prod":
		zcfg = zap.NewProductionConfig()
	case "staging":
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	default: // "dev" and anything unrecognised
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("setupLogger: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	zcfg.OutputPaths = []string{cfg.Log.Output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
