package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/cashflow/internal/config"
	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/service"
	"github.com/hance08/cashflow/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	DBPath  string
}

// NewApp opens the ledger database and wires the services on top of it.
// The returned cleanup closes the database.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, func(), error) {
	dbPath, err := ResolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Debug().Str("path", dbPath).Msg("database opened")

	svc := service.NewService(dbStore, cfg, log)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath picks the database file: database.path from config, then
// $DATA_DIR/cashflow.db, then the app data directory.
func ResolveDBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	if dataDir := os.Getenv(constants.DataDirEnvVar); dataDir != "" {
		dir, err := ExpandPath(dataDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, constants.DBFileName), nil
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, constants.DBFileName), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppDirName), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
