package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/logging"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/tracker"
)

// env is everything a command needs once the store is open.
type env struct {
	store   *store.Store
	tracker *tracker.Tracker
	file    config.FileConfig
	logger  *zap.Logger
}

// openEnv loads the config file, opens the log and the database, checks
// the data version and loads the tracker. Callers must Close it.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	file, err := loadFileConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, file)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	meta, err := store.CheckMeta(ctx, st, version)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("check data version: %w", err)
	}
	logger.Debug("store opened",
		zap.String("path", dbPath),
		zap.Int("schema", meta.SchemaVersion),
		zap.String("written_by", meta.AppVersion))

	tr := tracker.New(st, clock.Real{}, logger)
	if err := tr.Load(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress: %w", err)
	}

	return &env{store: st, tracker: tr, file: file, logger: logger}, nil
}

func (e *env) Close() {
	_ = e.logger.Sync()
	e.store.Close()
}

func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	file, err := config.LoadConfig(configPath(cmd))
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("load config: %w", err)
	}
	return file, nil
}

// newLogger builds the file logger. The --log-level flag wins over the
// config file.
func newLogger(cmd *cobra.Command, file config.FileConfig) (*zap.Logger, error) {
	level := "info"
	if file.Log.Level != nil {
		level = *file.Log.Level
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}

	path := config.DefaultLogPath()
	if file.Log.Path != nil && *file.Log.Path != "" {
		path = *file.Log.Path
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logger, err := logging.New(level, path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return logger, nil
}
