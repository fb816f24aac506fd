package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBolt   Backend = "bolt"
	BackendMemory Backend = "memory"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendBolt, BackendMemory:
		return true
	default:
		return false
	}
}

type RuntimeConfig struct {
	DataDir           string  `env:"FM_DATA_DIR"`
	Backend           Backend `env:"FM_STORAGE_BACKEND" envDefault:"sqlite"`
	LogFile           string  `env:"FM_LOG_FILE"`
	LogLevel          string  `env:"FM_LOG_LEVEL" envDefault:"info"`
	FocusWorkMinutes  int     `env:"FM_FOCUS_WORK_MINUTES" envDefault:"25"`
	FocusBreakMinutes int     `env:"FM_FOCUS_BREAK_MINUTES" envDefault:"5"`
	SoundDir          string  `env:"FM_SOUND_DIR"`
	CelebrationBuffer int     `env:"FM_CELEBRATION_BUFFER" envDefault:"16"`
}

// FromEnv loads configuration from FM_* environment variables over the
// built-in defaults.
func FromEnv() (RuntimeConfig, error) {
	var cfg RuntimeConfig
	if err := env.Parse(&cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "flowmate.log")
	}
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func (c RuntimeConfig) Validate() error {
	if !c.Backend.IsValid() {
		return fmt.Errorf("config: unknown storage backend %q", c.Backend)
	}
	if c.FocusWorkMinutes <= 0 {
		return fmt.Errorf("config: focus work minutes must be positive")
	}
	if c.FocusBreakMinutes <= 0 {
		return fmt.Errorf("config: focus break minutes must be positive")
	}
	if c.CelebrationBuffer <= 0 {
		return fmt.Errorf("config: celebration buffer must be positive")
	}
	return nil
}

// StorePath is the database file for the configured backend.
func (c RuntimeConfig) StorePath() string {
	switch c.Backend {
	case BackendBolt:
		return filepath.Join(c.DataDir, "flowmate.bolt")
	default:
		return filepath.Join(c.DataDir, "flowmate.db")
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "flowmate")
}
