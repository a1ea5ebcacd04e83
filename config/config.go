package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type MagicLoopsConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type UserConfig struct {
	MagicLoops MagicLoopsConfig `toml:"magicloops"`
}

// Config is the resolved configuration the rest of the app reads.
type Config struct {
	DataDirectory  string
	Endpoint       string
	TimeoutSeconds int
	Keybindings    *KeyBindingsConfig
}

// envOverrides holds the MAGICCHAT_* variables. Unset variables leave the
// corresponding field at its zero value.
type envOverrides struct {
	DataDirectory  string `env:"MAGICCHAT_DATA_DIR"`
	Endpoint       string `env:"MAGICCHAT_ENDPOINT"`
	TimeoutSeconds int    `env:"MAGICCHAT_TIMEOUT_SECONDS"`
	Debug          string `env:"MAGICCHAT_DEBUG"`
}

var Debug = false
var DebugLog *logrus.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Timeout returns the per-exchange timeout. Zero means no timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func loadEnvOverrides() (envOverrides, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return envOverrides{}, err
	}
	return o, nil
}

func (c *Config) applyEnvOverrides(o envOverrides) {
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.TimeoutSeconds > 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
}

func CheckDebug() bool {
	o, err := loadEnvOverrides()
	if err != nil {
		return false
	}
	return o.Debug == "true" || o.Debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: the log carries the conversation text
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})

	DebugLog = logger
	DebugLog.Debugf("=== Debug logging started ===")
	DebugLog.WithField("path", logPath).Debug("log path")
}

// Load resolves settings.toml, <data_dir>/config.toml and the environment,
// creating the files from their templates on first run.
func Load() (*Config, error) {
	overrides, err := loadEnvOverrides()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &Config{
		DataDirectory: DefaultSystemConfig().DataDirectory,
		Endpoint:      DefaultEndpoint,
	}

	if overrides.DataDirectory != "" {
		cfg.DataDirectory = overrides.DataDirectory
	} else {
		systemCfg, err := LoadSystemConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load system config: %w", err)
		}
		if systemCfg.DataDirectory != "" {
			cfg.DataDirectory = systemCfg.DataDirectory
		}
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Ensure data directory has correct permissions (fix if needed)
	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	if userCfg.MagicLoops.Endpoint != "" {
		cfg.Endpoint = userCfg.MagicLoops.Endpoint
	}
	cfg.TimeoutSeconds = userCfg.MagicLoops.TimeoutSeconds

	cfg.applyEnvOverrides(overrides)

	kb, err := LoadKeybindings(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	cfg.Keybindings = kb

	return cfg, nil
}
