package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/ini.v1"

	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/model"
)

// Config keys accepted by SetConfigValue, as section.key.
const (
	KeyStoreBackend = "store.backend"
	KeyStoreDataDir = "store.data_dir"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// ConfigKeys lists the settable keys in file order.
var ConfigKeys = []string{KeyStoreBackend, KeyStoreDataDir, KeyLogLevel, KeyLogFormat}

// LoadConfig reads the INI file at path. A missing file yields the defaults;
// keys absent from the file keep their default value.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if !encoding.FileExists(path) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	storeSec := file.Section("store")
	cfg.Store = storeSec.Key("backend").MustString(cfg.Store)
	cfg.DataDir = storeSec.Key("data_dir").MustString(cfg.DataDir)

	logSec := file.Section("log")
	cfg.LogLevel = logSec.Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = logSec.Key("format").MustString(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, creating the parent directory.
func SaveConfig(path string, cfg model.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	file := ini.Empty()

	storeSec := file.Section("store")
	storeSec.Key("backend").SetValue(cfg.Store)
	storeSec.Key("data_dir").SetValue(cfg.DataDir)

	logSec := file.Section("log")
	logSec.Key("level").SetValue(cfg.LogLevel)
	logSec.Key("format").SetValue(cfg.LogFormat)

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	return os.Chmod(path, 0o600)
}

// SetConfigValue updates one key of cfg.
func SetConfigValue(cfg *model.Config, key, value string) error {
	switch key {
	case KeyStoreBackend:
		cfg.Store = value
	case KeyStoreDataDir:
		cfg.DataDir = value
	case KeyLogLevel:
		cfg.LogLevel = value
	case KeyLogFormat:
		cfg.LogFormat = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return cfg.Validate()
}

// ShowConfig prints cfg.
func ShowConfig(w io.Writer, path string, cfg model.Config) error {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "(application directory)"
	}

	_, err := fmt.Fprintf(w, `Current Configuration:
=====================
Config File:  %s
Store:        %s
Data Dir:     %s
Log Level:    %s
Log Format:   %s
`, path, cfg.Store, dataDir, cfg.LogLevel, cfg.LogFormat)

	return err
}

// ResetConfig overwrites the file at path with the defaults.
func ResetConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("removing config %s: %w", path, err)
	}

	return cfg, SaveConfig(path, cfg)
}
