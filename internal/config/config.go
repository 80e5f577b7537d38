package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents ~/.shorty/config.toml.
type Config struct {
	LogLevel        string            `toml:"log_level"`
	LogFile         string            `toml:"log_file"`
	SequenceTimeout Duration          `toml:"sequence_timeout"`
	Glyphs          map[string]string `toml:"glyphs"`
}

// Duration is a time.Duration written as a string ("750ms") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// BaseDir returns ~/.shorty.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shorty")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		LogFile:         filepath.Join(BaseDir(), "logs", "shorty.log"),
		SequenceTimeout: Duration{time.Second},
	}
}

// Load reads config from the given path on top of Default. Returns error if file missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
