package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const appName = "minifetch"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/minifetch/config.toml
//  2. ~/.config/minifetch/config.toml
//  3. the same directories with config.yaml, then config.yml
//
// If no file exists, a default config.toml is written to the first path and
// DefaultConfig() is returned. A failed write is logged, not returned.
func Load(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	paths := configSearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			logger.Debug("loading config", "path", p)
			return LoadFromFile(p)
		}
	}
	cfg, err := finish(DefaultConfig())
	if err != nil {
		return nil, err
	}
	if err := WriteDefault(paths[0]); err != nil {
		logger.Warn("failed to write default config", "path", paths[0], "err", err)
	} else {
		logger.Debug("wrote default config", "path", paths[0])
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. Files ending in
// .yaml or .yml are decoded as YAML, anything else as TOML.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finish(DefaultConfig())
		}
		return nil, err
	}
	defer f.Close()

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = LoadFromYAML(f)
	default:
		cfg, err = LoadFromReader(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads TOML configuration from an io.Reader. Keys absent from
// the input keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Warn("ignoring unknown config keys", "keys", strings.Join(keys, ", "))
	}
	return finish(cfg)
}

// LoadFromYAML reads YAML configuration from an io.Reader. Keys absent from
// the input keep their defaults.
func LoadFromYAML(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// WriteDefault writes DefaultConfig() as TOML to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultConfig()); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MINIFETCH_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("MINIFETCH_COLOR"); v != "" {
		cfg.Color = ColorMode(strings.ToLower(v))
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{filepath.Join(xdgConfigHome(home), appName)}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultDir := filepath.Join(home, ".config", appName)
	if dirs[0] != defaultDir {
		dirs = append(dirs, defaultDir)
	}

	var paths []string
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		for _, d := range dirs {
			paths = append(paths, filepath.Join(d, name))
		}
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
