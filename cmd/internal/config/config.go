// Package config loads the siago CLI configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/chinmay1088/siago/api"
)

// EnvConfigPath names the environment variable pointing at a config file
const EnvConfigPath = "SIAGO_CONFIG"

// Config holds the daemon connection settings used by the CLI
type Config struct {
	Address    string        `toml:"address"`
	Port       int           `toml:"port"`
	Timeout    time.Duration `toml:"timeout"`
	Dictionary string        `toml:"dictionary"`
	Verbose    bool          `toml:"verbose"`
}

// Default returns the configuration of a local daemon on the default port
func Default() Config {
	return Config{
		Address:    api.DefaultAddress,
		Port:       api.DefaultPort,
		Timeout:    30 * time.Second,
		Dictionary: api.DefaultDictionary,
	}
}

// Load returns the configuration read from path. When path is empty the
// SIAGO_CONFIG variable is tried first, then ./siago.toml and
// ~/.siago/config.toml. Without any file the defaults are returned.
// An explicitly named file that cannot be read is an error.
func Load(path string) (Config, error) {
	if path != "" {
		return FromFile(path)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return FromFile(env)
	}

	for _, candidate := range candidates() {
		cfg, err := FromFile(candidate)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	return Default(), nil
}

// FromFile decodes a TOML file on top of the defaults
func FromFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

func candidates() []string {
	paths := []string{"./siago.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".siago", "config.toml"))
	}
	return paths
}
