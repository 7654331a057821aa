package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSource names the embedded configuration in Load results.
const DefaultSource = "embedded"

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.flapper/config.yaml -> ./configs/flapper.yaml -> embedded default.
// A file that exists but cannot be parsed is an error; a missing file in the
// search path is skipped. Returns the config and the path it came from.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := loadBytes(data, customPath)
		return cfg, customPath, err
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "flapper.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, path, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := loadBytes(data, path)
		return cfg, path, err
	}

	return DefaultConfig(), DefaultSource, nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (Config, error) {
	return loadBytes(data, "input")
}

func loadBytes(data []byte, source string) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapper", filename)
}
