package config

import (
	_ "embed"
	"slices"
	"sync"
)

//go:embed defaults/flapper.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

var parseDefaults = sync.OnceValues(func() (Config, error) {
	return loadBytes(defaultYAML, DefaultSource)
})

// DefaultConfig returns the embedded default configuration. Each call gets
// its own Levels slice. A broken embedded document is a build defect and
// panics.
func DefaultConfig() Config {
	cfg, err := parseDefaults()
	if err != nil {
		panic(err)
	}
	cfg.Levels = slices.Clone(cfg.Levels)
	return cfg
}
