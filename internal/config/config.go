package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "DOCBROWSER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCBROWSER_*). Nested keys use a double
// underscore, so DOCBROWSER_SOURCE__DIR sets source.dir.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured module list replaces the built-in one wholesale rather
	// than being merged element by element.
	if k.Exists("modules") {
		cfg.Modules = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSources = map[SourceType]bool{
	SourceHTTP: true,
	SourceFS:   true,
}

// Validate checks that the configuration contains valid values. Module ids
// are the only join key used by navigation, so duplicates are rejected.
func (c *Config) Validate() error {
	if !validSources[c.Source.Type] {
		return fmt.Errorf("invalid source type %q: must be one of http, fs", c.Source.Type)
	}
	if c.Source.Type == SourceHTTP && c.Source.URL == "" {
		return fmt.Errorf("source.url is required for the http source")
	}
	if c.Source.Type == SourceFS && c.Source.Dir == "" {
		return fmt.Errorf("source.dir is required for the fs source")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	seen := make(map[string]bool, len(c.Modules))
	for i, m := range c.Modules {
		if m.ID == "" {
			return fmt.Errorf("modules[%d]: id is required", i)
		}
		if m.ID == HomeID {
			return fmt.Errorf("modules[%d]: id %q is reserved", i, HomeID)
		}
		if seen[m.ID] {
			return fmt.Errorf("modules[%d]: duplicate id %q", i, m.ID)
		}
		seen[m.ID] = true
		if m.Path == "" {
			return fmt.Errorf("module %s: path is required", m.ID)
		}
		for j, f := range m.Files {
			if f.Path == "" {
				return fmt.Errorf("module %s: files[%d].path is required", m.ID, j)
			}
		}
	}
	return nil
}
