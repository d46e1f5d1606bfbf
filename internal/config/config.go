package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document.
type Config struct {
	Terminal string `yaml:"terminal"`
	Apps     Apps   `yaml:"apps"`
}

// Apps maps application names to their toggle configuration.
type Apps map[string]App

// UnmarshalYAML ensures app names are unique and values are parsed correctly.
func (a *Apps) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*a = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("apps must be a mapping")
	}
	result := make(map[string]App, len(value.Content)/2)
	seen := map[string]struct{}{}
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("app name must be a string")
		}
		name := keyNode.Value
		if _, exists := seen[name]; exists {
			return fmt.Errorf("duplicate app %q", name)
		}
		seen[name] = struct{}{}
		var app App
		if err := valNode.Decode(&app); err != nil {
			return fmt.Errorf("app %q: %w", name, err)
		}
		result[name] = app
	}
	*a = result
	return nil
}

// App describes one toggleable application.
type App struct {
	Command         string           `yaml:"command"`
	Terminal        bool             `yaml:"terminal"`
	Identifier      IdentifierConfig `yaml:"identifier"`
	StartupOverride string           `yaml:"startupOverride"`
}

// IdentifierConfig selects the window identifier variant. Exactly one of the
// fields must be set.
type IdentifierConfig struct {
	Title string `yaml:"title"`
	AppID string `yaml:"app_id"`
	Class string `yaml:"class"`
}

func (ic IdentifierConfig) variants() int {
	n := 0
	if ic.Title != "" {
		n++
	}
	if ic.AppID != "" {
		n++
	}
	if ic.Class != "" {
		n++
	}
	return n
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "swaypad", "config.yaml")
}

// Load reads, decodes and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs basic sanity checks.
func (c *Config) Validate() error {
	if len(c.Apps) == 0 {
		return fmt.Errorf("config must define at least one app")
	}
	for name, app := range c.Apps {
		if app.Command == "" {
			return fmt.Errorf("app %q: command is required", name)
		}
		switch app.Identifier.variants() {
		case 1:
		case 0:
			return fmt.Errorf("app %q: identifier must set one of title, app_id or class", name)
		default:
			return fmt.Errorf("app %q: identifier must set exactly one of title, app_id or class", name)
		}
		if app.Terminal && app.Identifier.Title != "" && c.Terminal == "" {
			return fmt.Errorf("app %q: terminal command required for terminal-hosted apps", name)
		}
	}
	return nil
}

// App returns the configuration for the named application.
func (c *Config) App(name string) (App, bool) {
	app, ok := c.Apps[name]
	return app, ok
}
