package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"go-movie-catalog/internal/storage"
)

type Config struct {
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	Website WebsiteConfig `yaml:"website" mapstructure:"website"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
}

type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "csv" or "json"
	Path    string `yaml:"path" mapstructure:"path"`
}

type WebsiteConfig struct {
	Title    string `yaml:"title" mapstructure:"title"`
	Template string `yaml:"template" mapstructure:"template"` // optional custom page template
	Output   string `yaml:"output" mapstructure:"output"`
}

type ServerConfig struct {
	Port string `yaml:"port" mapstructure:"port"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: storage.BackendJSON,
			Path:    "movies.json",
		},
		Website: WebsiteConfig{
			Title:  "My Movie App",
			Output: "website.html",
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// Load reads the configuration. With a non-empty path that exact file is
// used; otherwise "movies.yaml" is searched in the working directory and
// the user config directory, and a missing file just means defaults.
// Every key can also be set through MOVIES_-prefixed environment
// variables (e.g. MOVIES_STORAGE_BACKEND=csv).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	// Register every key with its default so AutomaticEnv can see it.
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("website.title", cfg.Website.Title)
	v.SetDefault("website.template", cfg.Website.Template)
	v.SetDefault("website.output", cfg.Website.Output)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("movies")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "movies"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "movies"))
		}
	}

	// Environment variables
	v.SetEnvPrefix("MOVIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; ignore and use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.Backend != storage.BackendCSV && cfg.Storage.Backend != storage.BackendJSON {
		return nil, fmt.Errorf("invalid storage backend %q (supported: %q, %q)", cfg.Storage.Backend, storage.BackendCSV, storage.BackendJSON)
	}
	return cfg, nil
}
