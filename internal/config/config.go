// Package config loads momtext settings from an optional YAML file,
// MOMTEXT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/valpere/momtext/internal/translator"
)

const EnvPrefix = "MOMTEXT"

var (
	TranslatorServices = []string{"google", "mymemory", "openrouter", "ollama", "none"}
	RefinerServices    = []string{"gemini", "ollama", "none"}
)

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	Development bool   `mapstructure:"development"`

	Translator TranslatorConfig `mapstructure:"translator"`
	Refiner    RefinerConfig    `mapstructure:"refiner"`
	Timeouts   TimeoutConfig    `mapstructure:"timeouts"`
	Store      StoreConfig      `mapstructure:"store"`

	// ProtectedTerms are extra words the grammar rules leave alone.
	ProtectedTerms []string `mapstructure:"protected_terms"`
}

type TranslatorConfig struct {
	Service                  string `mapstructure:"service"`
	translator.ServiceConfig `mapstructure:",squash"`
}

type RefinerConfig struct {
	Service string `mapstructure:"service"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type TimeoutConfig struct {
	Translate time.Duration `mapstructure:"translate"`
	Refine    time.Duration `mapstructure:"refine"`
}

type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	// FuzzyThreshold enables near-match lookups in the translation memory.
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":     "log_level",
	"dev":           "development",
	"translator":    "translator.service",
	"refiner":       "refiner.service",
	"refiner-model": "refiner.model",
	"db":            "store.path",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("development", false)

	v.SetDefault("translator.service", "mymemory")
	v.SetDefault("translator.credentials", "")
	v.SetDefault("translator.api_key", "")
	v.SetDefault("translator.model", "")
	v.SetDefault("translator.base_url", "")
	v.SetDefault("translator.email", "")
	v.SetDefault("translator.timeout", 0)
	v.SetDefault("translator.project_id", "")

	v.SetDefault("refiner.service", "none")
	v.SetDefault("refiner.api_key", "")
	v.SetDefault("refiner.model", "")
	v.SetDefault("refiner.base_url", "http://localhost:11434")

	v.SetDefault("timeouts.translate", 20*time.Second)
	v.SetDefault("timeouts.refine", 30*time.Second)

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", defaultStorePath())
	v.SetDefault("store.fuzzy_threshold", 0)

	v.SetDefault("protected_terms", []string{})
}

func defaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "momtext.db"
	}
	return filepath.Join(dir, "momtext", "momtext.db")
}

// Load reads the configuration. An empty path searches ./momtext.yaml and
// $HOME/.config/momtext/momtext.yaml and tolerates neither existing; an
// explicit path must exist. Flags that were set on the command line win.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("momtext")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "momtext"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks service names and timeouts.
func (c *Config) Validate() error {
	if !contains(TranslatorServices, c.Translator.Service) {
		return fmt.Errorf("unknown translator %q (want one of %s)", c.Translator.Service, strings.Join(TranslatorServices, ", "))
	}
	if !contains(RefinerServices, c.Refiner.Service) {
		return fmt.Errorf("unknown refiner %q (want one of %s)", c.Refiner.Service, strings.Join(RefinerServices, ", "))
	}
	if c.Timeouts.Translate <= 0 || c.Timeouts.Refine <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.Store.FuzzyThreshold < 0 || c.Store.FuzzyThreshold > 1 {
		return fmt.Errorf("store.fuzzy_threshold must be within [0, 1]")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
