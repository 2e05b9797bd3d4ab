package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.2
	DefaultTimeout     = 60 * time.Second
)

// Config holds the process-wide configuration, read once at startup and
// passed explicitly into the stages that need it.
type Config struct {
	APIKey      string        // credential for the explanation API
	BaseURL     string        // OpenAI-compatible endpoint override
	Model       string        // model identifier
	NCPath      string        // path to the real netcat binary
	Temperature float64       // sampling temperature
	MaxTokens   int           // response token cap; 0 keeps the provider default
	Timeout     time.Duration // single-attempt bound on the API call
}

// ConfigDir returns the directory that stores ncx configuration artifacts.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "ncx"), nil
}

// DefaultConfigPath resolves the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load merges configuration from the optional YAML config file and the
// environment. Environment variables win over file values. A missing file
// is not an error; an unreadable or malformed one is.
//
// Recognized environment variables:
//
//	OPENAI_API_KEY                    credential (required for explanations)
//	OPENAI_API_BASE, OPENAI_BASE_URL  endpoint override
//	OPENAI_MODEL                      model identifier
//	NC_REAL                           path to the real netcat binary
//	NCX_TEMPERATURE                   sampling temperature
//	NCX_MAX_TOKENS                    response token cap
//	NCX_TIMEOUT                       API request timeout in seconds
//	NCX_CONFIG                        config file path (when path is empty)
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("model", DefaultModel)
	v.SetDefault("temperature", DefaultTemperature)
	v.SetDefault("timeout", int(DefaultTimeout/time.Second))

	v.BindEnv("api_key", "OPENAI_API_KEY")
	v.BindEnv("base_url", "OPENAI_API_BASE", "OPENAI_BASE_URL")
	v.BindEnv("model", "OPENAI_MODEL")
	v.BindEnv("nc_path", "NC_REAL")
	v.BindEnv("temperature", "NCX_TEMPERATURE")
	v.BindEnv("max_tokens", "NCX_MAX_TOKENS")
	v.BindEnv("timeout", "NCX_TIMEOUT")

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("NCX_CONFIG")
	}
	if cfgPath == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		cfgPath = defaultPath
	}

	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) && !strings.Contains(err.Error(), "Not Found") {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	return &Config{
		APIKey:      v.GetString("api_key"),
		BaseURL:     v.GetString("base_url"),
		Model:       v.GetString("model"),
		NCPath:      v.GetString("nc_path"),
		Temperature: v.GetFloat64("temperature"),
		MaxTokens:   v.GetInt("max_tokens"),
		Timeout:     time.Duration(v.GetInt("timeout")) * time.Second,
	}, nil
}
