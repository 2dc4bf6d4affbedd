package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "resumecheck.yaml"
	EnvConfigPath  = "RESUMECHECK_CONFIG"
	EnvBaseURL     = "RESUMECHECK_BASE_URL"
	defaultBaseURL = "http://localhost:8090"
)

// Config is the root configuration for resumecheck.
type Config struct {
	API APIConfig
	UI  UIConfig
}

// APIConfig points at the resume analysis backend.
type APIConfig struct {
	BaseURL string        `validate:"required,http_url"`
	Timeout time.Duration `validate:"gte=0"` // 0 leaves timing to the transport
}

// UIConfig controls the interactive form.
type UIConfig struct {
	AltScreen bool
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	API rawAPIConfig `yaml:"api"`
	UI  rawUIConfig  `yaml:"ui"`
}

type rawAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type rawUIConfig struct {
	AltScreen *bool `yaml:"alt_screen"`
}

var validate = validator.New()

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		API: APIConfig{BaseURL: defaultBaseURL},
		UI:  UIConfig{AltScreen: true},
	}
}

// Resolve finds and loads the config file.
// Priority: explicit path > RESUMECHECK_CONFIG env var > ./resumecheck.yaml.
// Only the implicit default path may be absent, in which case defaults apply.
// A .env file in the working directory is loaded first so its variables are
// visible to ${VAR} expansion.
func Resolve(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	explicit := true
	if path == "" {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path = env
		} else {
			path = DefaultPath
			explicit = false
		}
	}

	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			applyEnv(cfg)
			return cfg, validateConfig(cfg)
		}
	}
	return Load(path)
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.API.BaseURL != "" {
		cfg.API.BaseURL = raw.API.BaseURL
	}
	if raw.API.Timeout != "" {
		cfg.API.Timeout, err = time.ParseDuration(raw.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse api.timeout %q: %w", raw.API.Timeout, err)
		}
	}
	if raw.UI.AltScreen != nil {
		cfg.UI.AltScreen = *raw.UI.AltScreen
	}

	applyEnv(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets RESUMECHECK_BASE_URL override the file.
func applyEnv(cfg *Config) {
	if env := os.Getenv(EnvBaseURL); env != "" {
		cfg.API.BaseURL = env
	}
}

func validateConfig(cfg *Config) error {
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	for _, fe := range verrs {
		switch fe.StructNamespace() {
		case "Config.API.BaseURL":
			return fmt.Errorf("api.base_url must be an http(s) URL, got %q", cfg.API.BaseURL)
		case "Config.API.Timeout":
			return fmt.Errorf("api.timeout must not be negative, got %v", cfg.API.Timeout)
		}
	}
	return fmt.Errorf("validate config: %w", err)
}
