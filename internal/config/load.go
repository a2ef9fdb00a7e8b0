package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied before any file or environment source.
const (
	DefaultPort        = 8000
	DefaultLogLevel    = "info"
	DefaultServiceName = "Intelligent Email Writer API"
	DefaultModelName   = "gemini-1.5-flash"

	// EnvPrefix is prepended to every environment variable derived from a config key.
	EnvPrefix = "EMAILWRITER"

	// GeminiAPIKeyEnv is the bare variable name the credential is also read from.
	GeminiAPIKeyEnv = "GEMINI_API_KEY"
)

// Options controls where Load looks for configuration sources.
type Options struct {
	// EnvFile is a dotenv file loaded into the process environment before
	// anything else. A missing file is not an error.
	EnvFile string

	// ConfigPaths are directories searched for config.yaml.
	ConfigPaths []string
}

// DefaultOptions returns the sources used by the server binary.
func DefaultOptions() Options {
	return Options{
		EnvFile:     ".env",
		ConfigPaths: []string{"."},
	}
}

// Load configuration from a .env file, an optional config file and environment
// variables, in increasing order of precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

// LoadWithOptions is Load with explicit source locations.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.service_name", DefaultServiceName)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.gemini_api_key", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range opts.ConfigPaths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential keeps the variable name the service has always used.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", GeminiAPIKeyEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", GeminiAPIKeyEnv, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
