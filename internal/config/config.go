package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"         validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey may be empty. The server still starts, but every
	// generation call fails until a key is configured.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}

// HasAPIKey reports whether a Gemini credential was supplied.
func (c LLMConfig) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}
