package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Embedding struct {
		Provider        string `mapstructure:"provider"` // "openai", "gemini" or "fallback" (all configured providers)
		Model           string `mapstructure:"model"`
		OpenaiApiKey    string `mapstructure:"openai_api_key"`
		GoogleApiKey    string `mapstructure:"google_api_key"`
		GeminiModelName string `mapstructure:"gemini_model_name"`
		Dimension       int    `mapstructure:"dimension"`
		MaxAttempts     int    `mapstructure:"max_attempts"`
		BaseDelayMs     int64  `mapstructure:"base_delay_ms"`
	} `mapstructure:"embedding"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Categorization struct {
		HighSimilarityThreshold float64 `mapstructure:"high_similarity_threshold"`
	} `mapstructure:"categorization"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	// Allow Viper to read environment variables. API keys are usually
	// supplied this way rather than committed into config.yaml.
	viper.AutomaticEnv()
	viper.BindEnv("embedding.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("embedding.google_api_key", "GEMINI_API_KEY")

	// Defaults matching the reference deployment.
	viper.SetDefault("embedding.provider", "openai")
	viper.SetDefault("embedding.model", "text-embedding-3-small")
	viper.SetDefault("embedding.gemini_model_name", "models/embedding-001")
	viper.SetDefault("embedding.max_attempts", 3)
	viper.SetDefault("embedding.base_delay_ms", 100)
	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", "5002")
	viper.SetDefault("categorization.high_similarity_threshold", 0.7)

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist, Viper might rely
		// solely on env vars and defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
