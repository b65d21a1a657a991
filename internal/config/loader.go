package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from the given path, or searches the
// working directory and home for a .tablingo.yaml when path is empty.
// A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".tablingo")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := NewDefaultConfig()

	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("target_language", defaults.TargetLanguage)
	v.SetDefault("confidence_threshold", defaults.ConfidenceThreshold)
	v.SetDefault("fallback_language", defaults.FallbackLanguage)
	v.SetDefault("batch_size", defaults.BatchSize)
	v.SetDefault("enable_fallback_engine", defaults.EnableFallbackEngine)
	v.SetDefault("skip_numeric", defaults.SkipNumeric)
	v.SetDefault("skip_dates", defaults.SkipDates)
	v.SetDefault("skip_english", defaults.SkipEnglish)
	v.SetDefault("skip_empty", defaults.SkipEmpty)
	v.SetDefault("analysis_sample_size", defaults.AnalysisSampleSize)

	v.SetDefault("nllb.endpoint", defaults.NLLB.Endpoint)
	v.SetDefault("nllb.model_id", defaults.NLLB.ModelID)
	v.SetDefault("nllb.timeout", defaults.NLLB.Timeout)
	v.SetDefault("nllb.max_retries", defaults.NLLB.MaxRetries)
	v.SetDefault("nllb.retry_delay", defaults.NLLB.RetryDelay)
	v.SetDefault("nllb.max_batch_size", defaults.NLLB.MaxBatchSize)

	v.SetDefault("argos.endpoint", defaults.Argos.Endpoint)
	v.SetDefault("argos.model_id", defaults.Argos.ModelID)
	v.SetDefault("argos.timeout", defaults.Argos.Timeout)
	v.SetDefault("argos.max_retries", defaults.Argos.MaxRetries)
	v.SetDefault("argos.retry_delay", defaults.Argos.RetryDelay)
	v.SetDefault("argos.max_batch_size", defaults.Argos.MaxBatchSize)
}
