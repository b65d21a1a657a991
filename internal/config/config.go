package config

import (
	"fmt"

	"github.com/tablingo/tablingo/pkg/engines/argos"
	"github.com/tablingo/tablingo/pkg/engines/nllb"
)

// Config holds all run configuration. Values come from the YAML config
// file, overridden by command-line flags.
type Config struct {
	// Engine selects the engine for the run: "nllb" or "argos". Fixed
	// for the whole run; per-cell capability fallback may still route
	// individual cells to the other engine.
	Engine string `mapstructure:"engine"`

	// TargetLanguage is the internal code to translate into.
	TargetLanguage string `mapstructure:"target_language"`

	// ConfidenceThreshold gates per-cell translate decisions, in [0,1].
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`

	// FallbackLanguage is assigned to cells below the threshold.
	FallbackLanguage string `mapstructure:"fallback_language"`

	// ForceSourceLanguage bypasses detection entirely when set.
	ForceSourceLanguage string `mapstructure:"force_source_language"`

	// BatchSize caps translation batches below the engine maximum.
	BatchSize int `mapstructure:"batch_size"`

	// EnableFallbackEngine allows rerouting unsupported languages to the
	// alternate engine.
	EnableFallbackEngine bool `mapstructure:"enable_fallback_engine"`

	// Skip-rule switches.
	SkipNumeric bool `mapstructure:"skip_numeric"`
	SkipDates   bool `mapstructure:"skip_dates"`
	SkipEnglish bool `mapstructure:"skip_english"`
	SkipEmpty   bool `mapstructure:"skip_empty"`

	// AnalysisSampleSize caps the cells sampled per column during
	// analysis and auto-selection.
	AnalysisSampleSize int `mapstructure:"analysis_sample_size"`

	// Engine backend settings.
	NLLB  nllb.Config  `mapstructure:"nllb"`
	Argos argos.Config `mapstructure:"argos"`

	Debug bool `mapstructure:"debug"`
	Quiet bool `mapstructure:"quiet"`
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Engine:               nllb.EngineID,
		TargetLanguage:       "eng_Latn",
		ConfidenceThreshold:  0.7,
		FallbackLanguage:     "eng_Latn",
		BatchSize:            16,
		EnableFallbackEngine: true,
		SkipNumeric:          true,
		SkipDates:            true,
		SkipEnglish:          true,
		SkipEmpty:            true,
		AnalysisSampleSize:   50,
		NLLB:                 nllb.DefaultConfig(),
		Argos:                argos.DefaultConfig(),
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Engine != nllb.EngineID && c.Engine != argos.EngineID {
		return fmt.Errorf("unknown engine %q (want %q or %q)", c.Engine, nllb.EngineID, argos.EngineID)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold %v outside [0,1]", c.ConfidenceThreshold)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.TargetLanguage == "" {
		return fmt.Errorf("target_language must be set")
	}
	return nil
}
