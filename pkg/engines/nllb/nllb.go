// Package nllb implements Engine A: the broad-coverage default engine.
// Its native vocabulary is the internal code space, so units pass through
// without code translation.
package nllb

import (
	"context"

	"github.com/tablingo/tablingo/pkg/engines"
	"github.com/tablingo/tablingo/pkg/langid"
	"github.com/tablingo/tablingo/pkg/pipeline"
)

// EngineID is the configuration name of this engine.
const EngineID = "nllb"

// Config configures the broad-coverage engine.
type Config struct {
	engines.BaseConfig `mapstructure:",squash"`

	// MaxBatchSize caps batches; default 16, reducible for
	// memory-constrained runs.
	MaxBatchSize int `mapstructure:"max_batch_size" json:"max_batch_size"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	base := engines.DefaultConfig()
	base.Endpoint = "http://127.0.0.1:7301"
	base.ModelID = "nllb-200-distilled-600M"
	return Config{BaseConfig: base, MaxBatchSize: 16}
}

// Engine is the broad-coverage translation engine adapter.
type Engine struct {
	backend    engines.ModelBackend
	capability engines.Capability
}

// New creates the engine with a loopback runner backend.
func New(cfg Config) *Engine {
	return NewWithBackend(cfg, engines.NewRunnerClient(cfg.BaseConfig))
}

// NewWithBackend creates the engine around an explicit backend handle.
func NewWithBackend(cfg Config, backend engines.ModelBackend) *Engine {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultConfig().MaxBatchSize
	}

	supported := make(map[string]struct{})
	for _, lang := range langid.NewMapper().All() {
		supported[lang.Code] = struct{}{}
	}

	return &Engine{
		backend: backend,
		capability: engines.Capability{
			Languages:    supported,
			MaxBatchSize: cfg.MaxBatchSize,
		},
	}
}

// Name returns the engine id.
func (e *Engine) Name() string { return EngineID }

// Supports reports whether the engine covers a source language.
func (e *Engine) Supports(code string) bool { return e.capability.Supports(code) }

// MaxBatchSize returns the engine's batch cap.
func (e *Engine) MaxBatchSize() int { return e.capability.MaxBatchSize }

// TranslateBatch translates one batch, one result per unit.
func (e *Engine) TranslateBatch(ctx context.Context, units []pipeline.TranslationUnit) ([]pipeline.TranslationResult, error) {
	return engines.RunBatch(ctx, e.backend, units, nil)
}
