// Package argos implements Engine B: the lightweight, fast engine. It
// speaks ISO 639-1, so every code crosses the secondary translation table
// on the way to the backend, and its capability set is the subset of the
// fixed table the lightweight model packs cover.
package argos

import (
	"context"

	"github.com/tablingo/tablingo/pkg/engines"
	"github.com/tablingo/tablingo/pkg/langid"
	"github.com/tablingo/tablingo/pkg/pipeline"
)

// EngineID is the configuration name of this engine.
const EngineID = "argos"

// Config configures the lightweight engine.
type Config struct {
	engines.BaseConfig `mapstructure:",squash"`

	// MaxBatchSize caps batches; the lightweight runner holds smaller
	// buffers than Engine A, so the default is 8.
	MaxBatchSize int `mapstructure:"max_batch_size" json:"max_batch_size"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	base := engines.DefaultConfig()
	base.Endpoint = "http://127.0.0.1:7302"
	base.ModelID = "argos-translate"
	return Config{BaseConfig: base, MaxBatchSize: 8}
}

// Engine is the lightweight translation engine adapter.
type Engine struct {
	backend    engines.ModelBackend
	capability engines.Capability
	mapper     *langid.Mapper
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

	mapper := langid.NewMapper()
	supported := make(map[string]struct{})
	for _, lang := range mapper.All() {
		if lang.ArgosSupported {
			supported[lang.Code] = struct{}{}
		}
	}

	return &Engine{
		backend: backend,
		capability: engines.Capability{
			Languages:    supported,
			MaxBatchSize: cfg.MaxBatchSize,
		},
		mapper: mapper,
	}
}

// Name returns the engine id.
func (e *Engine) Name() string { return EngineID }

// Supports reports whether the engine covers a source language. Codes are
// checked in the internal space; the ISO mapping happens at dispatch.
func (e *Engine) Supports(code string) bool { return e.capability.Supports(code) }

// MaxBatchSize returns the engine's batch cap.
func (e *Engine) MaxBatchSize() int { return e.capability.MaxBatchSize }

// TranslateBatch translates one batch, mapping each unit's codes into the
// engine's ISO 639-1 vocabulary.
func (e *Engine) TranslateBatch(ctx context.Context, units []pipeline.TranslationUnit) ([]pipeline.TranslationResult, error) {
	return engines.RunBatch(ctx, e.backend, units, e.mapper.ToISO1)
}
