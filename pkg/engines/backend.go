// Package engines holds the infrastructure shared by the two translation
// engine adapters: backend configuration, the model backend contract, a
// retryable error type, a named registry and the loopback model runner
// client.
package engines

import (
	"context"
	"time"
)

// BaseConfig carries the settings common to both engine backends.
type BaseConfig struct {
	// Endpoint of the local model runner process.
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`

	// ModelID selects the loaded model on the runner.
	ModelID string `mapstructure:"model_id" json:"model_id"`

	Timeout    time.Duration `mapstructure:"timeout" json:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" json:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay" json:"retry_delay"`
}

// DefaultConfig returns the settings both engines start from.
func DefaultConfig() BaseConfig {
	return BaseConfig{
		Timeout:    2 * time.Minute,
		MaxRetries: 1,
		RetryDelay: time.Second,
	}
}

// ModelBackend is the blackbox translation model contract. Implementations
// hold process-lifetime model handles and are read-only across batches, so
// one backend is safely shared within a run.
type ModelBackend interface {
	// Translate converts text between the backend's native language
	// codes. It blocks for the duration of one model forward pass.
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Capability is the static per-engine capability record, loaded once at
// startup and read-only for the run.
type Capability struct {
	// Languages is the set of supported source codes, in the engine's
	// native vocabulary.
	Languages map[string]struct{}

	// MaxBatchSize caps batches submitted to the engine.
	MaxBatchSize int
}

// Supports reports whether the capability covers a source code.
func (c Capability) Supports(code string) bool {
	_, ok := c.Languages[code]
	return ok
}
