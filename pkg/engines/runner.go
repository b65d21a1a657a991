package engines

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RunnerClient is a ModelBackend speaking to a local model runner process
// over loopback HTTP. The runner owns the loaded weights; this client is
// stateless and safe for concurrent use. Keeping inference in a separate
// local process preserves the offline contract while letting the two
// engines run side by side.
type RunnerClient struct {
	config     BaseConfig
	httpClient *http.Client
}

// NewRunnerClient creates a client for a model runner endpoint.
func NewRunnerClient(config BaseConfig) *RunnerClient {
	if config.Endpoint == "" {
		config.Endpoint = "http://127.0.0.1:7301"
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &RunnerClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type runnerRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	Model  string `json:"model,omitempty"`
}

type runnerResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

// Translate performs one model call. Connection failures are retried up to
// MaxRetries times; overload responses surface as retryable resource
// errors so the orchestrator can halve the batch.
func (c *RunnerClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", WrapError(CodeTimeout, "translate cancelled", ctx.Err())
			case <-time.After(c.config.RetryDelay):
			}
		}

		translated, err := c.translate(ctx, text, source, target)
		if err == nil {
			return translated, nil
		}
		lastErr = err

		var engineErr *Error
		if errors.As(err, &engineErr) && engineErr.Code != CodeBackendError {
			// Resource and timeout errors go straight back to the
			// orchestrator's batch handling.
			return "", err
		}
	}
	return "", lastErr
}

func (c *RunnerClient) translate(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(runnerRequest{
		Text:   text,
		Source: source,
		Target: target,
		Model:  c.config.ModelID,
	})
	if err != nil {
		return "", WrapError(CodeBackendError, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.Endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", WrapError(CodeBackendError, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", WrapError(CodeTimeout, "model call timed out", err)
		}
		return "", WrapError(CodeBackendError, "model runner unreachable",
			fmt.Errorf("%w: %v", ErrBackendUnavailable, err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusInsufficientStorage:
		return "", NewError(CodeResourceExhausted,
			fmt.Sprintf("model runner overloaded (status %d)", resp.StatusCode))
	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", NewError(CodeBackendError,
			fmt.Sprintf("model runner returned status %d: %s", resp.StatusCode, string(data)))
	}

	var result runnerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", WrapError(CodeBadResponse, "decode response", err)
	}
	if result.Error != "" {
		return "", NewError(CodeBackendError, result.Error)
	}
	return result.TranslatedText, nil
}
