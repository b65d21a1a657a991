package engines

import (
	"context"

	"github.com/tablingo/tablingo/pkg/pipeline"
)

// RunBatch drives one batch through a backend, one model call per unit.
// mapCode converts internal language codes to the backend's native
// vocabulary; nil means the codes are already native.
//
// Per-unit failures are recorded in the unit's result so one bad cell
// never aborts its batch. A retryable resource error aborts the batch
// instead, signalling the orchestrator to retry at half size.
func RunBatch(ctx context.Context, backend ModelBackend, units []pipeline.TranslationUnit, mapCode func(string) string) ([]pipeline.TranslationResult, error) {
	results := make([]pipeline.TranslationResult, 0, len(units))
	for _, unit := range units {
		source, target := unit.Source, unit.Target
		if mapCode != nil {
			source, target = mapCode(source), mapCode(target)
		}

		translated, err := backend.Translate(ctx, unit.Text, source, target)
		if err != nil {
			if IsResourceError(err) {
				return nil, err
			}
			results = append(results, pipeline.TranslationResult{Cell: unit.Cell, Err: err})
			continue
		}
		results = append(results, pipeline.TranslationResult{Cell: unit.Cell, Text: translated})
	}
	return results, nil
}
