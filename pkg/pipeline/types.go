// Package pipeline implements the per-cell translation orchestration core:
// skip-rule filtering, confidence-gated language classification, language-pair
// batching, capability-routed dual-engine dispatch, and adjacent-column
// result assembly.
package pipeline

import "context"

// Decision is the per-cell classification outcome. Language is a cell-level
// attribute in this design, so every cell carries its own tagged record
// rather than inheriting a column-wide value.
type Decision string

const (
	// DecisionTranslate marks a cell that proceeds to an engine.
	DecisionTranslate Decision = "translate"

	// DecisionSkipEmpty marks empty or whitespace-only cells.
	DecisionSkipEmpty Decision = "skip-empty"

	// DecisionSkipNumeric marks cells parsing as numbers.
	DecisionSkipNumeric Decision = "skip-numeric"

	// DecisionSkipDate marks cells parsing as dates.
	DecisionSkipDate Decision = "skip-date"

	// DecisionSkipEnglish marks cells already in the target language.
	DecisionSkipEnglish Decision = "skip-english"

	// DecisionLowConfidence marks cells whose detection confidence fell
	// below the threshold; they are treated as already-English and left
	// untranslated rather than risk mistranslating garbled text.
	DecisionLowConfidence Decision = "low-confidence-fallback"

	// DecisionUnsupported marks cells whose language no engine covers.
	DecisionUnsupported Decision = "unsupported-language-error"

	// DecisionFailed marks cells whose translation failed after retry.
	DecisionFailed Decision = "translation-failed"

	// DecisionMalformed marks cells whose text could not be processed.
	DecisionMalformed Decision = "malformed-cell-error"
)

// IsSkip reports whether the decision leaves the cell untranslated by
// policy (as opposed to by error).
func (d Decision) IsSkip() bool {
	switch d {
	case DecisionSkipEmpty, DecisionSkipNumeric, DecisionSkipDate,
		DecisionSkipEnglish, DecisionLowConfidence:
		return true
	}
	return false
}

// CellRef identifies one row/column intersection of the source table.
type CellRef struct {
	Row    int
	Column string
}

// Cell is one unit of source text. Immutable once read.
type Cell struct {
	Ref  CellRef
	Text string
}

// ClassificationResult is the per-cell tagged record produced exactly once
// per cell and never mutated afterwards.
type ClassificationResult struct {
	Cell       CellRef
	Language   string // detected internal code, or langid.Unknown
	Confidence float64
	Decision   Decision
}

// TranslationUnit exists only for cells with DecisionTranslate. It is
// grouped into batches by the scheduler and consumed exactly once by an
// engine.
type TranslationUnit struct {
	Cell   CellRef
	Text   string
	Source string // resolved internal source code
	Target string // internal target code
}

// TranslationResult is one-to-one with its TranslationUnit. Err carries a
// per-unit failure; Text is only meaningful when Err is nil.
type TranslationResult struct {
	Cell CellRef
	Text string
	Err  error
}

// Engine is the uniform capability-checked translation contract. Both
// variants are stateless beyond loaded model weights, so unit order within
// a batch affects performance only, never correctness.
//
// TranslateBatch returns per-unit results; a non-nil error means the whole
// batch failed before producing results (typically a resource error) and
// the caller may retry at a smaller size.
type Engine interface {
	Name() string
	Supports(code string) bool
	MaxBatchSize() int
	TranslateBatch(ctx context.Context, units []TranslationUnit) ([]TranslationResult, error)
}
