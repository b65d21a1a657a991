package pipeline

import (
	"github.com/tablingo/tablingo/pkg/langid"
)

// Detector is the language identification model contract. Implementations
// are pre-trained blackboxes; the shipped one wraps lingua.
type Detector interface {
	Detect(text string) (code string, confidence float64, err error)
}

// Classifier decides, per cell, whether translation is needed and at what
// declared source language. It performs at most one model invocation per
// cell, which is the dominant latency cost of the pipeline.
type Classifier struct {
	detector  Detector
	threshold float64
	fallback  string
	force     string
	target    string
}

// ClassifierConfig configures the per-cell classification policy.
type ClassifierConfig struct {
	// ConfidenceThreshold gates the translate decision; below it the cell
	// falls back to FallbackLanguage untranslated. Default 0.7.
	ConfidenceThreshold float64

	// FallbackLanguage is assigned on low confidence. Default "eng_Latn".
	FallbackLanguage string

	// ForceSourceLanguage, when set, bypasses the model entirely: every
	// non-skipped cell gets this language with confidence 1.0.
	ForceSourceLanguage string

	// TargetLanguage of the run; cells detected in it are not translated.
	TargetLanguage string
}

// NewClassifier builds a classifier around a detection model.
func NewClassifier(detector Detector, cfg ClassifierConfig) *Classifier {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = 0.7
	}
	if cfg.FallbackLanguage == "" {
		cfg.FallbackLanguage = "eng_Latn"
	}
	if cfg.TargetLanguage == "" {
		cfg.TargetLanguage = "eng_Latn"
	}
	return &Classifier{
		detector:  detector,
		threshold: cfg.ConfidenceThreshold,
		fallback:  cfg.FallbackLanguage,
		force:     cfg.ForceSourceLanguage,
		target:    cfg.TargetLanguage,
	}
}

// Classify produces the tagged record for one cell that passed the skip
// rules.
func (c *Classifier) Classify(cell Cell) ClassificationResult {
	if c.force != "" {
		decision := DecisionTranslate
		if c.force == c.target {
			decision = DecisionSkipEnglish
		}
		return ClassificationResult{
			Cell:       cell.Ref,
			Language:   c.force,
			Confidence: 1.0,
			Decision:   decision,
		}
	}

	code, confidence, err := c.detector.Detect(cell.Text)
	if err != nil {
		return ClassificationResult{
			Cell:     cell.Ref,
			Language: langid.Unknown,
			Decision: DecisionMalformed,
		}
	}

	if code == langid.Unknown || confidence < c.threshold {
		return ClassificationResult{
			Cell:       cell.Ref,
			Language:   c.fallback,
			Confidence: confidence,
			Decision:   DecisionLowConfidence,
		}
	}

	if code == c.target {
		return ClassificationResult{
			Cell:       cell.Ref,
			Language:   code,
			Confidence: confidence,
			Decision:   DecisionSkipEnglish,
		}
	}

	return ClassificationResult{
		Cell:       cell.Ref,
		Language:   code,
		Confidence: confidence,
		Decision:   DecisionTranslate,
	}
}
