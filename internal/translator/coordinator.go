// Package translator wires the tabular I/O provider, the language
// identification model, the engine adapters and the pipeline core into
// file-level runs.
package translator

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"github.com/tablingo/tablingo/internal/config"
	"github.com/tablingo/tablingo/pkg/engines"
	"github.com/tablingo/tablingo/pkg/engines/argos"
	"github.com/tablingo/tablingo/pkg/engines/nllb"
	"github.com/tablingo/tablingo/pkg/langid"
	"github.com/tablingo/tablingo/pkg/pipeline"
	"github.com/tablingo/tablingo/pkg/tabular"
)

// Coordinator owns the long-lived handles of a process: the detection
// model and the two engine adapters. Both are expensive to initialize and
// read-only afterwards, so one coordinator serves any number of runs.
type Coordinator struct {
	cfg      *config.Config
	log      *zap.Logger
	mapper   *langid.Mapper
	detector pipeline.Detector
	registry *engines.Registry
}

// RunResult summarizes one translated file.
type RunResult struct {
	RunID             string
	InputFile         string
	OutputFile        string
	Rows              int
	ColumnsTranslated []string
	CellsTranslated   int
	CellsSkipped      int
	CellsFailed       int
	CellsUnsupported  int
	Duration          time.Duration
}

// ColumnAnalysis is the per-column summary produced by analyze mode and by
// automatic column selection. Aggregated from per-cell classifications of
// a sample, never from a column-wide detection call.
type ColumnAnalysis struct {
	Name             string
	Type             string // foreign_text, english, numeric, date, empty, mixed
	DominantLanguage string
	LanguageName     string
	Confidence       float64
	Sampled          int
	Samples          []string
}

// NewCoordinator constructs the process-lifetime handles.
func NewCoordinator(cfg *config.Config, log *zap.Logger) (*Coordinator, error) {
	return newCoordinator(cfg, log, langid.NewDetector(),
		nllb.New(cfg.NLLB), argos.New(cfg.Argos))
}

// NewCoordinatorWithBackends constructs a coordinator around explicit
// detection and engine handles. Used by tests and embedding callers.
func NewCoordinatorWithBackends(cfg *config.Config, log *zap.Logger, detector pipeline.Detector, engineA, engineB pipeline.Engine) (*Coordinator, error) {
	return newCoordinator(cfg, log, detector, engineA, engineB)
}

func newCoordinator(cfg *config.Config, log *zap.Logger, detector pipeline.Detector, engineA, engineB pipeline.Engine) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	registry := engines.NewRegistry()
	if err := registry.Register(nllb.EngineID, engineA); err != nil {
		return nil, err
	}
	if err := registry.Register(argos.EngineID, engineB); err != nil {
		return nil, err
	}

	return &Coordinator{
		cfg:      cfg,
		log:      log,
		mapper:   langid.NewMapper(),
		detector: detector,
		registry: registry,
	}, nil
}

// TranslateFile runs the whole pipeline over one file. columns may be
// empty, in which case predominantly-foreign columns are selected
// automatically. progress may be nil.
func (c *Coordinator) TranslateFile(ctx context.Context, inputPath, outputPath string, columns []string, progress func(done, total int)) (*RunResult, error) {
	start := time.Now()
	runID := uuid.NewString()

	table, err := tabular.ReadTable(inputPath)
	if err != nil {
		return nil, err
	}
	c.log.Info("loaded file",
		zap.String("run_id", runID),
		zap.String("file", inputPath),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", len(table.Columns)))

	selected, err := c.resolveColumns(table, columns)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, pipeline.ErrNoColumnsSelected
	}

	primary, fallback, err := c.enginesForRun()
	if err != nil {
		return nil, err
	}

	classifier := pipeline.NewClassifier(c.detector, pipeline.ClassifierConfig{
		ConfidenceThreshold: c.cfg.ConfidenceThreshold,
		FallbackLanguage:    c.cfg.FallbackLanguage,
		ForceSourceLanguage: c.cfg.ForceSourceLanguage,
		TargetLanguage:      c.cfg.TargetLanguage,
	})

	orchestrator, err := pipeline.NewOrchestrator(classifier, primary, fallback, c.log, pipeline.Options{
		TargetLanguage: c.cfg.TargetLanguage,
		ColumnSuffix:   c.mapper.Suffix(c.cfg.TargetLanguage),
		BatchSize:      c.cfg.BatchSize,
		Rules: pipeline.Rules{
			Empty:   c.cfg.SkipEmpty,
			Numeric: c.cfg.SkipNumeric,
			Dates:   c.cfg.SkipDates,
			English: c.cfg.SkipEnglish,
		},
		Progress: progress,
	})
	if err != nil {
		return nil, err
	}

	report, err := orchestrator.Run(ctx, table, selected)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	if err := tabular.WriteTable(report.Output, outputPath); err != nil {
		return nil, err
	}

	result := &RunResult{
		RunID:             runID,
		InputFile:         inputPath,
		OutputFile:        outputPath,
		Rows:              report.Rows,
		ColumnsTranslated: report.Columns,
		CellsTranslated:   report.Translated,
		CellsSkipped:      report.Skipped,
		CellsFailed:       report.Failed,
		CellsUnsupported:  report.Unsupported,
		Duration:          time.Since(start),
	}
	c.log.Info("run complete",
		zap.String("run_id", runID),
		zap.String("output", outputPath),
		zap.Int("translated", result.CellsTranslated),
		zap.Int("skipped", result.CellsSkipped),
		zap.Int("failed", result.CellsFailed),
		zap.Int("unsupported", result.CellsUnsupported),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// AnalyzeFile classifies a sample of every column without translating.
func (c *Coordinator) AnalyzeFile(inputPath string) ([]ColumnAnalysis, error) {
	table, err := tabular.ReadTable(inputPath)
	if err != nil {
		return nil, err
	}
	return c.analyzeTable(table), nil
}

// enginesForRun fixes engine selection for a whole run. The fallback
// engine only receives cells the selected engine cannot support.
func (c *Coordinator) enginesForRun() (primary, fallback pipeline.Engine, err error) {
	primary, err = c.registry.Get(c.cfg.Engine)
	if err != nil {
		return nil, nil, err
	}
	if !c.cfg.EnableFallbackEngine {
		return primary, nil, nil
	}

	other := argos.EngineID
	if c.cfg.Engine == argos.EngineID {
		other = nllb.EngineID
	}
	fallback, err = c.registry.Get(other)
	if err != nil {
		return nil, nil, err
	}
	return primary, fallback, nil
}

// resolveColumns maps requested column names onto the table, tolerating
// small typos via fuzzy matching. Empty request triggers auto-selection.
func (c *Coordinator) resolveColumns(table *tabular.Table, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return c.autoSelect(table), nil
	}

	var selected []string
	for _, name := range requested {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if table.HasColumn(name) {
			selected = append(selected, name)
			continue
		}

		ranks := fuzzy.RankFindNormalizedFold(name, table.Columns)
		if len(ranks) == 0 {
			return nil, fmt.Errorf("%w: %q", pipeline.ErrColumnNotFound, name)
		}
		sort.Sort(ranks)
		c.log.Warn("column matched fuzzily",
			zap.String("requested", name),
			zap.String("matched", ranks[0].Target))
		selected = append(selected, ranks[0].Target)
	}
	return selected, nil
}

// autoSelect picks columns whose sampled cells are predominantly foreign
// text, the way the original tool auto-selected columns for translation.
func (c *Coordinator) autoSelect(table *tabular.Table) []string {
	var selected []string
	for _, analysis := range c.analyzeTable(table) {
		if analysis.Type == "foreign_text" || analysis.Type == "mixed" {
			selected = append(selected, analysis.Name)
		}
	}
	c.log.Info("auto-selected columns", zap.Strings("columns", selected))
	return selected
}

func (c *Coordinator) analyzeTable(table *tabular.Table) []ColumnAnalysis {
	classifier := pipeline.NewClassifier(c.detector, pipeline.ClassifierConfig{
		ConfidenceThreshold: c.cfg.ConfidenceThreshold,
		FallbackLanguage:    c.cfg.FallbackLanguage,
		TargetLanguage:      c.cfg.TargetLanguage,
	})
	rules := pipeline.Rules{
		Empty:   true,
		Numeric: c.cfg.SkipNumeric,
		Dates:   c.cfg.SkipDates,
		English: c.cfg.SkipEnglish,
	}

	sampleSize := c.cfg.AnalysisSampleSize
	if sampleSize <= 0 {
		sampleSize = 50
	}

	analyses := make([]ColumnAnalysis, 0, len(table.Columns))
	for _, col := range table.Columns {
		analyses = append(analyses, c.analyzeColumn(table, col, classifier, rules, sampleSize))
	}
	return analyses
}

func (c *Coordinator) analyzeColumn(table *tabular.Table, col string, classifier *pipeline.Classifier, rules pipeline.Rules, sampleSize int) ColumnAnalysis {
	analysis := ColumnAnalysis{Name: col}

	var (
		counts    = make(map[string]int) // coarse cell categories
		langVotes = make(map[string]int)
		langConf  = make(map[string]float64)
		sampled   int
	)

	idx := table.ColumnIndex(col)
	for row := 0; row < table.RowCount() && sampled < sampleSize; row++ {
		text := table.Rows[row][idx]
		if strings.TrimSpace(text) == "" {
			continue
		}
		sampled++
		if len(analysis.Samples) < 5 {
			analysis.Samples = append(analysis.Samples, text)
		}

		if decision, ok := rules.Evaluate(text); ok {
			counts[categorize(decision)]++
			continue
		}

		cls := classifier.Classify(pipeline.Cell{Ref: pipeline.CellRef{Row: row, Column: col}, Text: text})
		counts[categorize(cls.Decision)]++
		if cls.Decision == pipeline.DecisionTranslate {
			langVotes[cls.Language]++
			langConf[cls.Language] += cls.Confidence
		}
	}

	analysis.Sampled = sampled
	if sampled == 0 {
		analysis.Type = "empty"
		return analysis
	}

	analysis.Type = dominantType(counts, sampled)
	for code, votes := range langVotes {
		if votes > langVotes[analysis.DominantLanguage] || analysis.DominantLanguage == "" {
			analysis.DominantLanguage = code
		}
	}
	if analysis.DominantLanguage != "" {
		analysis.LanguageName = c.mapper.Name(analysis.DominantLanguage)
		analysis.Confidence = langConf[analysis.DominantLanguage] / float64(langVotes[analysis.DominantLanguage])
	}
	return analysis
}

func categorize(d pipeline.Decision) string {
	switch d {
	case pipeline.DecisionSkipNumeric:
		return "numeric"
	case pipeline.DecisionSkipDate:
		return "date"
	case pipeline.DecisionSkipEnglish, pipeline.DecisionLowConfidence:
		return "english"
	case pipeline.DecisionTranslate:
		return "foreign_text"
	default:
		return "other"
	}
}

// dominantType labels a column by its majority cell category; anything
// without a two-thirds majority is "mixed".
func dominantType(counts map[string]int, sampled int) string {
	best, bestCount := "mixed", 0
	for category, count := range counts {
		if count > bestCount {
			best, bestCount = category, count
		}
	}
	if bestCount*3 >= sampled*2 {
		return best
	}
	return "mixed"
}

func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_translated" + ext
}
