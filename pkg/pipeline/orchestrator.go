package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tablingo/tablingo/pkg/tabular"
)

// Options configures one orchestrated pass over a table.
type Options struct {
	// TargetLanguage is the internal code to translate into.
	TargetLanguage string

	// ColumnSuffix names derived columns ("en" yields "<source>_en").
	ColumnSuffix string

	// BatchSize caps batch sizes below the engine maximum. Zero means
	// use each engine's own maximum.
	BatchSize int

	// Rules is the skip-rule configuration for the run.
	Rules Rules

	// Progress, when set, is called after every finalized cell.
	Progress func(done, total int)
}

// Report summarizes one completed run.
type Report struct {
	Output      *tabular.Table
	Rows        int
	Columns     []string
	Translated  int
	Skipped     int
	Failed      int
	Unsupported int

	// Classifications holds the final per-cell records, keyed by cell.
	Classifications map[CellRef]ClassificationResult
}

// Orchestrator composes the skip rules, classifier, scheduler, engines and
// projector into one pass over a table. A single goroutine drives the run;
// the only internal concurrency is parallel batch submission across the two
// engine backends when capability fallback splits a run between them.
type Orchestrator struct {
	classifier *Classifier
	primary    Engine
	fallback   Engine // may be nil
	log        *zap.Logger
	opts       Options
}

// NewOrchestrator wires a run. fallback may be nil when capability fallback
// is disabled.
func NewOrchestrator(classifier *Classifier, primary, fallback Engine, log *zap.Logger, opts Options) (*Orchestrator, error) {
	if primary == nil {
		return nil, ErrNoEngine
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TargetLanguage == "" {
		opts.TargetLanguage = "eng_Latn"
	}
	if opts.ColumnSuffix == "" {
		opts.ColumnSuffix = "en"
	}
	return &Orchestrator{
		classifier: classifier,
		primary:    primary,
		fallback:   fallback,
		log:        log,
		opts:       opts,
	}, nil
}

// Run translates the selected columns of a table. Per-cell errors never
// abort the run; they surface as markers in the output and counters in the
// report. The returned error is non-nil only for run-fatal conditions
// (bad column selection, cancellation).
func (o *Orchestrator) Run(ctx context.Context, table *tabular.Table, selected []string) (*Report, error) {
	plan, err := Plan(table.Columns, selected, o.opts.ColumnSuffix)
	if err != nil {
		return nil, err
	}

	total := table.RowCount() * len(plan.Entries)
	done := 0
	tick := func() {
		done++
		if o.opts.Progress != nil {
			o.opts.Progress(done, total)
		}
	}

	classifications := make(map[CellRef]ClassificationResult, total)
	var units []TranslationUnit

	// Classification pass: column-major over the planned columns, row
	// order within each column, which fixes the deterministic cell read
	// order that batching later preserves.
	for _, source := range plan.Sources() {
		idx := table.ColumnIndex(source)
		for row := 0; row < table.RowCount(); row++ {
			cell := Cell{Ref: CellRef{Row: row, Column: source}, Text: table.Rows[row][idx]}

			if decision, ok := o.opts.Rules.Evaluate(cell.Text); ok {
				classifications[cell.Ref] = ClassificationResult{Cell: cell.Ref, Decision: decision}
				tick()
				continue
			}

			cls := o.classifier.Classify(cell)
			classifications[cell.Ref] = cls
			if cls.Decision != DecisionTranslate {
				tick()
				continue
			}
			units = append(units, TranslationUnit{
				Cell:   cell.Ref,
				Text:   cell.Text,
				Source: cls.Language,
				Target: o.opts.TargetLanguage,
			})
		}
	}

	routed, rejected := o.route(units)
	for _, unit := range rejected {
		cls := classifications[unit.Cell]
		cls.Decision = DecisionUnsupported
		classifications[unit.Cell] = cls
		tick()
	}

	results, runErr := o.dispatch(ctx, routed)
	for ref, res := range results {
		if res.Err != nil {
			cls := classifications[ref]
			cls.Decision = DecisionFailed
			classifications[ref] = cls
		}
		tick()
	}
	if runErr != nil {
		return nil, runErr
	}

	report := &Report{
		Output:          Assemble(table, plan, classifications, results),
		Rows:            table.RowCount(),
		Columns:         plan.Sources(),
		Classifications: classifications,
	}
	for _, cls := range classifications {
		switch {
		case cls.Decision.IsSkip():
			report.Skipped++
		case cls.Decision == DecisionUnsupported:
			report.Unsupported++
		case cls.Decision == DecisionFailed, cls.Decision == DecisionMalformed:
			report.Failed++
		case cls.Decision == DecisionTranslate:
			report.Translated++
		}
	}
	return report, nil
}

// route assigns each unit to an engine by capability. The selected engine
// is fixed for the run; a unit it does not support is rerouted to the
// alternate engine when available, otherwise rejected.
func (o *Orchestrator) route(units []TranslationUnit) (map[Engine][]TranslationUnit, []TranslationUnit) {
	routed := make(map[Engine][]TranslationUnit)
	var rejected []TranslationUnit

	for _, unit := range units {
		switch {
		case o.primary.Supports(unit.Source):
			routed[o.primary] = append(routed[o.primary], unit)
		case o.fallback != nil && o.fallback.Supports(unit.Source):
			o.log.Debug("capability fallback",
				zap.String("language", unit.Source),
				zap.String("engine", o.fallback.Name()))
			routed[o.fallback] = append(routed[o.fallback], unit)
		default:
			rejected = append(rejected, unit)
		}
	}
	return routed, rejected
}

// dispatch schedules and submits batches. When both engines carry work the
// two backends run in parallel; batches within one engine stay sequential.
// Results are keyed by cell reference, so completion order is irrelevant.
func (o *Orchestrator) dispatch(ctx context.Context, routed map[Engine][]TranslationUnit) (map[CellRef]TranslationResult, error) {
	results := make(map[CellRef]TranslationResult)
	if len(routed) == 0 {
		return results, nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		runErrs []error
	)

	for engine, units := range routed {
		limit := engine.MaxBatchSize()
		if o.opts.BatchSize > 0 && o.opts.BatchSize < limit {
			limit = o.opts.BatchSize
		}
		batches := Schedule(units, limit)

		wg.Add(1)
		go func(engine Engine, batches [][]TranslationUnit) {
			defer wg.Done()
			for _, batch := range batches {
				// A run may be aborted between batches; a batch
				// already submitted is allowed to finish.
				if ctx.Err() != nil {
					mu.Lock()
					runErrs = append(runErrs, ErrRunCancelled)
					mu.Unlock()
					return
				}
				batchResults := o.submit(ctx, engine, batch)
				mu.Lock()
				for _, res := range batchResults {
					results[res.Cell] = res
				}
				mu.Unlock()
			}
		}(engine, batches)
	}
	wg.Wait()

	if len(runErrs) > 0 {
		return results, runErrs[0]
	}
	return results, nil
}

// submit sends one batch to an engine. A batch-level failure (typically a
// resource error) is retried once at half the batch size; units still
// failing after that are marked failed individually. A unit that already
// reached this engine via capability fallback is never bounced back to the
// originally selected engine.
func (o *Orchestrator) submit(ctx context.Context, engine Engine, batch []TranslationUnit) []TranslationResult {
	results, err := engine.TranslateBatch(ctx, batch)
	if err == nil {
		return results
	}

	o.log.Warn("batch failed, retrying at half size",
		zap.String("engine", engine.Name()),
		zap.Int("batch_size", len(batch)),
		zap.Error(err))

	var out []TranslationResult
	for _, half := range splitBatch(batch) {
		halfResults, halfErr := engine.TranslateBatch(ctx, half)
		if halfErr != nil {
			for _, unit := range half {
				out = append(out, TranslationResult{Cell: unit.Cell, Err: halfErr})
			}
			continue
		}
		out = append(out, halfResults...)
	}
	return out
}

func splitBatch(batch []TranslationUnit) [][]TranslationUnit {
	if len(batch) <= 1 {
		return [][]TranslationUnit{batch}
	}
	mid := len(batch) / 2
	return [][]TranslationUnit{batch[:mid], batch[mid:]}
}
