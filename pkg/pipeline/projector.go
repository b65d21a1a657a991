package pipeline

import (
	"fmt"

	"github.com/tablingo/tablingo/pkg/tabular"
)

// Error markers written to derived cells in place of a translation. They
// are distinguishable from legitimate cell content so downstream consumers
// can tell "nothing to translate" from "translation failed".
const (
	MarkerFailed    = "[[translation failed]]"
	MarkerMalformed = "[[malformed cell]]"
)

// MarkerUnsupported renders the per-cell marker for a language no engine
// covers.
func MarkerUnsupported(code string) string {
	return fmt.Sprintf("[[unsupported language: %s]]", code)
}

// PlanEntry places one derived column immediately to the right of its
// source. Position is the insertion index relative to the table before any
// derived columns were inserted.
type PlanEntry struct {
	Source   string
	Derived  string
	Position int
}

// ColumnPlan is the deterministic output layout for a run. It is computed
// once, before any classification begins, and never changes mid-run.
type ColumnPlan struct {
	Entries []PlanEntry
}

// Plan computes the output layout for the selected source columns. Each
// selected column gets one derived column named "<source>_<suffix>"
// directly to its right; unselected columns keep their positions, and the
// mutual left-to-right order of all original columns is preserved.
func Plan(columns []string, selected []string, suffix string) (*ColumnPlan, error) {
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		found := false
		for _, col := range columns {
			if col == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		want[name] = true
	}
	if len(want) == 0 {
		return nil, ErrNoColumnsSelected
	}

	taken := make(map[string]bool, len(columns))
	for _, col := range columns {
		taken[col] = true
	}

	plan := &ColumnPlan{}
	for i, col := range columns {
		if !want[col] {
			continue
		}
		derived := col + "_" + suffix
		for n := 2; taken[derived]; n++ {
			derived = fmt.Sprintf("%s_%s_%d", col, suffix, n)
		}
		taken[derived] = true
		plan.Entries = append(plan.Entries, PlanEntry{
			Source:   col,
			Derived:  derived,
			Position: i + 1,
		})
	}
	return plan, nil
}

// Sources returns the planned source columns in output order.
func (p *ColumnPlan) Sources() []string {
	sources := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		sources[i] = e.Source
	}
	return sources
}

// Assemble builds the output table from the original table, the plan, and
// the per-cell classifications and translation results. Results are keyed
// by cell reference, so assembly is independent of batch or completion
// order. Every input row yields exactly one output row; no cell is ever
// silently dropped.
func Assemble(
	original *tabular.Table,
	plan *ColumnPlan,
	classifications map[CellRef]ClassificationResult,
	results map[CellRef]TranslationResult,
) *tabular.Table {
	derivedAfter := make(map[string]string, len(plan.Entries))
	for _, e := range plan.Entries {
		derivedAfter[e.Source] = e.Derived
	}

	var columns []string
	for _, col := range original.Columns {
		columns = append(columns, col)
		if derived, ok := derivedAfter[col]; ok {
			columns = append(columns, derived)
		}
	}

	out := tabular.NewTable(columns)
	for i, row := range original.Rows {
		outRow := make([]string, 0, len(columns))
		for j, col := range original.Columns {
			outRow = append(outRow, row[j])
			if _, ok := derivedAfter[col]; !ok {
				continue
			}
			ref := CellRef{Row: i, Column: col}
			outRow = append(outRow, deriveCell(row[j], classifications[ref], results[ref]))
		}
		out.Rows = append(out.Rows, outRow)
	}
	return out
}

func deriveCell(original string, cls ClassificationResult, res TranslationResult) string {
	switch cls.Decision {
	case DecisionTranslate:
		if res.Err != nil {
			return MarkerFailed
		}
		return res.Text
	case DecisionUnsupported:
		return MarkerUnsupported(cls.Language)
	case DecisionMalformed:
		return MarkerMalformed
	case DecisionFailed:
		return MarkerFailed
	default:
		// Skip decisions reproduce the input unchanged.
		return original
	}
}
