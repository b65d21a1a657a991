package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablingo/tablingo/pkg/tabular"
)

func TestPlanInsertsDerivedColumnsAdjacent(t *testing.T) {
	columns := []string{"id", "description", "notes", "country"}
	plan, err := Plan(columns, []string{"description", "notes"}, "en")
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)

	assert.Equal(t, PlanEntry{Source: "description", Derived: "description_en", Position: 2}, plan.Entries[0])
	assert.Equal(t, PlanEntry{Source: "notes", Derived: "notes_en", Position: 3}, plan.Entries[1])
	assert.Equal(t, []string{"description", "notes"}, plan.Sources())
}

func TestPlanNameCollision(t *testing.T) {
	columns := []string{"comment", "comment_en"}
	plan, err := Plan(columns, []string{"comment"}, "en")
	require.NoError(t, err)
	assert.Equal(t, "comment_en_2", plan.Entries[0].Derived)
}

func TestPlanErrors(t *testing.T) {
	t.Run("unknown column", func(t *testing.T) {
		_, err := Plan([]string{"id"}, []string{"missing"}, "en")
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("nothing selected", func(t *testing.T) {
		_, err := Plan([]string{"id"}, nil, "en")
		assert.ErrorIs(t, err, ErrNoColumnsSelected)
	})
}

func TestAssembleColumnOrder(t *testing.T) {
	original := tabular.NewTable([]string{"id", "description", "notes", "country"})
	original.Rows = [][]string{{"1", "Bonjour", "Hola", "FR"}}

	plan, err := Plan(original.Columns, []string{"description", "notes"}, "en")
	require.NoError(t, err)

	classifications := map[CellRef]ClassificationResult{
		{Row: 0, Column: "description"}: {Decision: DecisionTranslate, Language: "fra_Latn"},
		{Row: 0, Column: "notes"}:       {Decision: DecisionTranslate, Language: "spa_Latn"},
	}
	results := map[CellRef]TranslationResult{
		{Row: 0, Column: "description"}: {Text: "Hello"},
		{Row: 0, Column: "notes"}:       {Text: "Hi"},
	}

	out := Assemble(original, plan, classifications, results)
	assert.Equal(t, []string{"id", "description", "description_en", "notes", "notes_en", "country"}, out.Columns)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, []string{"1", "Bonjour", "Hello", "Hola", "Hi", "FR"}, out.Rows[0])
}

func TestAssembleDerivedCellContent(t *testing.T) {
	original := tabular.NewTable([]string{"comment"})
	original.Rows = [][]string{
		{""},
		{"Отличный продукт!"},
		{"123"},
		{"2024-01-01"},
		{"Hello"},
		{"ꦱꦸꦒꦼꦁ"},
		{"garbled"},
		{"asdf qwer"},
	}

	plan, err := Plan(original.Columns, []string{"comment"}, "en")
	require.NoError(t, err)

	ref := func(row int) CellRef { return CellRef{Row: row, Column: "comment"} }
	classifications := map[CellRef]ClassificationResult{
		ref(0): {Decision: DecisionSkipEmpty},
		ref(1): {Decision: DecisionTranslate, Language: "rus_Cyrl"},
		ref(2): {Decision: DecisionSkipNumeric},
		ref(3): {Decision: DecisionSkipDate},
		ref(4): {Decision: DecisionSkipEnglish},
		ref(5): {Decision: DecisionUnsupported, Language: "jav_Java"},
		ref(6): {Decision: DecisionMalformed},
		ref(7): {Decision: DecisionLowConfidence, Language: "eng_Latn", Confidence: 0.4},
	}
	results := map[CellRef]TranslationResult{
		ref(1): {Text: "Excellent product!"},
	}

	out := Assemble(original, plan, classifications, results)
	derived := out.ColumnIndex("comment_en")
	require.GreaterOrEqual(t, derived, 0)

	assert.Equal(t, "", out.Rows[0][derived])
	assert.Equal(t, "Excellent product!", out.Rows[1][derived])
	assert.Equal(t, "123", out.Rows[2][derived])
	assert.Equal(t, "2024-01-01", out.Rows[3][derived])
	assert.Equal(t, "Hello", out.Rows[4][derived])
	assert.Equal(t, "[[unsupported language: jav_Java]]", out.Rows[5][derived])
	assert.Equal(t, "[[malformed cell]]", out.Rows[6][derived])
	assert.Equal(t, "asdf qwer", out.Rows[7][derived])
}

func TestAssembleFailedTranslation(t *testing.T) {
	original := tabular.NewTable([]string{"comment"})
	original.Rows = [][]string{{"Bonjour"}}

	plan, err := Plan(original.Columns, []string{"comment"}, "en")
	require.NoError(t, err)

	ref := CellRef{Row: 0, Column: "comment"}
	out := Assemble(original, plan,
		map[CellRef]ClassificationResult{ref: {Decision: DecisionFailed, Language: "fra_Latn"}},
		map[CellRef]TranslationResult{ref: {Err: assert.AnError}},
	)
	assert.Equal(t, MarkerFailed, out.Rows[0][out.ColumnIndex("comment_en")])
}
