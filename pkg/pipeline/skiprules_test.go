package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesEvaluate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		text     string
		decision Decision
		skipped  bool
	}{
		{"empty", "", DecisionSkipEmpty, true},
		{"whitespace only", "   \t ", DecisionSkipEmpty, true},
		{"integer", "123", DecisionSkipNumeric, true},
		{"negative float", "-41.5", DecisionSkipNumeric, true},
		{"percent", "12.5%", DecisionSkipNumeric, true},
		{"decimal comma", "3,14", DecisionSkipNumeric, true},
		{"grouped thousands", "1,234,567", DecisionSkipNumeric, true},
		{"european grouping", "1.234.567,89", DecisionSkipNumeric, true},
		{"space grouping", "1 234 567", DecisionSkipNumeric, true},
		{"iso date", "2024-01-01", DecisionSkipDate, true},
		{"slash date", "01/02/2024", DecisionSkipDate, true},
		{"written date", "Jan 2, 2024", DecisionSkipDate, true},
		{"datetime", "2024-01-01 10:30:00", DecisionSkipDate, true},
		{"english greeting", "Hello", DecisionSkipEnglish, true},
		{"english sentence", "The product is good", DecisionSkipEnglish, true},
		{"russian text", "Отличный продукт!", "", false},
		{"french latin text", "Produit magnifique", "", false},
		{"japanese text", "素晴らしい製品", "", false},
		{"product code", "XJ-900", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, skipped := rules.Evaluate(tt.text)
			assert.Equal(t, tt.skipped, skipped)
			if tt.skipped {
				assert.Equal(t, tt.decision, decision)
			}
		})
	}
}

func TestRulesEvaluateOrder(t *testing.T) {
	// Numeric and date checks run before the English heuristic, so a
	// date never reaches the lexicon even though it is pure ASCII.
	decision, skipped := DefaultRules().Evaluate("Jan 2, 2024")
	assert.True(t, skipped)
	assert.Equal(t, DecisionSkipDate, decision)
}

func TestRulesDisabled(t *testing.T) {
	t.Run("numbers pass through when numeric rule off", func(t *testing.T) {
		rules := Rules{Empty: true, Dates: true, English: true}
		_, skipped := rules.Evaluate("123")
		assert.False(t, skipped)
	})

	t.Run("english passes through when english rule off", func(t *testing.T) {
		rules := Rules{Empty: true, Numeric: true, Dates: true}
		_, skipped := rules.Evaluate("Hello")
		assert.False(t, skipped)
	})

	t.Run("empty still first when everything on", func(t *testing.T) {
		decision, skipped := DefaultRules().Evaluate("")
		assert.True(t, skipped)
		assert.Equal(t, DecisionSkipEmpty, decision)
	})
}
