package nllb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablingo/tablingo/pkg/pipeline"
)

type recordingBackend struct {
	pairs []string
}

func (b *recordingBackend) Translate(_ context.Context, text, source, target string) (string, error) {
	b.pairs = append(b.pairs, source+">"+target)
	return "translated " + text, nil
}

func TestEngineDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://127.0.0.1:7301", cfg.Endpoint)
	assert.Equal(t, "nllb-200-distilled-600M", cfg.ModelID)
	assert.Equal(t, 16, cfg.MaxBatchSize)
}

func TestEngineCoversWholeTable(t *testing.T) {
	engine := NewWithBackend(Config{}, &recordingBackend{})
	assert.Equal(t, EngineID, engine.Name())
	assert.Equal(t, 16, engine.MaxBatchSize())

	assert.True(t, engine.Supports("rus_Cyrl"))
	assert.True(t, engine.Supports("vie_Latn"))
	assert.True(t, engine.Supports("srp_Cyrl"))
	assert.False(t, engine.Supports("jav_Java"))
	assert.False(t, engine.Supports("unknown"))
}

func TestEnginePassesInternalCodes(t *testing.T) {
	backend := &recordingBackend{}
	engine := NewWithBackend(Config{MaxBatchSize: 4}, backend)

	results, err := engine.TranslateBatch(context.Background(), []pipeline.TranslationUnit{
		{
			Cell:   pipeline.CellRef{Row: 0, Column: "comment"},
			Text:   "Отличный продукт!",
			Source: "rus_Cyrl",
			Target: "eng_Latn",
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "translated Отличный продукт!", results[0].Text)
	assert.Equal(t, []string{"rus_Cyrl>eng_Latn"}, backend.pairs)
}
