package langid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperLookup(t *testing.T) {
	m := NewMapper()

	lang, ok := m.Lookup("rus_Cyrl")
	require.True(t, ok)
	assert.Equal(t, "Russian", lang.Name)
	assert.Equal(t, "ru", lang.ISO1)

	lang, ok = m.Lookup("ru")
	require.True(t, ok)
	assert.Equal(t, "rus_Cyrl", lang.Code)

	_, ok = m.Lookup("xx")
	assert.False(t, ok)
}

func TestMapperRoundTrip(t *testing.T) {
	m := NewMapper()
	for _, lang := range m.All() {
		iso1 := m.ToISO1(lang.Code)
		assert.Equal(t, lang.ISO1, iso1, lang.Code)

		code, ok := m.ToInternal(iso1)
		require.True(t, ok, iso1)
		assert.Equal(t, lang.Code, code)
	}
}

func TestMapperToISO1Fallback(t *testing.T) {
	m := NewMapper()
	// Unmapped internal codes fall back to their first two letters.
	assert.Equal(t, "ja", m.ToISO1("jav_Java"))
	assert.Equal(t, "x", m.ToISO1("x"))
}

func TestMapperSuffix(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, "en", m.Suffix("eng_Latn"))
	assert.Equal(t, "fr", m.Suffix("fra_Latn"))
	assert.Equal(t, "zh", m.Suffix("zho_Hans"))
	assert.Equal(t, "zu", m.Suffix("zul_Latn"))
	assert.Equal(t, "de", m.Suffix("DE"))
}

func TestMapperName(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, "Japanese", m.Name("jpn_Jpan"))
	assert.Equal(t, "mystery", m.Name("mystery"))
}

func TestMapperIsKnown(t *testing.T) {
	m := NewMapper()
	assert.True(t, m.IsKnown("spa_Latn"))
	assert.True(t, m.IsKnown("es"))
	assert.False(t, m.IsKnown(Unknown))
}

func TestLanguageTableConsistency(t *testing.T) {
	m := NewMapper()
	all := m.All()
	require.Len(t, all, len(linguaLanguages))

	seenCode := make(map[string]bool)
	seenISO1 := make(map[string]bool)
	for _, lang := range all {
		assert.False(t, seenCode[lang.Code], "duplicate code %s", lang.Code)
		assert.False(t, seenISO1[lang.ISO1], "duplicate iso1 %s", lang.ISO1)
		seenCode[lang.Code] = true
		seenISO1[lang.ISO1] = true
		assert.Len(t, lang.ISO1, 2)
	}
	assert.True(t, seenCode["eng_Latn"])
}
