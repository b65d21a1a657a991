// Package langid holds the fixed language code tables shared by the
// detection and translation layers. The internal code space is Engine-A
// native (NLLB-style codes such as "rus_Cyrl"); Engine B speaks ISO 639-1
// and goes through the Mapper.
package langid

import "strings"

// Unknown is the code assigned when detection cannot name a language.
const Unknown = "unknown"

// Language describes one entry of the fixed code table.
type Language struct {
	// Name is the human-readable English name.
	Name string

	// Code is the internal (NLLB-style) language code.
	Code string

	// ISO1 is the two-letter ISO 639-1 code used by Engine B.
	ISO1 string

	// Family is the language family, shown in --list-languages output.
	Family string

	// ArgosSupported marks languages covered by the lightweight engine.
	ArgosSupported bool
}

// languages is the fixed table. Order is alphabetical by name; the set is
// the intersection of what the detection model and at least one engine can
// handle.
var languages = []Language{
	{Name: "Arabic", Code: "arb_Arab", ISO1: "ar", Family: "Afro-Asiatic", ArgosSupported: true},
	{Name: "Azerbaijani", Code: "azj_Latn", ISO1: "az", Family: "Turkic", ArgosSupported: true},
	{Name: "Bengali", Code: "ben_Beng", ISO1: "bn", Family: "Indo-European", ArgosSupported: false},
	{Name: "Bulgarian", Code: "bul_Cyrl", ISO1: "bg", Family: "Indo-European", ArgosSupported: false},
	{Name: "Catalan", Code: "cat_Latn", ISO1: "ca", Family: "Indo-European", ArgosSupported: true},
	{Name: "Chinese", Code: "zho_Hans", ISO1: "zh", Family: "Sino-Tibetan", ArgosSupported: true},
	{Name: "Croatian", Code: "hrv_Latn", ISO1: "hr", Family: "Indo-European", ArgosSupported: false},
	{Name: "Czech", Code: "ces_Latn", ISO1: "cs", Family: "Indo-European", ArgosSupported: true},
	{Name: "Danish", Code: "dan_Latn", ISO1: "da", Family: "Indo-European", ArgosSupported: true},
	{Name: "Dutch", Code: "nld_Latn", ISO1: "nl", Family: "Indo-European", ArgosSupported: true},
	{Name: "English", Code: "eng_Latn", ISO1: "en", Family: "Indo-European", ArgosSupported: true},
	{Name: "Estonian", Code: "est_Latn", ISO1: "et", Family: "Uralic", ArgosSupported: false},
	{Name: "Finnish", Code: "fin_Latn", ISO1: "fi", Family: "Uralic", ArgosSupported: true},
	{Name: "French", Code: "fra_Latn", ISO1: "fr", Family: "Indo-European", ArgosSupported: true},
	{Name: "German", Code: "deu_Latn", ISO1: "de", Family: "Indo-European", ArgosSupported: true},
	{Name: "Greek", Code: "ell_Grek", ISO1: "el", Family: "Indo-European", ArgosSupported: true},
	{Name: "Hebrew", Code: "heb_Hebr", ISO1: "he", Family: "Afro-Asiatic", ArgosSupported: true},
	{Name: "Hindi", Code: "hin_Deva", ISO1: "hi", Family: "Indo-European", ArgosSupported: true},
	{Name: "Hungarian", Code: "hun_Latn", ISO1: "hu", Family: "Uralic", ArgosSupported: true},
	{Name: "Indonesian", Code: "ind_Latn", ISO1: "id", Family: "Austronesian", ArgosSupported: true},
	{Name: "Italian", Code: "ita_Latn", ISO1: "it", Family: "Indo-European", ArgosSupported: true},
	{Name: "Japanese", Code: "jpn_Jpan", ISO1: "ja", Family: "Japonic", ArgosSupported: true},
	{Name: "Korean", Code: "kor_Hang", ISO1: "ko", Family: "Koreanic", ArgosSupported: true},
	{Name: "Latvian", Code: "lav_Latn", ISO1: "lv", Family: "Indo-European", ArgosSupported: false},
	{Name: "Lithuanian", Code: "lit_Latn", ISO1: "lt", Family: "Indo-European", ArgosSupported: false},
	{Name: "Malay", Code: "zsm_Latn", ISO1: "ms", Family: "Austronesian", ArgosSupported: false},
	{Name: "Persian", Code: "pes_Arab", ISO1: "fa", Family: "Indo-European", ArgosSupported: true},
	{Name: "Polish", Code: "pol_Latn", ISO1: "pl", Family: "Indo-European", ArgosSupported: true},
	{Name: "Portuguese", Code: "por_Latn", ISO1: "pt", Family: "Indo-European", ArgosSupported: true},
	{Name: "Romanian", Code: "ron_Latn", ISO1: "ro", Family: "Indo-European", ArgosSupported: false},
	{Name: "Russian", Code: "rus_Cyrl", ISO1: "ru", Family: "Indo-European", ArgosSupported: true},
	{Name: "Serbian", Code: "srp_Cyrl", ISO1: "sr", Family: "Indo-European", ArgosSupported: false},
	{Name: "Slovak", Code: "slk_Latn", ISO1: "sk", Family: "Indo-European", ArgosSupported: true},
	{Name: "Slovenian", Code: "slv_Latn", ISO1: "sl", Family: "Indo-European", ArgosSupported: false},
	{Name: "Spanish", Code: "spa_Latn", ISO1: "es", Family: "Indo-European", ArgosSupported: true},
	{Name: "Swedish", Code: "swe_Latn", ISO1: "sv", Family: "Indo-European", ArgosSupported: true},
	{Name: "Thai", Code: "tha_Thai", ISO1: "th", Family: "Kra-Dai", ArgosSupported: true},
	{Name: "Turkish", Code: "tur_Latn", ISO1: "tr", Family: "Turkic", ArgosSupported: true},
	{Name: "Ukrainian", Code: "ukr_Cyrl", ISO1: "uk", Family: "Indo-European", ArgosSupported: true},
	{Name: "Vietnamese", Code: "vie_Latn", ISO1: "vi", Family: "Austroasiatic", ArgosSupported: false},
}

// Mapper translates between the internal code space and the ISO 639-1
// vocabulary. It is read-only after construction and safe for concurrent
// use.
type Mapper struct {
	byCode map[string]Language
	byISO1 map[string]Language
}

// NewMapper builds a mapper over the fixed table.
func NewMapper() *Mapper {
	m := &Mapper{
		byCode: make(map[string]Language, len(languages)),
		byISO1: make(map[string]Language, len(languages)),
	}
	for _, lang := range languages {
		m.byCode[lang.Code] = lang
		m.byISO1[lang.ISO1] = lang
	}
	return m
}

// All returns the full language table in display order.
func (m *Mapper) All() []Language {
	return append([]Language(nil), languages...)
}

// Lookup resolves an internal or ISO 639-1 code to its table entry.
func (m *Mapper) Lookup(code string) (Language, bool) {
	if lang, ok := m.byCode[code]; ok {
		return lang, true
	}
	lang, ok := m.byISO1[strings.ToLower(code)]
	return lang, ok
}

// ToISO1 converts an internal code to ISO 639-1. Unmapped codes fall back
// to the first two letters, matching the original tool's behaviour.
func (m *Mapper) ToISO1(code string) string {
	if lang, ok := m.Lookup(code); ok {
		return lang.ISO1
	}
	if len(code) >= 2 {
		return strings.ToLower(code[:2])
	}
	return code
}

// ToInternal converts an ISO 639-1 code to the internal code space.
func (m *Mapper) ToInternal(iso1 string) (string, bool) {
	lang, ok := m.byISO1[strings.ToLower(iso1)]
	if !ok {
		return "", false
	}
	return lang.Code, true
}

// IsKnown reports whether a code belongs to the fixed table.
func (m *Mapper) IsKnown(code string) bool {
	_, ok := m.Lookup(code)
	return ok
}

// Suffix derives the output column suffix for a target code:
// "eng_Latn" becomes "en", "fra_Latn" becomes "fr".
func (m *Mapper) Suffix(target string) string {
	if lang, ok := m.Lookup(target); ok {
		return lang.ISO1
	}
	if i := strings.IndexByte(target, '_'); i >= 2 {
		return strings.ToLower(target[:2])
	}
	return strings.ToLower(target)
}

// Name returns the display name for a code, or the code itself.
func (m *Mapper) Name(code string) string {
	if lang, ok := m.Lookup(code); ok {
		return lang.Name
	}
	return code
}
