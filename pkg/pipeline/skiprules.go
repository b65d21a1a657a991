package pipeline

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Rules configures the skip-rule evaluator per run. Each switch enables one
// predicate; the evaluation order is fixed regardless of configuration:
// empty, numeric, date, already-English. Numeric and date checks must run
// before language classification so the classifier never sees
// uninformative text.
type Rules struct {
	Empty   bool
	Numeric bool
	Dates   bool
	English bool
}

// DefaultRules enables every skip rule.
func DefaultRules() Rules {
	return Rules{Empty: true, Numeric: true, Dates: true, English: true}
}

// Evaluate applies the rules in fixed order, first match wins. The second
// return value is false when no rule fires and the cell proceeds to
// classification.
func (r Rules) Evaluate(text string) (Decision, bool) {
	trimmed := strings.TrimSpace(text)

	if r.Empty && trimmed == "" {
		return DecisionSkipEmpty, true
	}
	if r.Numeric && isNumeric(trimmed) {
		return DecisionSkipNumeric, true
	}
	if r.Dates && isDate(trimmed) {
		return DecisionSkipDate, true
	}
	if r.English && looksEnglish(trimmed) {
		return DecisionSkipEnglish, true
	}
	return "", false
}

// isNumeric accepts a locale-agnostic numeric grammar: optional sign,
// digits with dot, comma or space grouping, optional decimal part and
// trailing percent sign.
func isNumeric(s string) bool {
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}

	// Locale variants: strip grouping, normalize a decimal comma.
	t := strings.NewReplacer(" ", "", "\u00a0", "").Replace(s)
	lastComma := strings.LastIndexByte(t, ',')
	lastDot := strings.LastIndexByte(t, '.')
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			t = strings.ReplaceAll(t, ".", "")
			t = strings.Replace(t, ",", ".", 1)
		} else {
			t = strings.ReplaceAll(t, ",", "")
		}
	case strings.Count(t, ",") == 1:
		t = strings.Replace(t, ",", ".", 1)
	case lastComma >= 0:
		t = strings.ReplaceAll(t, ",", "")
	}
	_, err := strconv.ParseFloat(t, 64)
	return err == nil
}

// dateLayouts is the small set of common date grammars the evaluator
// recognizes. First parse wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"02/01/2006",
	"01/02/2006",
	"02.01.2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

func isDate(s string) bool {
	if s == "" || len(s) > 35 {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// englishLexicon holds high-frequency English function words. One hit in a
// cell composed entirely of Basic Latin letters is treated as
// already-English; Latin-scripted foreign text (Bonjour, Hola) carries
// none of these and falls through to the classifier.
var englishLexicon = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an and are as at be been but by can could did do does for from " +
			"had has have he her his how i if in is it its me my no not of on " +
			"or our she should so some that the their them they this those to " +
			"was we were what when where which who why will with would you your " +
			"yes hello hi thanks thank please okay ok good very",
	) {
		englishLexicon[w] = struct{}{}
	}
}

func looksEnglish(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if r > unicode.MaxASCII {
				return false
			}
		}
	}
	if !hasLetter {
		return false
	}

	for _, word := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if _, ok := englishLexicon[word]; ok {
			return true
		}
	}
	return false
}
