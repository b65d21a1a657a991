package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// linguaLanguages is the detection alphabet, restricted to the fixed code
// table so that a detected language always maps into the internal space.
var linguaLanguages = []lingua.Language{
	lingua.Arabic, lingua.Azerbaijani, lingua.Bengali, lingua.Bulgarian,
	lingua.Catalan, lingua.Chinese, lingua.Croatian, lingua.Czech,
	lingua.Danish, lingua.Dutch, lingua.English, lingua.Estonian,
	lingua.Finnish, lingua.French, lingua.German, lingua.Greek,
	lingua.Hebrew, lingua.Hindi, lingua.Hungarian, lingua.Indonesian,
	lingua.Italian, lingua.Japanese, lingua.Korean, lingua.Latvian,
	lingua.Lithuanian, lingua.Malay, lingua.Persian, lingua.Polish,
	lingua.Portuguese, lingua.Romanian, lingua.Russian, lingua.Serbian,
	lingua.Slovak, lingua.Slovene, lingua.Spanish, lingua.Swedish,
	lingua.Thai, lingua.Turkish, lingua.Ukrainian, lingua.Vietnamese,
}

// Detector wraps the pre-trained language identification model. It is the
// dominant latency cost of a run; construct it once and share it.
type Detector struct {
	detector lingua.LanguageDetector
	mapper   *Mapper
}

// NewDetector builds a detector over the fixed language table.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaLanguages...).
			Build(),
		mapper: NewMapper(),
	}
}

// Detect returns the internal language code and a confidence in [0,1] for
// the given text. Text the model cannot place yields (Unknown, 0).
func (d *Detector) Detect(text string) (string, float64, error) {
	if strings.TrimSpace(text) == "" {
		return Unknown, 0, nil
	}

	values := d.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return Unknown, 0, nil
	}

	top := values[0]
	iso1 := strings.ToLower(top.Language().IsoCode639_1().String())
	code, ok := d.mapper.ToInternal(iso1)
	if !ok {
		return Unknown, 0, nil
	}
	return code, top.Value(), nil
}
