package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tablingo/tablingo/internal/translator"
	"github.com/tablingo/tablingo/pkg/langid"
)

// printLanguages renders the fixed language table.
func printLanguages() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Language", "Code", "ISO 639-1", "Family", "Engines"})

	mapper := langid.NewMapper()
	for _, lang := range mapper.All() {
		engines := "nllb"
		if lang.ArgosSupported {
			engines = "nllb, argos"
		}
		t.AppendRow(table.Row{lang.Name, lang.Code, lang.ISO1, lang.Family, engines})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Printf("Total: %d languages\n", len(mapper.All()))
}

// runAnalyze prints the per-column detection summary without translating.
func runAnalyze(coordinator *translator.Coordinator, inputPath string) error {
	analyses, err := coordinator.AnalyzeFile(inputPath)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Column", "Type", "Language", "Confidence", "Sampled", "Sample"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Sample", WidthMax: 40, WidthMaxEnforcer: text.Trim},
	})

	for _, a := range analyses {
		language := "-"
		confidence := "-"
		if a.DominantLanguage != "" {
			language = fmt.Sprintf("%s (%s)", a.LanguageName, a.DominantLanguage)
			confidence = fmt.Sprintf("%.2f", a.Confidence)
		}
		sample := ""
		if len(a.Samples) > 0 {
			sample = a.Samples[0]
		}
		t.AppendRow(table.Row{a.Name, a.Type, language, confidence, a.Sampled, sample})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	var translatable []string
	for _, a := range analyses {
		if a.Type == "foreign_text" || a.Type == "mixed" {
			translatable = append(translatable, a.Name)
		}
	}
	if len(translatable) > 0 {
		fmt.Printf("Would translate: %s\n", strings.Join(translatable, ", "))
	} else {
		fmt.Println("Nothing to translate.")
	}
	return nil
}
