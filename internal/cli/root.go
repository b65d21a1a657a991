package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tablingo/tablingo/internal/config"
	"github.com/tablingo/tablingo/internal/logger"
	"github.com/tablingo/tablingo/internal/translator"
)

var (
	cfgFile       string
	outputFile    string
	columnsFlag   string
	engineFlag    string
	targetLang    string
	forceLang     string
	fallbackLang  string
	threshold     float64
	batchSize     int
	noFallback    bool
	skipNumeric   bool
	skipDates     bool
	skipEnglish   bool
	skipEmpty     bool
	analyzeOnly   bool
	listLanguages bool
	debugMode     bool
	quietMode     bool
)

// NewRootCommand builds the tablingo command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablingo [flags] input_file",
		Short: "Offline CSV/Excel column translator with per-cell language detection",
		Long: `tablingo translates multilingual CSV/Excel columns into English (or any
configured target language), fully offline. Language is detected per cell,
skip rules keep numbers, dates and already-English text untouched, and two
interchangeable engines cover different speed/coverage trade-offs:

  - nllb:  broad language coverage (default)
  - argos: lightweight and fast, smaller language set

Translated columns are inserted immediately after their source columns
with a target-language suffix (description -> description_en).`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args: func(cmd *cobra.Command, args []string) error {
			if listLanguages {
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listLanguages {
				printLanguages()
				return nil
			}

			log := logger.NewLogger(debugMode, quietMode)
			defer func() {
				_ = log.Sync()
			}()

			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			coordinator, err := translator.NewCoordinator(cfg, log)
			if err != nil {
				return err
			}

			if analyzeOnly {
				return runAnalyze(coordinator, args[0])
			}
			return runTranslate(cmd, coordinator, args[0])
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default .tablingo.yaml)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default <input>_translated.<ext>)")
	rootCmd.Flags().StringVarP(&columnsFlag, "columns", "c", "", "comma-separated columns to translate (default: auto-select)")
	rootCmd.Flags().StringVarP(&engineFlag, "engine", "e", "", "translation engine: nllb or argos")
	rootCmd.Flags().StringVarP(&targetLang, "target-lang", "t", "", "target language code (default eng_Latn)")
	rootCmd.Flags().StringVarP(&forceLang, "force-lang", "l", "", "force source language for all cells (e.g. rus_Cyrl)")
	rootCmd.Flags().StringVar(&fallbackLang, "fallback-lang", "", "language assumed for low-confidence cells")
	rootCmd.Flags().Float64Var(&threshold, "threshold", 0, "detection confidence threshold in [0,1]")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "translation batch size cap")
	rootCmd.Flags().BoolVar(&noFallback, "no-engine-fallback", false, "disable rerouting unsupported languages to the other engine")
	rootCmd.Flags().BoolVar(&skipNumeric, "skip-numeric", true, "leave numeric cells untranslated")
	rootCmd.Flags().BoolVar(&skipDates, "skip-dates", true, "leave date cells untranslated")
	rootCmd.Flags().BoolVar(&skipEnglish, "skip-english", true, "leave already-English cells untranslated")
	rootCmd.Flags().BoolVar(&skipEmpty, "skip-empty", true, "leave empty cells untranslated")
	rootCmd.Flags().BoolVar(&analyzeOnly, "analyze", false, "analyze columns only, do not translate")
	rootCmd.Flags().BoolVar(&listLanguages, "list-languages", false, "list supported languages and exit")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "minimal output")

	return rootCmd
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("engine") {
		cfg.Engine = engineFlag
	}
	if cmd.Flags().Changed("target-lang") {
		cfg.TargetLanguage = targetLang
	}
	if cmd.Flags().Changed("force-lang") {
		cfg.ForceSourceLanguage = forceLang
	}
	if cmd.Flags().Changed("fallback-lang") {
		cfg.FallbackLanguage = fallbackLang
	}
	if cmd.Flags().Changed("threshold") {
		cfg.ConfidenceThreshold = threshold
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = batchSize
	}
	if cmd.Flags().Changed("no-engine-fallback") {
		cfg.EnableFallbackEngine = !noFallback
	}
	if cmd.Flags().Changed("skip-numeric") {
		cfg.SkipNumeric = skipNumeric
	}
	if cmd.Flags().Changed("skip-dates") {
		cfg.SkipDates = skipDates
	}
	if cmd.Flags().Changed("skip-english") {
		cfg.SkipEnglish = skipEnglish
	}
	if cmd.Flags().Changed("skip-empty") {
		cfg.SkipEmpty = skipEmpty
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = quietMode
	}
}

func runTranslate(cmd *cobra.Command, coordinator *translator.Coordinator, inputPath string) error {
	var columns []string
	if columnsFlag != "" {
		columns = strings.Split(columnsFlag, ",")
	}

	var bar *pterm.ProgressbarPrinter
	progress := func(done, total int) {
		if quietMode {
			return
		}
		if bar == nil {
			started, err := pterm.DefaultProgressbar.
				WithTotal(total).
				WithTitle("Translating").
				Start()
			if err != nil {
				return
			}
			bar = started
		}
		bar.Increment()
	}

	result, err := coordinator.TranslateFile(cmd.Context(), inputPath, outputFile, columns, progress)
	if bar != nil {
		_, _ = bar.Stop()
	}
	if err != nil {
		color.Red("translation failed: %v", err)
		return err
	}

	if !quietMode {
		color.Green("Done: %s", result.OutputFile)
		fmt.Printf("  rows: %d  columns: %s\n", result.Rows, strings.Join(result.ColumnsTranslated, ", "))
		fmt.Printf("  translated: %d  skipped: %d  failed: %d  unsupported: %d\n",
			result.CellsTranslated, result.CellsSkipped, result.CellsFailed, result.CellsUnsupported)
		fmt.Printf("  duration: %s\n", result.Duration.Round(10*time.Millisecond))
	}
	return nil
}
