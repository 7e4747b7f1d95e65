package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/juanvillada/radarsci/internal/config"
	"github.com/juanvillada/radarsci/internal/journals"
	"github.com/juanvillada/radarsci/internal/pipeline"
	"github.com/juanvillada/radarsci/internal/report"
	"github.com/juanvillada/radarsci/internal/types"
)

var radarCommand = &cobra.Command{
	Use:   "radar",
	Short: "Surface the most relevant recent papers for the chosen journals",
	Long: `Scans every selected journal on Europe PMC concurrently, scores the candidates
against your keywords, and renders the strongest matches as a console report or
a standalone HTML page.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRadarCmd,
}

var (
	radarConfigPath   string
	radarKeywords     []string
	radarJournals     []string
	radarSkipJournals []string
	radarSkipAlias    []string
	radarPreprints    bool
	radarLimit        int
	radarDays         int
	radarFormat       string
	radarOutput       string
	radarSort         string
	radarCoverage     string
	radarTimeout      int
	radarVerbose      bool
)

func init() {
	// Config file flag (processed first)
	radarCommand.Flags().StringVar(&radarConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	radarCommand.Flags().StringSliceVarP(&radarKeywords, "keyword", "k", []string{"metagenomics"}, "Keywords used to rank relevance (repeat for multiple terms)")
	radarCommand.Flags().StringSliceVarP(&radarJournals, "journal", "j", nil, "Journal key or name to query (repeat for more than one)")
	radarCommand.Flags().StringSliceVar(&radarSkipJournals, "skip-journal", nil, "Journal key or name to exclude (repeatable); useful with --journal all")
	radarCommand.Flags().StringSliceVar(&radarSkipAlias, "skip", nil, "Shorthand for --skip-journal")
	radarCommand.Flags().BoolVar(&radarPreprints, "preprints", false, "Include preprint servers (arXiv, bioRxiv)")
	radarCommand.Flags().IntVarP(&radarLimit, "limit", "n", 12, "Maximum number of papers to include in the final report")
	radarCommand.Flags().IntVarP(&radarDays, "days", "d", 30, "Only include papers published within the last N days (0 = all time)")
	radarCommand.Flags().StringVarP(&radarFormat, "format", "f", "cli", "Choose between CLI output or a minimalist HTML report (cli|web)")
	radarCommand.Flags().StringVarP(&radarOutput, "output", "o", "", "Path for the generated HTML when using --format web")
	radarCommand.Flags().StringVar(&radarSort, "sort", "score", "Order results by score, recency, or journal name")
	radarCommand.Flags().StringVar(&radarCoverage, "coverage", "all", "Limit results to 'full' coverage or include all coverage levels")
	radarCommand.Flags().IntVar(&radarTimeout, "timeout", 15, "HTTP timeout in seconds for Europe PMC requests")
	radarCommand.Flags().BoolVarP(&radarVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(radarCommand)
}

// normalizeKeywords trims keywords and drops empty entries.
func normalizeKeywords(keywords []string) ([]string, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("please provide at least one keyword")
	}
	return cleaned, nil
}

// buildSources resolves the journal labels and applies the skip filters.
func buildSources(cfg config.Config) ([]types.Source, error) {
	sources := journals.Resolve(cfg.Journals, cfg.Preprints)
	if len(cfg.SkipJournals) > 0 {
		sources = journals.ApplySkips(sources, cfg.SkipJournals)
	}
	if len(sources) == 0 {
		return nil, journals.ErrNoRemainingSources
	}
	return sources, nil
}

// radarDefaults mirrors the flag defaults for values left unset by the config file.
func radarDefaults() config.Config {
	return config.Config{
		Keywords: []string{"metagenomics"},
		Limit:    12,
		Days:     30,
		Sort:     "score",
		Coverage: "all",
		Format:   "cli",
		Timeout:  15,
	}
}

func runRadarCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if radarConfigPath != "" {
		loadedCfg, err := config.LoadConfig(radarConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if radarVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", radarConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("keyword") {
		cfg.Keywords = radarKeywords
	}
	if cmd.Flags().Changed("journal") {
		cfg.Journals = radarJournals
	}
	if cmd.Flags().Changed("skip-journal") || cmd.Flags().Changed("skip") {
		cfg.SkipJournals = append(append([]string{}, radarSkipJournals...), radarSkipAlias...)
	}
	if cmd.Flags().Changed("preprints") {
		cfg.Preprints = radarPreprints
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = radarLimit
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = radarFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = radarOutput
	}
	if cmd.Flags().Changed("sort") {
		cfg.Sort = radarSort
	}
	if cmd.Flags().Changed("coverage") {
		cfg.Coverage = radarCoverage
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = radarTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = radarVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(radarDefaults())
	if cmd.Flags().Changed("days") {
		// Applied after the merge so an explicit --days 0 keeps meaning all time
		cfg.Days = radarDays
	}

	// Step 4: Validate effective options
	if cfg.Limit < 1 || cfg.Limit > 100 {
		return fmt.Errorf("--limit must be between 1 and 100")
	}
	if cfg.Days < 0 {
		return fmt.Errorf("--days must be zero or positive")
	}

	keywords, err := normalizeKeywords(cfg.Keywords)
	if err != nil {
		return err
	}
	sortMode, err := types.ParseSortMode(cfg.Sort)
	if err != nil {
		return err
	}
	outputFormat, err := types.ParseOutputFormat(cfg.Format)
	if err != nil {
		return err
	}
	coverageFilter, err := types.ParseCoverageFilter(cfg.Coverage)
	if err != nil {
		return err
	}

	sources, err := buildSources(cfg)
	if err != nil {
		return err
	}

	// Contact can come from the config file or the RADARSCI_CONTACT env var
	contact := cfg.Contact
	if contact == "" {
		contact = os.Getenv("RADARSCI_CONTACT")
	}

	fmt.Printf("Scanning %d journal(s) for %s…\n", len(sources), strings.Join(keywords, ", "))

	result, err := pipeline.Run(ctx, pipeline.Options{
		Keywords: keywords,
		Sources:  sources,
		DaysBack: cfg.Days,
		Limit:    cfg.Limit,
		Sort:     sortMode,
		Coverage: coverageFilter,
		Format:   outputFormat,
		BaseURL:  cfg.BaseURL,
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
		Contact:  contact,
		Verbose:  cfg.Verbose,
		OnProgress: func(event pipeline.ProgressEvent) {
			if event.Step == pipeline.StepJournalFetch {
				fmt.Printf("  ✓ %s\n", event.Message)
			}
		},
	})
	if err != nil {
		return err
	}

	if cfg.Verbose && len(result.EmptyJournals) > 0 {
		fmt.Printf("[VERBOSE] No matches from: %s\n", strings.Join(result.EmptyJournals, ", "))
	}

	data := &report.Data{
		Articles:     result.Articles,
		Keywords:     result.Keywords,
		JournalNames: result.JournalNames,
		Options:      result.Options,
		Generated:    result.Reference,
	}

	if outputFormat == types.FormatWeb {
		destination := report.ResolveOutputPath(cfg.Output, result.Keywords, result.Reference)
		if err := report.WriteHTML(destination, data); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", destination)
		return nil
	}

	return report.Console(os.Stdout, data)
}
