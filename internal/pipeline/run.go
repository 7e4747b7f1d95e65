// Package pipeline provides the high-level orchestration for a radar run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/juanvillada/radarsci/internal/europepmc"
	"github.com/juanvillada/radarsci/internal/journals"
	"github.com/juanvillada/radarsci/internal/observability"
	"github.com/juanvillada/radarsci/internal/relevance"
	"github.com/juanvillada/radarsci/internal/selection"
	"github.com/juanvillada/radarsci/internal/types"
)

// Progress step names attached to events.
const (
	StepJournalFetch = "journal_fetch"
	StepScoring      = "relevance_scoring"
	StepFiltering    = "post_filter"
	StepSelection    = "selection"
)

// Progress event categories.
const (
	CategorySearch    = "search"
	CategoryRelevance = "relevance"
	CategorySelection = "selection"
)

// ProgressEvent represents a progress update during a radar run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the radar
type Options struct {
	Keywords   []string
	Sources    []types.Source
	DaysBack   int
	Limit      int
	Sort       types.SortMode
	Coverage   types.CoverageFilter
	Format     types.OutputFormat
	BaseURL    string
	Timeout    time.Duration
	Contact    string
	Verbose    bool
	OnProgress ProgressCallback
}

// Result holds the outcome of a radar run
type Result struct {
	Articles      []*types.Article
	Keywords      []string
	JournalNames  []string
	EmptyJournals []string
	Options       map[string]string
	RunID         string
	Reference     time.Time
}

// ErrNoKeywords indicates that no usable keyword was provided.
var ErrNoKeywords = fmt.Errorf("at least one keyword is required")

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run orchestrates the full radar pipeline: concurrent journal searches,
// relevance scoring, post-filtering, and selection.
func Run(ctx context.Context, opts Options) (*Result, error) {
	keywords := cleanKeywords(opts.Keywords)
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}
	if len(opts.Sources) == 0 {
		return nil, journals.ErrNoRemainingSources
	}

	printer := observability.NewPrinter(os.Stdout)

	runID := uuid.New().String()
	reference := time.Now().UTC()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run %s started at %s\n", runID, reference.Format(time.RFC3339))
	}

	fmt.Printf("Step 1/4: Searching %d journal(s) on Europe PMC...\n", len(opts.Sources))
	client := europepmc.NewClient(&europepmc.Options{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
		Contact: opts.Contact,
	})
	fetcher := europepmc.NewFetcher(client)
	results, err := fetcher.Collect(ctx, opts.Sources, keywords, opts.DaysBack, opts.Limit, reference,
		func(result europepmc.FetchResult) {
			noun := "candidates"
			if len(result.Articles) == 1 {
				noun = "candidate"
			}
			emitProgress(&opts, runID, StepJournalFetch, CategorySearch,
				fmt.Sprintf("%s: %d %s", result.Source.Name, len(result.Articles), noun), len(result.Articles))
		})
	if err != nil {
		return nil, fmt.Errorf("journal search failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintFetchSummary(results)
	}

	counts := make(map[string]int, len(results))
	pool := make([]*types.Article, 0)
	for _, result := range results {
		counts[result.Source.Name] += len(result.Articles)
		pool = append(pool, result.Articles...)
	}

	journalNames := make([]string, 0, len(opts.Sources))
	emptyJournals := make([]string, 0)
	for _, source := range opts.Sources {
		journalNames = append(journalNames, source.Name)
		if counts[source.Name] == 0 {
			emptyJournals = append(emptyJournals, source.Name)
		}
	}

	fmt.Printf("Step 2/4: Scoring %d candidate article(s)...\n", len(pool))
	for _, article := range pool {
		relevance.Score(article, keywords, opts.DaysBack, reference)
	}
	emitProgress(&opts, runID, StepScoring, CategoryRelevance,
		fmt.Sprintf("Scored %d candidate article(s)", len(pool)), nil)
	if opts.Verbose {
		printer.PrintScoredArticles(pool)
	}

	fmt.Printf("Step 3/4: Filtering candidates...\n")
	kept := Filter(pool, opts.DaysBack)
	emitProgress(&opts, runID, StepFiltering, CategoryRelevance,
		fmt.Sprintf("Kept %d of %d candidate article(s)", len(kept), len(pool)), nil)

	fmt.Printf("Step 4/4: Selecting up to %d article(s)...\n", opts.Limit)
	selected := selection.Select(kept, len(keywords), opts.Sort, opts.Coverage, opts.Limit)
	emitProgress(&opts, runID, StepSelection, CategorySelection,
		fmt.Sprintf("Selected %d article(s)", len(selected)), selected)
	if opts.Verbose {
		printer.PrintSelection(selected, len(keywords))
	}

	return &Result{
		Articles:      selected,
		Keywords:      keywords,
		JournalNames:  journalNames,
		EmptyJournals: emptyJournals,
		Options:       summarizeOptions(opts, len(opts.Sources)),
		RunID:         runID,
		Reference:     reference,
	}, nil
}

// cleanKeywords trims keywords and drops empty entries.
func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

// summarizeOptions builds the option map echoed in the report headers.
func summarizeOptions(opts Options, journalCount int) map[string]string {
	days := "all time"
	if opts.DaysBack > 0 {
		noun := "days"
		if opts.DaysBack == 1 {
			noun = "day"
		}
		days = fmt.Sprintf("last %d %s", opts.DaysBack, noun)
	}

	return map[string]string{
		"limit":         strconv.Itoa(opts.Limit),
		"days":          days,
		"sort":          titleFirst(string(opts.Sort)),
		"format":        strings.ToUpper(string(opts.Format)),
		"journal_count": strconv.Itoa(journalCount),
		"coverage":      string(opts.Coverage),
	}
}

func titleFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
