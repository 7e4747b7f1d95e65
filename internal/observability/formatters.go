// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/juanvillada/radarsci/internal/coverage"
	"github.com/juanvillada/radarsci/internal/europepmc"
	"github.com/juanvillada/radarsci/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFetchSummary outputs the per-journal outcome of the search phase.
func (p *Printer) PrintFetchSummary(results []europepmc.FetchResult) {
	if len(results) == 0 {
		return
	}

	candidates := 0
	var sb strings.Builder
	for _, result := range results {
		if len(result.Articles) == 0 {
			sb.WriteString(fmt.Sprintf("· %s: no matches\n", result.Source.Name))
			continue
		}
		candidates += len(result.Articles)
		noun := "candidates"
		if len(result.Articles) == 1 {
			noun = "candidate"
		}
		sb.WriteString(fmt.Sprintf("✓ %s: %d %s\n", result.Source.Name, len(result.Articles), noun))
	}
	sb.WriteString(fmt.Sprintf("\nTotal candidates: %d", candidates))

	p.printBox("JOURNAL FETCH SUMMARY", sb.String())
}

// PrintScoredArticles outputs the top scored candidates before filtering.
func (p *Printer) PrintScoredArticles(articles []*types.Article) {
	if len(articles) == 0 {
		return
	}

	ranked := make([]*types.Article, len(articles))
	copy(ranked, articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates scored: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		article := ranked[i]
		title := strings.TrimSpace(article.Title)
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (matched %d)\n", article.RelevanceScore, article.MatchCount))
		sb.WriteString(fmt.Sprintf("    %s\n", article.Journal))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP SCORED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs the coverage tiers of the final selection.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSelection(selected []*types.Article, totalKeywords int) {
	if len(selected) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO ARTICLES SELECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, bucket := range coverage.Group(selected, totalKeywords) {
		noun := "articles"
		if len(bucket.Articles) == 1 {
			noun = "article"
		}
		sb.WriteString(fmt.Sprintf("• %s: %d %s\n", bucket.Tier.Title(), len(bucket.Articles), noun))
	}
	sb.WriteString(fmt.Sprintf("\nTotal selected: %d", len(selected)))

	p.printBox("SELECTED ARTICLES", sb.String())
}
