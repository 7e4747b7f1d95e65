package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/juanvillada/radarsci/internal/coverage"
	"github.com/juanvillada/radarsci/internal/types"
)

// journalsPerLine controls how many journal labels share one console line.
const journalsPerLine = 4

// Data carries everything the report renderers need.
type Data struct {
	Articles     []*types.Article
	Keywords     []string
	JournalNames []string
	Options      map[string]string
	Generated    time.Time
}

// Console writes the styled terminal report: run summary, searched journals,
// per-tier coverage charts, and one article table per coverage tier.
func Console(w io.Writer, data *Data) error {
	banner := color.New(color.FgGreen, color.Bold)
	bullet := color.New(color.FgCyan)
	journals := color.New(color.FgMagenta)
	section := color.New(color.FgCyan, color.Bold)
	tier := color.New(color.FgMagenta, color.Bold)
	chart := color.New(color.FgGreen)
	notice := color.New(color.FgYellow)

	banner.Fprintln(w, "RadarSci — a radar for scientific literature")

	quoted := make([]string, len(data.Keywords))
	for i, keyword := range data.Keywords {
		quoted[i] = fmt.Sprintf("%q", keyword)
	}
	bullet.Fprintf(w, "✦ Keywords: %s\n", strings.Join(quoted, ", "))
	bullet.Fprintf(w, "✦ Days window: %s\n", optionValue(data.Options, "days", "n/a"))
	bullet.Fprintf(w, "✦ Limit: %s\n", optionValue(data.Options, "limit", "n/a"))
	bullet.Fprintf(w, "✦ Sort: %s\n", optionValue(data.Options, "sort", "score"))
	bullet.Fprintf(w, "✦ Coverage: %s\n", titleFirst(optionValue(data.Options, "coverage", "all")))

	journalCount := optionValue(data.Options, "journal_count", strconv.Itoa(len(data.JournalNames)))
	journals.Fprintf(w, "✦ Journals searched (%s)\n", journalCount)
	for _, line := range journalLines(data.JournalNames, journalHitSet(data.Articles)) {
		journals.Fprintf(w, "    %s\n", line)
	}
	fmt.Fprintln(w)

	if len(data.Articles) == 0 {
		notice.Fprintln(w, "No papers matched the filters.")
		return nil
	}

	totalKeywords := len(data.Keywords)
	buckets := coverage.Group(data.Articles, totalKeywords)

	section.Fprintln(w, "Coverage summary")
	for _, bucket := range buckets {
		lines := asciiPlot(summarizeByJournal(bucket.Articles))
		if len(lines) == 0 {
			continue
		}
		tier.Fprintf(w, "%s (%s)\n", bucket.Tier.Title(), matchDescriptor(bucket.Articles, totalKeywords))
		for _, line := range lines {
			chart.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	for _, bucket := range buckets {
		section.Fprintf(w, "%s (%s)\n", bucket.Tier.Title(), matchDescriptor(bucket.Articles, totalKeywords))
		if err := renderArticleTable(w, bucket.Articles); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// renderArticleTable prints one coverage tier of articles as a table.
func renderArticleTable(w io.Writer, articles []*types.Article) error {
	table := newTable(w, []string{"Journal", "Title", "Date", "RadarSci score", "Days ago", "Authors"})
	rows := make([][]string, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, []string{
			article.Journal,
			displayTitle(article),
			article.FormattedDate(),
			fmt.Sprintf("%.2f", article.RelevanceScore),
			ageLabel(article, "—"),
			authorLine(article.Authors, 4, "—"),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build article table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render article table: %w", err)
	}
	return nil
}

// journalLines labels journals that produced selected articles with brackets
// and folds the list into lines of a few labels each.
func journalLines(names []string, hits map[string]struct{}) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		if _, ok := hits[name]; ok {
			labels[i] = "[" + name + "]"
		} else {
			labels[i] = name
		}
	}

	lines := make([]string, 0, (len(labels)+journalsPerLine-1)/journalsPerLine)
	for start := 0; start < len(labels); start += journalsPerLine {
		end := start + journalsPerLine
		if end > len(labels) {
			end = len(labels)
		}
		lines = append(lines, strings.Join(labels[start:end], " | "))
	}
	return lines
}

func journalHitSet(articles []*types.Article) map[string]struct{} {
	hits := make(map[string]struct{}, len(articles))
	for _, article := range articles {
		hits[article.Journal] = struct{}{}
	}
	return hits
}

func optionValue(options map[string]string, key, fallback string) string {
	if value, ok := options[key]; ok && value != "" {
		return value
	}
	return fallback
}

func titleFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func displayTitle(article *types.Article) string {
	title := strings.TrimSpace(article.Title)
	if title == "" {
		return "Untitled"
	}
	return title
}

func ageLabel(article *types.Article, unknown string) string {
	if article.AgeDays == nil {
		return unknown
	}
	return strconv.Itoa(*article.AgeDays)
}
