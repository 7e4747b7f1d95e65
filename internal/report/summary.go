// Package report renders the radar results as a console report or an HTML file.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/juanvillada/radarsci/internal/types"
)

// plotWidth is the bar width of the journal summary charts.
const plotWidth = 18

// journalSummary aggregates the selected articles of one journal.
type journalSummary struct {
	Journal string
	Count   int
	Average float64
}

// summarizeByJournal aggregates per-journal counts and average scores,
// ordered by count, then average score, then journal name.
func summarizeByJournal(articles []*types.Article) []journalSummary {
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, article := range articles {
		counts[article.Journal]++
		sums[article.Journal] += article.RelevanceScore
	}

	rows := make([]journalSummary, 0, len(counts))
	for journal, count := range counts {
		rows = append(rows, journalSummary{
			Journal: journal,
			Count:   count,
			Average: sums[journal] / float64(count),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		if rows[i].Average != rows[j].Average {
			return rows[i].Average > rows[j].Average
		}
		return strings.ToLower(rows[i].Journal) < strings.ToLower(rows[j].Journal)
	})
	return rows
}

// asciiPlot renders one bar chart line per journal, bars scaled to the
// largest count. Journals with any articles keep at least one bar segment.
func asciiPlot(rows []journalSummary) []string {
	if len(rows) == 0 {
		return nil
	}

	maxCount := 0
	for _, row := range rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		length := 0
		if row.Count > 0 {
			length = int(math.Round(float64(row.Count) / float64(maxCount) * plotWidth))
			if length < 1 {
				length = 1
			}
		}
		bar := strings.Repeat("█", length)

		noun := "papers"
		if row.Count == 1 {
			noun = "paper"
		}
		lines = append(lines, fmt.Sprintf("%-22s | %-18s %d %s, avg %.2f",
			row.Journal, bar, row.Count, noun, row.Average))
	}
	return lines
}

// matchDescriptor phrases how many keywords the articles of a tier matched,
// e.g. "all 3 keywords matched" or "1–2 of 3 keywords matched".
func matchDescriptor(articles []*types.Article, totalKeywords int) string {
	if totalKeywords <= 0 {
		return "no keywords configured"
	}

	plural := "s"
	if totalKeywords == 1 {
		plural = ""
	}

	distinct := make(map[int]struct{})
	for _, article := range articles {
		count := article.MatchCount
		if count < 0 {
			count = 0
		}
		if count > totalKeywords {
			count = totalKeywords
		}
		distinct[count] = struct{}{}
	}

	if len(distinct) == 0 {
		return fmt.Sprintf("0 of %d keyword%s matched", totalKeywords, plural)
	}

	counts := make([]int, 0, len(distinct))
	for count := range distinct {
		counts = append(counts, count)
	}
	sort.Ints(counts)

	if len(counts) == 1 {
		count := counts[0]
		switch {
		case count >= totalKeywords:
			return fmt.Sprintf("all %d keyword%s matched", totalKeywords, plural)
		case count == 0:
			return fmt.Sprintf("0 of %d keyword%s matched", totalKeywords, plural)
		default:
			return fmt.Sprintf("%d of %d keyword%s matched", count, totalKeywords, plural)
		}
	}

	return fmt.Sprintf("%d–%d of %d keyword%s matched",
		counts[0], counts[len(counts)-1], totalKeywords, plural)
}

// authorLine joins up to max author names, appending an et al. marker when
// more remain. The fallback is used when no authors are known.
func authorLine(authors []string, max int, fallback string) string {
	if len(authors) == 0 {
		return fallback
	}
	shown := authors
	if len(shown) > max {
		shown = shown[:max]
	}
	line := strings.Join(shown, ", ")
	if len(authors) > max {
		line += ", et al."
	}
	return line
}
