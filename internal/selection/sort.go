// Package selection orders scored articles and assembles the bounded final list.
package selection

import (
	"sort"
	"strings"

	"github.com/juanvillada/radarsci/internal/types"
)

// unknownAge sorts articles without a publication date behind every dated one.
const unknownAge = 1_000_000

// ageValue returns the article age in days or the unknown-age sentinel.
func ageValue(article *types.Article) int {
	if article.AgeDays == nil {
		return unknownAge
	}
	return *article.AgeDays
}

// Sort returns a new slice ordered by the given mode. Score mode ranks by
// relevance with fresher articles first on ties; recency mode ranks by age
// with higher scores first on ties; journal mode groups alphabetically by
// journal with the best scored first within each. Sorting is stable.
func Sort(articles []*types.Article, mode types.SortMode) []*types.Article {
	ordered := append([]*types.Article(nil), articles...)

	switch mode {
	case types.SortRecency:
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if ageValue(a) != ageValue(b) {
				return ageValue(a) < ageValue(b)
			}
			if a.RelevanceScore != b.RelevanceScore {
				return a.RelevanceScore > b.RelevanceScore
			}
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		})
	case types.SortJournal:
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			journalA, journalB := strings.ToLower(a.Journal), strings.ToLower(b.Journal)
			if journalA != journalB {
				return journalA < journalB
			}
			if a.RelevanceScore != b.RelevanceScore {
				return a.RelevanceScore > b.RelevanceScore
			}
			return ageValue(a) < ageValue(b)
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := ordered[i], ordered[j]
			if a.RelevanceScore != b.RelevanceScore {
				return a.RelevanceScore > b.RelevanceScore
			}
			if ageValue(a) != ageValue(b) {
				return ageValue(a) < ageValue(b)
			}
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		})
	}

	return ordered
}
