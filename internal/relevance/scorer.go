// Package relevance scores fetched articles against the configured keywords.
package relevance

import (
	"math"
	"strings"
	"time"

	"github.com/juanvillada/radarsci/internal/types"
)

// Weights for the scoring components
const (
	titleHitWeight    = 6.0
	bodyHitWeight     = 2.5
	matchBonusWeight  = 4.0
	freshnessWeight   = 6.0
	decayWeight       = 4.0
	sourceHintDivisor = 10.0
)

// minRecencyWindow floors the freshness window so tight day filters do not
// collapse the recency component.
const minRecencyWindow = 30

// Score combines keyword matches, publication recency, and the source's own
// relevance hint into a single score rounded to two decimals. It stamps
// RelevanceScore, MatchCount, and AgeDays on the article and returns the score.
func Score(article *types.Article, keywords []string, recencyWindowDays int, reference time.Time) float64 {
	title := strings.ToLower(article.Title)
	text := strings.ToLower(article.Title + " " + article.Summary)

	score := 0.0
	matched := 0
	for _, keyword := range keywords {
		target := strings.TrimSpace(strings.ToLower(keyword))
		if target == "" {
			continue
		}

		titleHits := strings.Count(title, target)
		if titleHits > 0 {
			score += titleHitWeight * float64(titleHits)
		}

		// The body haystack includes the title, so title hits count twice.
		bodyHits := strings.Count(text, target)
		if bodyHits > 0 {
			score += bodyHitWeight * float64(bodyHits)
		}

		if titleHits > 0 || bodyHits > 0 {
			matched++
		}
	}

	if article.SourceRelevance != nil && *article.SourceRelevance != 0 {
		score += *article.SourceRelevance / sourceHintDivisor
	}

	if matched > 0 {
		score += matchBonusWeight * float64(matched)
	}

	article.AgeDays = ageInDays(article.PublishedAt, reference)

	if article.AgeDays != nil {
		age := *article.AgeDays
		window := recencyWindowDays
		if window < minRecencyWindow {
			window = minRecencyWindow
		}
		capped := age
		if capped > window {
			capped = window
		}
		freshness := float64(window-capped) / float64(window)
		decay := 1.0 / (1.0 + float64(age))
		score += freshness*freshnessWeight + decay*decayWeight
	}

	article.MatchCount = matched
	article.RelevanceScore = math.Round(score*100) / 100
	return article.RelevanceScore
}

// ageInDays returns whole days between publication and the reference instant,
// or nil when the date is missing or lies in the future.
func ageInDays(publishedAt *time.Time, reference time.Time) *int {
	if publishedAt == nil || publishedAt.After(reference) {
		return nil
	}
	age := int(reference.Sub(*publishedAt).Hours() / 24)
	return &age
}
