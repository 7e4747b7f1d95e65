// Package types provides type definitions for structured data used throughout the radarsci system.
package types

import "time"

// Article represents a single paper normalized from a source search result.
// Pointer fields distinguish "unknown" from a genuine zero value.
type Article struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	URL         string     `json:"url,omitempty"`
	Journal     string     `json:"journal"`
	Authors     []string   `json:"authors,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	DOI         string     `json:"doi,omitempty"`
	// SourceRelevance is the search engine's own relevance hint (nil when not reported)
	SourceRelevance *float64 `json:"source_relevance,omitempty"`
	// RelevanceScore is the composite score from keyword relevance evaluation
	RelevanceScore float64 `json:"relevance_score"`
	// MatchCount is the number of distinct configured keywords the article matched
	MatchCount int `json:"match_count"`
	// AgeDays is the article age relative to the run's reference time (nil when unknown)
	AgeDays *int `json:"age_days,omitempty"`
}

// FormattedDate returns the publication date as YYYY-MM-DD, or "Unknown" when missing.
func (a *Article) FormattedDate() string {
	if a.PublishedAt == nil {
		return "Unknown"
	}
	return a.PublishedAt.Format("2006-01-02")
}
