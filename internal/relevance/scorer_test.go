package relevance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanvillada/radarsci/internal/types"
)

var scoreReference = time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

func daysBefore(reference time.Time, days int) *time.Time {
	published := reference.AddDate(0, 0, -days)
	return &published
}

func TestScore_SingleKeywordWithRecency(t *testing.T) {
	article := &types.Article{
		Title:       "Metagenomics of the gut",
		PublishedAt: daysBefore(scoreReference, 10),
	}

	score := Score(article, []string{"metagenomics"}, 30, scoreReference)

	// 6.0 title + 2.5 body (title is part of the body haystack) + 4.0 match
	// bonus + (20/30)*6.0 freshness + (1/11)*4.0 decay = 16.8636...
	assert.Equal(t, 16.86, score)
	assert.Equal(t, 16.86, article.RelevanceScore)
	assert.Equal(t, 1, article.MatchCount)
	require.NotNil(t, article.AgeDays)
	assert.Equal(t, 10, *article.AgeDays)
}

func TestScore_NoDateSkipsRecencyComponents(t *testing.T) {
	article := &types.Article{Title: "Metagenomics of the gut"}

	score := Score(article, []string{"metagenomics"}, 30, scoreReference)

	assert.Equal(t, 12.5, score)
	assert.Nil(t, article.AgeDays)
}

func TestScore_FutureDateLeavesAgeUnknown(t *testing.T) {
	future := scoreReference.Add(48 * time.Hour)
	article := &types.Article{Title: "Metagenomics of the gut", PublishedAt: &future}

	score := Score(article, []string{"metagenomics"}, 30, scoreReference)

	assert.Nil(t, article.AgeDays)
	assert.Equal(t, 12.5, score)
}

func TestScore_AgeTruncatesToWholeDays(t *testing.T) {
	published := scoreReference.Add(-36 * time.Hour)
	article := &types.Article{Title: "Untitled", PublishedAt: &published}

	Score(article, []string{"metagenomics"}, 30, scoreReference)

	require.NotNil(t, article.AgeDays)
	assert.Equal(t, 1, *article.AgeDays)
}

func TestScore_SourceHintAddsTenth(t *testing.T) {
	hint := 14.2
	article := &types.Article{Title: "Metagenomics of the gut", SourceRelevance: &hint}

	score := Score(article, []string{"metagenomics"}, 30, scoreReference)

	assert.Equal(t, 13.92, score)
}

func TestScore_ZeroHintIgnored(t *testing.T) {
	zero := 0.0
	article := &types.Article{Title: "Metagenomics of the gut", SourceRelevance: &zero}

	score := Score(article, []string{"metagenomics"}, 30, scoreReference)

	assert.Equal(t, 12.5, score)
}

func TestScore_MatchBonusPerKeyword(t *testing.T) {
	article := &types.Article{
		Title:   "Metagenomics of the gut",
		Summary: "Virome analysis across cohorts.",
	}

	score := Score(article, []string{"gut", "virome"}, 30, scoreReference)

	// gut: 6.0 title + 2.5 body; virome: 2.5 body; bonus 2*4.0
	assert.Equal(t, 19.0, score)
	assert.Equal(t, 2, article.MatchCount)
}

func TestScore_WindowFloorsAtThirtyDays(t *testing.T) {
	article := &types.Article{
		Title:       "Metagenomics of the gut",
		PublishedAt: daysBefore(scoreReference, 40),
	}

	score := Score(article, []string{"metagenomics"}, 7, scoreReference)

	// Freshness bottoms out at the floored 30-day window; only decay remains:
	// 12.5 + 0 + (1/41)*4.0 = 12.5975...
	assert.Equal(t, 12.6, score)
}

func TestScore_UnmatchedArticleStillGetsRecency(t *testing.T) {
	article := &types.Article{
		Title:       "Metagenomics of the gut",
		PublishedAt: daysBefore(scoreReference, 10),
	}

	score := Score(article, []string{"virome"}, 30, scoreReference)

	assert.Equal(t, 4.36, score)
	assert.Equal(t, 0, article.MatchCount)
}

func TestScore_BlankKeywordsSkipped(t *testing.T) {
	article := &types.Article{Title: "Metagenomics of the gut"}

	score := Score(article, []string{"  ", ""}, 30, scoreReference)

	assert.Equal(t, 0.0, score)
	assert.Equal(t, 0, article.MatchCount)
}

func TestScore_MoreTitleHitsScoreHigher(t *testing.T) {
	once := &types.Article{Title: "Metagenomics survey"}
	twice := &types.Article{Title: "Metagenomics of metagenomics"}

	scoreOnce := Score(once, []string{"metagenomics"}, 30, scoreReference)
	scoreTwice := Score(twice, []string{"metagenomics"}, 30, scoreReference)

	assert.Greater(t, scoreTwice, scoreOnce)
}

func TestScore_Idempotent(t *testing.T) {
	article := &types.Article{
		Title:       "Metagenomics of the gut",
		PublishedAt: daysBefore(scoreReference, 10),
	}

	first := Score(article, []string{"metagenomics"}, 30, scoreReference)
	second := Score(article, []string{"metagenomics"}, 30, scoreReference)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, article.MatchCount)
	require.NotNil(t, article.AgeDays)
	assert.Equal(t, 10, *article.AgeDays)
}
