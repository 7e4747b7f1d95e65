package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanvillada/radarsci/internal/types"
)

func candidate(url string, matchCount int, ageDays *int) *types.Article {
	return &types.Article{
		Title:      "Metagenomics of the gut",
		URL:        url,
		Journal:    "Nature Microbiology",
		MatchCount: matchCount,
		AgeDays:    ageDays,
	}
}

func age(days int) *int {
	return &days
}

func TestFilter_DropsArticlesWithoutURL(t *testing.T) {
	articles := []*types.Article{
		candidate("", 1, age(5)),
		candidate("https://doi.org/10.1000/a", 1, age(5)),
	}

	kept := Filter(articles, 30)

	require.Len(t, kept, 1)
	assert.Equal(t, "https://doi.org/10.1000/a", kept[0].URL)
}

func TestFilter_DropsUnmatchedArticles(t *testing.T) {
	articles := []*types.Article{
		candidate("https://doi.org/10.1000/a", 0, age(5)),
		candidate("https://doi.org/10.1000/b", 2, age(5)),
	}

	kept := Filter(articles, 30)

	require.Len(t, kept, 1)
	assert.Equal(t, 2, kept[0].MatchCount)
}

func TestFilter_DropsArticlesOutsideWindow(t *testing.T) {
	articles := []*types.Article{
		candidate("https://doi.org/10.1000/a", 1, age(31)),
		candidate("https://doi.org/10.1000/b", 1, age(30)),
	}

	kept := Filter(articles, 30)

	require.Len(t, kept, 1)
	assert.Equal(t, 30, *kept[0].AgeDays)
}

func TestFilter_KeepsUnknownAgeInsideWindow(t *testing.T) {
	articles := []*types.Article{
		candidate("https://doi.org/10.1000/a", 1, nil),
	}

	kept := Filter(articles, 30)

	assert.Len(t, kept, 1)
}

func TestFilter_NoWindowKeepsOldArticles(t *testing.T) {
	articles := []*types.Article{
		candidate("https://doi.org/10.1000/a", 1, age(900)),
	}

	kept := Filter(articles, 0)

	assert.Len(t, kept, 1)
}

func TestFilter_EmptyInputReturnsEmptySlice(t *testing.T) {
	kept := Filter(nil, 30)

	assert.NotNil(t, kept)
	assert.Empty(t, kept)
}
