// Package coverage classifies scored articles by how much of the keyword set they matched.
package coverage

import (
	"github.com/juanvillada/radarsci/internal/types"
)

// Classify assigns an article its coverage tier for the given keyword count.
// With no keywords configured, any match means full coverage.
func Classify(article *types.Article, totalKeywords int) types.CoverageTier {
	if totalKeywords <= 0 {
		if article.MatchCount > 0 {
			return types.TierFull
		}
		return types.TierSingle
	}

	matched := article.MatchCount
	if matched < 0 {
		matched = 0
	}

	switch {
	case matched >= totalKeywords:
		return types.TierFull
	case totalKeywords > 2 && matched >= totalKeywords-1:
		return types.TierNear
	case matched >= 2:
		return types.TierPartial
	default:
		return types.TierSingle
	}
}

// Bucket holds the articles of one tier, in the order they were supplied.
type Bucket struct {
	Tier     types.CoverageTier
	Articles []*types.Article
}

// Group buckets articles by tier in strongest-first order, omitting empty
// tiers. Supplying pre-sorted articles keeps each bucket sorted.
func Group(articles []*types.Article, totalKeywords int) []Bucket {
	byTier := make(map[types.CoverageTier][]*types.Article, len(types.TierOrder))
	for _, article := range articles {
		tier := Classify(article, totalKeywords)
		byTier[tier] = append(byTier[tier], article)
	}

	buckets := make([]Bucket, 0, len(byTier))
	for _, tier := range types.TierOrder {
		if members := byTier[tier]; len(members) > 0 {
			buckets = append(buckets, Bucket{Tier: tier, Articles: members})
		}
	}
	return buckets
}
