// Package selection orders scored articles and assembles the bounded final list.
package selection

import (
	"github.com/juanvillada/radarsci/internal/coverage"
	"github.com/juanvillada/radarsci/internal/types"
)

// Select sorts the articles, groups them by coverage, and assembles the final
// list of at most limit entries. The full filter takes only the strongest
// tier. Otherwise selection seeds one article from each populated tier, best
// first, then fills the remaining slots from the overall ordering.
func Select(
	articles []*types.Article,
	totalKeywords int,
	mode types.SortMode,
	filter types.CoverageFilter,
	limit int,
) []*types.Article {
	selected := make([]*types.Article, 0, limit)
	if limit <= 0 {
		return selected
	}

	ordered := Sort(articles, mode)
	buckets := coverage.Group(ordered, totalKeywords)

	if filter == types.CoverageFull {
		for _, bucket := range buckets {
			if bucket.Tier != types.TierFull {
				continue
			}
			members := bucket.Articles
			if len(members) > limit {
				members = members[:limit]
			}
			selected = append(selected, members...)
			break
		}
		return selected
	}

	seen := make(map[*types.Article]struct{}, limit)

	// One seed per tier keeps weaker coverage visible in small reports.
	for _, bucket := range buckets {
		if len(selected) >= limit {
			break
		}
		head := bucket.Articles[0]
		selected = append(selected, head)
		seen[head] = struct{}{}
	}

	for _, article := range ordered {
		if len(selected) >= limit {
			break
		}
		if _, dup := seen[article]; dup {
			continue
		}
		selected = append(selected, article)
		seen[article] = struct{}{}
	}

	return selected
}
