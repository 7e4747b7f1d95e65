package pipeline

import "github.com/juanvillada/radarsci/internal/types"

// Filter removes candidates that cannot appear in a report: articles without
// a link, articles that matched no keyword, and articles older than the
// requested window. Articles with an unknown age are kept.
func Filter(articles []*types.Article, daysBack int) []*types.Article {
	kept := make([]*types.Article, 0, len(articles))
	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		if article.MatchCount == 0 {
			continue
		}
		if daysBack > 0 && article.AgeDays != nil && *article.AgeDays > daysBack {
			continue
		}
		kept = append(kept, article)
	}
	return kept
}
