// Package europepmc retrieves journal articles from the Europe PMC REST API.
package europepmc

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/juanvillada/radarsci/internal/query"
	"github.com/juanvillada/radarsci/internal/types"
)

// maxPageSize is the largest page Europe PMC serves per request.
const maxPageSize = 200

// minPageSize keeps small limits from starving the post-fetch filters.
const minPageSize = 25

// FetchResult pairs a source with the normalized articles its search returned.
type FetchResult struct {
	Source   types.Source
	Articles []*types.Article
}

// Fetcher retrieves articles for many sources concurrently.
type Fetcher struct {
	client *Client
}

// NewFetcher builds a Fetcher on top of the given client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Collect fetches every source concurrently and returns one result per source
// in completion order. onComplete, when non-nil, is invoked serially as each
// source finishes. A failure on any source cancels the remaining fetches and
// fails the whole collection.
func (f *Fetcher) Collect(
	ctx context.Context,
	sources []types.Source,
	keywords []string,
	daysBack int,
	maxResults int,
	reference time.Time,
	onComplete func(FetchResult),
) ([]FetchResult, error) {
	g, gCtx := errgroup.WithContext(ctx)

	results := make([]FetchResult, 0, len(sources))
	var mu sync.Mutex

	for _, source := range sources {
		source := source
		g.Go(func() error {
			articles, err := f.FetchSource(gCtx, source, keywords, daysBack, maxResults, reference)
			if err != nil {
				return err
			}

			result := FetchResult{Source: source, Articles: articles}
			mu.Lock()
			results = append(results, result)
			if onComplete != nil {
				onComplete(result)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FetchSource runs the search for a single source and normalizes its hits.
// At most twice the final limit is kept per source so one journal cannot
// monopolize the pool.
func (f *Fetcher) FetchSource(
	ctx context.Context,
	source types.Source,
	keywords []string,
	daysBack int,
	maxResults int,
	reference time.Time,
) ([]*types.Article, error) {
	expression, err := query.Build(source, keywords, daysBack, reference)
	if err != nil {
		return nil, &Error{Journal: source.Name, Message: "invalid search expression", Cause: err}
	}

	items, err := f.client.Search(ctx, expression, searchPageSize(maxResults))
	if err != nil {
		return nil, &Error{Journal: source.Name, Message: "search request failed", Cause: err}
	}

	articles := make([]*types.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, normalizeArticle(item, source.Name))
	}

	if limit := maxResults * 2; len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

// searchPageSize requests headroom over the final limit so scoring and
// filtering still have candidates to discard, within the API page bounds.
func searchPageSize(maxResults int) int {
	pageSize := maxResults * 3
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if pageSize < minPageSize {
		pageSize = minPageSize
	}
	return pageSize
}
