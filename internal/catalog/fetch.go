package catalog

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/nebula/internal/cache"
)

// FetchBooks retrieves book records page by page, following each response's
// next cursor until the cursor is null or the page budget is exhausted.
// Fetching is strictly sequential and never retried: a failed page is logged
// and the books collected so far are returned, so the rest of the pipeline
// degrades to a partial galaxy instead of failing outright.
func (c *Client) FetchBooks(ctx context.Context) []*Book {
	var books []*Book

	pageURL := c.baseURL
	for i := 0; i < c.maxPages && pageURL != ""; i++ {
		p, fromCache, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			slog.Error("Catalog page fetch failed, continuing with fetched pages",
				"page", i+1, "url", pageURL, "error", err)
			break
		}

		slog.Info("Fetched catalog page", "page", i+1, "books", len(p.Results), "cached", fromCache)

		for j := range p.Results {
			books = append(books, &p.Results[j])
		}

		if p.Next == nil {
			break
		}
		pageURL = *p.Next
	}

	return books
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (*page, bool, error) {
	return cache.GetOrFetch("catalog_cache", pageURL, func() (*page, error) {
		var p page
		if err := c.getJSON(ctx, pageURL, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
}
