package mock

import (
	"context"

	"github.com/fwojciec/tabdoc"
)

var _ tabdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of tabdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *tabdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *tabdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
