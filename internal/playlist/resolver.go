// Package playlist resolves indirect playlist links into direct media URLs.
//
// Each listing entry points at a small playlist-style indirection file whose
// entire body, trimmed, is the real media URL. Resolution costs one extra
// fetch per entry, so resolved links are kept in an LRU cache: hourly feed
// refreshes mostly re-see the same links.
package playlist

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 256

// TextFetcher fetches a URL body as text.
type TextFetcher interface {
	GetText(url string) (string, error)
}

type Resolver struct {
	fetch TextFetcher
	cache *lru.Cache[string, string]
}

func NewResolver(fetch TextFetcher, cacheSize int) *Resolver {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, string](cacheSize)
	return &Resolver{fetch: fetch, cache: cache}
}

// Resolve fetches the indirection file at link and returns the direct media
// URL it contains. Failures are per-link: the caller drops that entry and
// continues with the rest of the listing.
func (r *Resolver) Resolve(link string) (string, error) {
	if mediaURL, ok := r.cache.Get(link); ok {
		return mediaURL, nil
	}

	body, err := r.fetch.GetText(link)
	if err != nil {
		return "", fmt.Errorf("failed to resolve playlist link %s: %w", link, err)
	}

	mediaURL := strings.TrimSpace(body)
	if mediaURL == "" {
		return "", fmt.Errorf("playlist link %s resolved to an empty body", link)
	}

	r.cache.Add(link, mediaURL)
	return mediaURL, nil
}
