// Package fetcher wraps HTTP retrieval of listing documents and playlist
// bodies behind one client.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetHTML fetches a URL and parses the body into a queryable document.
func (f *Fetcher) GetHTML(url string) (*goquery.Document, error) {
	bodyBytes, err := f.GetBytes(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetText fetches a URL and returns the body as a string. Used for playlist
// indirection files whose entire body is the direct media URL.
func (f *Fetcher) GetText(url string) (string, error) {
	bodyBytes, err := f.GetBytes(url)
	if err != nil {
		return "", err
	}
	return string(bodyBytes), nil
}

func (f *Fetcher) GetBytes(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, nil
}
