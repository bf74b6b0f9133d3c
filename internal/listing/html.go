// Package listing extracts raw (title, date, link) triples from the two
// external show listings: the HTML archive-player schedule page and the MP3
// archive RSS feed.
package listing

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wfmu-archive/models"
)

// ParseSchedule walks the archive schedule page and returns one triple per
// program entry. Entries missing a title, date, or playlist link are
// skipped; partial markup is expected, not an error.
//
// The schedule page uses relative playlist hrefs, so they are resolved
// against baseURL before being returned.
func ParseSchedule(doc *goquery.Document, baseURL string) []models.Triple {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var triples []models.Triple
	doc.Find("div.archive-entry").Each(func(i int, s *goquery.Selection) {
		anchor := s.Find("a").First()

		triple := models.Triple{
			Title: strings.TrimSpace(anchor.Text()),
			Date:  scheduleDate(s.Find("span.date").First().Text()),
		}
		if href, ok := anchor.Attr("href"); ok {
			triple.Link = resolveHref(base, href)
		}

		if triple.Complete() {
			triples = append(triples, triple)
		}
	})
	return triples
}

// scheduleDate extracts the date portion of an entry's date text: everything
// before the first colon, minus any trailing run of dots and whitespace.
// "Monday, March 3rd ...: 9am - noon" becomes "Monday, March 3rd".
func scheduleDate(raw string) string {
	raw = strings.TrimSpace(raw)
	idx := strings.Index(raw, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimRight(raw[:idx], ". \t")
}

func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
