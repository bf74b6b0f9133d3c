package listing

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"wfmu-archive/models"
)

// rssRoot is the top-level XML element for the MP3 archive feed.
type rssRoot struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
	GUID  string `xml:"guid"`
}

// archiveTitleRE matches the feed's item title format:
// "WFMU MP3 Archive: <title> from <date>".
var archiveTitleRE = regexp.MustCompile(`^WFMU MP3 Archive: (.+) from (.+)$`)

// hostClauseRE matches a trailing " with <co-host(s)>" clause on a show
// title. Greedy, so stripping it repeatedly peels one clause per pass.
var hostClauseRE = regexp.MustCompile(`^(.*) with .+$`)

// ParseFeed decodes the MP3 archive RSS feed and returns one triple per
// item whose title matches the archive format. The item guid is the
// indirect playlist link, verbatim. Items with any other title shape are
// skipped.
func ParseFeed(data []byte) ([]models.Triple, error) {
	var root rssRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse archive feed: %w", err)
	}

	var triples []models.Triple
	for _, item := range root.Channel.Items {
		title, date, ok := ParseArchiveTitle(item.Title)
		if !ok {
			continue
		}

		triple := models.Triple{
			Title: title,
			Date:  date,
			Link:  strings.TrimSpace(item.GUID),
		}
		if triple.Complete() {
			triples = append(triples, triple)
		}
	}
	return triples, nil
}

// ParseArchiveTitle extracts the show title and broadcast date from a feed
// item title. Multi-host titles are normalized down to the primary name by
// stripping trailing " with <co-host>" clauses until none remain.
func ParseArchiveTitle(raw string) (title, date string, ok bool) {
	m := archiveTitleRE.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", "", false
	}
	title, date = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])

	for {
		h := hostClauseRE.FindStringSubmatch(title)
		if h == nil {
			break
		}
		title = strings.TrimSpace(h[1])
	}
	return title, date, true
}
