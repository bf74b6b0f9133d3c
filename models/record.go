// Package models defines data structures shared across the archive engine.
package models

import "time"

// ArchiveRecord is one playable entry in the directory: either a scraped
// archive of a past show or the permanent live stream.
type ArchiveRecord struct {
	AnnouncedTitle string `json:"announced_title" yaml:"announced_title"`
	Description    string `json:"description" yaml:"description"`
	MediaURL       string `json:"media_url" yaml:"media_url"`
	// Date is the human-readable broadcast date. Empty for the live stream.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	// DiscoveredAt is when the record was scraped. Zero for permanent
	// entries, which makes them exempt from the age limit.
	DiscoveredAt time.Time `json:"discovered_at,omitempty" yaml:"discovered_at,omitempty"`
}

// Scraped reports whether the record came from a listing scrape and is
// therefore subject to staleness exclusion.
func (r ArchiveRecord) Scraped() bool {
	return !r.DiscoveredAt.IsZero()
}

// Triple is one raw listing entry before link resolution: the show title and
// date as printed, plus the indirect playlist link whose body is the real
// media URL.
type Triple struct {
	Title string
	Date  string
	Link  string
}

// Complete reports whether all three fields survived extraction. Partial
// markup yields incomplete triples, which ingestion skips silently.
func (t Triple) Complete() bool {
	return t.Title != "" && t.Date != "" && t.Link != ""
}
