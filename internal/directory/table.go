// Package directory maintains the lookup table from normalized show names to
// playable archive records, and answers exact and approximate queries
// against it.
package directory

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/agext/levenshtein"

	"wfmu-archive/models"
	"wfmu-archive/pkg/naming"
)

// Table maps a normalized lookup key to its archive record. Every key maps
// to exactly one record; synonym keys for the same show share one record
// value.
type Table map[string]models.ArchiveRecord

// LinkResolver converts an indirect playlist link into a direct media URL.
type LinkResolver interface {
	Resolve(link string) (string, error)
}

// Seed returns a fresh table holding only the two permanent entries: the
// live stream under the station name and under the platform's generic alias.
// Neither carries a date or discovery time, so neither ever ages out.
func Seed(config *models.Config) Table {
	live := models.ArchiveRecord{
		AnnouncedTitle: strings.ToUpper(config.StationName),
		Description:    config.LiveDescription,
		MediaURL:       config.LiveStreamURL,
	}

	table := Table{}
	table[naming.NormalizeKey(config.StationName)] = live
	table[naming.NormalizeKey(config.AliasName)] = live
	return table
}

type resolveJob struct {
	idx    int
	triple models.Triple
}

type resolveResult struct {
	idx      int
	mediaURL string
	err      error
}

// Ingest builds a complete table from raw listing triples: seed the
// permanent entries, resolve every playlist link, stamp discovery time, and
// write each title's canonical and synonym keys.
//
// Link resolution fans out over a bounded worker pool (each link is one
// extra network round trip), but keys are written in listing document order
// so later entries overwrite earlier ones on collision. A triple whose link
// fails to resolve is dropped; the rest of the listing still ingests.
func Ingest(config *models.Config, resolver LinkResolver, logger *slog.Logger, now time.Time, triples []models.Triple) Table {
	table := Seed(config)

	complete := make([]models.Triple, 0, len(triples))
	for _, triple := range triples {
		if triple.Complete() {
			complete = append(complete, triple)
		}
	}
	if len(complete) == 0 {
		return table
	}

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 4
	}

	var wg sync.WaitGroup
	jobs := make(chan resolveJob, len(complete))
	results := make(chan resolveResult, len(complete))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				mediaURL, err := resolver.Resolve(job.triple.Link)
				results <- resolveResult{idx: job.idx, mediaURL: mediaURL, err: err}
			}
		}()
	}

	for i, triple := range complete {
		jobs <- resolveJob{idx: i, triple: triple}
	}
	close(jobs)

	wg.Wait()
	close(results)

	resolved := make([]resolveResult, len(complete))
	for result := range results {
		resolved[result.idx] = result
	}

	for i, triple := range complete {
		if err := resolved[i].err; err != nil {
			logger.Warn("dropping listing entry", "title", triple.Title, "link", triple.Link, "error", err)
			continue
		}

		record := models.ArchiveRecord{
			AnnouncedTitle: triple.Title,
			Description:    config.ArchiveLabel,
			MediaURL:       resolved[i].mediaURL,
			Date:           triple.Date,
			DiscoveredAt:   now,
		}
		for _, key := range naming.TitleSynonyms(triple.Title) {
			table[key] = record
		}
	}
	return table
}

// Merge combines the current table with a freshly ingested one: the result
// holds the union of keys, the fresh value wins on shared keys, and keys
// only the current table knows survive. The feed only covers recent items,
// so this is what keeps the schedule-seeded full week alive across feed
// refreshes.
func Merge(current, fresh Table) Table {
	merged := make(Table, len(current)+len(fresh))
	for key, record := range current {
		merged[key] = record
	}
	for key, record := range fresh {
		merged[key] = record
	}
	return merged
}

// Resolve answers a free-form query. An exact key hit returns immediately,
// trusted even if the record has aged out. Otherwise every entry is scored
// by edit distance against the normalized query and the closest one wins,
// skipping scraped records older than maxAge: an expiring leader is
// discarded and the scan continues with the next-best distance.
//
// Only strict improvement replaces the running best, so equal-distance ties
// fall to whichever entry the map yields first. Map order is unordered;
// callers must not rely on a particular tie-break.
func (t Table) Resolve(query string, now time.Time, maxAge time.Duration) (models.ArchiveRecord, bool) {
	key := naming.NormalizeKey(query)
	if record, ok := t[key]; ok {
		return record, true
	}

	var best models.ArchiveRecord
	bestDistance := -1
	for candidate, record := range t {
		if record.Scraped() && now.Sub(record.DiscoveredAt) > maxAge {
			continue
		}
		distance := levenshtein.Distance(key, candidate, nil)
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			best = record
		}
	}
	return best, bestDistance >= 0
}
