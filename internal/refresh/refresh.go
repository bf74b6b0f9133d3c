// Package refresh drives the directory rebuild schedule: one full rebuild
// from the HTML schedule page at startup, an immediate feed refresh to patch
// in the latest items, then a fixed-interval feed refresh for the process
// lifetime.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"wfmu-archive/internal/directory"
	"wfmu-archive/internal/listing"
	"wfmu-archive/models"
)

// Fetcher retrieves listing documents.
type Fetcher interface {
	GetHTML(url string) (*goquery.Document, error)
	GetBytes(url string) ([]byte, error)
}

// CycleLog records the outcome of one refresh cycle. Implemented by the
// history database; optional.
type CycleLog interface {
	LogCycle(source string, entryCount, tableSize int, took time.Duration, runErr error) error
}

// Task owns the single-writer side of the directory store.
type Task struct {
	config   *models.Config
	fetch    Fetcher
	resolver directory.LinkResolver
	store    *directory.Store
	logger   *slog.Logger
	cycles   CycleLog
}

func NewTask(config *models.Config, fetch Fetcher, resolver directory.LinkResolver, store *directory.Store, logger *slog.Logger, cycles CycleLog) *Task {
	return &Task{
		config:   config,
		fetch:    fetch,
		resolver: resolver,
		store:    store,
		logger:   logger,
		cycles:   cycles,
	}
}

// RebuildFromSchedule ingests the HTML schedule page and replaces the live
// table wholesale. Keys absent from the new listing are implicitly dropped.
// On fetch failure the live table is left untouched.
func (t *Task) RebuildFromSchedule() error {
	start := time.Now()

	doc, err := t.fetch.GetHTML(t.config.ScheduleURL)
	if err != nil {
		t.logCycle("schedule", 0, 0, time.Since(start), err)
		return fmt.Errorf("schedule rebuild aborted: %w", err)
	}

	triples := listing.ParseSchedule(doc, t.config.ScheduleURL)
	table := directory.Ingest(t.config, t.resolver, t.logger, time.Now(), triples)
	t.store.Replace(table)

	t.logger.Info("schedule rebuild complete", "entries", len(triples), "keys", len(table), "took", time.Since(start))
	t.logCycle("schedule", len(triples), len(table), time.Since(start), nil)
	return nil
}

// RefreshFromFeed ingests the MP3 archive feed and merges the result on top
// of the live table: fresh entries win, schedule-seeded entries the feed no
// longer mentions survive. On fetch or parse failure the live table is left
// untouched and the next tick retries.
func (t *Task) RefreshFromFeed() error {
	start := time.Now()

	data, err := t.fetch.GetBytes(t.config.FeedURL)
	if err != nil {
		t.logCycle("feed", 0, 0, time.Since(start), err)
		return fmt.Errorf("feed refresh aborted: %w", err)
	}

	triples, err := listing.ParseFeed(data)
	if err != nil {
		t.logCycle("feed", 0, 0, time.Since(start), err)
		return fmt.Errorf("feed refresh aborted: %w", err)
	}

	fresh := directory.Ingest(t.config, t.resolver, t.logger, time.Now(), triples)
	t.store.MergeIn(fresh)

	keys := len(t.store.Current())
	t.logger.Info("feed refresh complete", "entries", len(triples), "keys", keys, "took", time.Since(start))
	t.logCycle("feed", len(triples), keys, time.Since(start), nil)
	return nil
}

// Run performs the startup rebuild sequence and then refreshes from the feed
// at the configured interval until ctx is cancelled. Failed cycles are
// logged and skipped; there is no backoff, the next tick simply retries.
func (t *Task) Run(ctx context.Context) {
	if err := t.RebuildFromSchedule(); err != nil {
		t.logger.Error("startup schedule rebuild failed", "error", err)
	}
	if err := t.RefreshFromFeed(); err != nil {
		t.logger.Error("startup feed refresh failed", "error", err)
	}

	interval := t.config.RefreshInterval()
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.RefreshFromFeed(); err != nil {
				t.logger.Error("feed refresh failed", "error", err)
			}
		}
	}
}

func (t *Task) logCycle(source string, entryCount, tableSize int, took time.Duration, runErr error) {
	if t.cycles == nil {
		return
	}
	if err := t.cycles.LogCycle(source, entryCount, tableSize, took, runErr); err != nil {
		t.logger.Warn("failed to record refresh cycle", "source", source, "error", err)
	}
}
