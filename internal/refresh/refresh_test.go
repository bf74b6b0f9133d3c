package refresh

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"wfmu-archive/internal/directory"
	"wfmu-archive/models"
)

type stubFetch struct {
	html  map[string]string
	bytes map[string]string
}

func (s *stubFetch) GetHTML(url string) (*goquery.Document, error) {
	body, ok := s.html[url]
	if !ok {
		return nil, errors.New("fetch failed")
	}
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

func (s *stubFetch) GetBytes(url string) ([]byte, error) {
	body, ok := s.bytes[url]
	if !ok {
		return nil, errors.New("fetch failed")
	}
	return []byte(body), nil
}

type stubResolver map[string]string

func (s stubResolver) Resolve(link string) (string, error) {
	mediaURL, ok := s[link]
	if !ok {
		return "", errors.New("resolve failed")
	}
	return mediaURL, nil
}

type recordedCycle struct {
	source     string
	entryCount int
	failed     bool
}

type stubCycleLog struct {
	cycles []recordedCycle
}

func (s *stubCycleLog) LogCycle(source string, entryCount, tableSize int, took time.Duration, runErr error) error {
	s.cycles = append(s.cycles, recordedCycle{source: source, entryCount: entryCount, failed: runErr != nil})
	return nil
}

func testTask(t *testing.T, fetch Fetcher, resolver directory.LinkResolver, cycles CycleLog) (*Task, *directory.Store) {
	t.Helper()

	config := models.DefaultConfig()
	config.WorkerCount = 2
	store := directory.NewStore(directory.Seed(config))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTask(config, fetch, resolver, store, logger, cycles), store
}

const scheduleHTML = `
<html><body>
<div class="archive-entry">
	<a href="/listen.m3u?show=1">Wake</a>
	<span class="date">Monday 1/1: 9am</span>
</div>
</body></html>`

const feedXML = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<item>
	<title>WFMU MP3 Archive: Techtonic from Monday 3/3</title>
	<guid>https://wfmu.org/listen.m3u?show=2</guid>
</item>
</channel></rss>`

func TestRebuildFromSchedule(t *testing.T) {
	config := models.DefaultConfig()
	fetch := &stubFetch{html: map[string]string{config.ScheduleURL: scheduleHTML}}
	resolver := stubResolver{
		"https://wfmu.org/listen.m3u?show=1": "https://archive.wfmu.org/wake.mp3",
	}
	cycles := &stubCycleLog{}
	task, store := testTask(t, fetch, resolver, cycles)

	if err := task.RebuildFromSchedule(); err != nil {
		t.Fatalf("RebuildFromSchedule() error = %v", err)
	}

	table := store.Current()
	if _, ok := table["wake"]; !ok {
		t.Error("rebuilt table missing scraped show")
	}
	if _, ok := table["wfmu"]; !ok {
		t.Error("rebuilt table missing permanent live entry")
	}
	if len(cycles.cycles) != 1 || cycles.cycles[0].source != "schedule" || cycles.cycles[0].failed {
		t.Errorf("cycle log = %+v, want one successful schedule cycle", cycles.cycles)
	}
}

func TestRebuildReplacesStaleKeys(t *testing.T) {
	config := models.DefaultConfig()
	fetch := &stubFetch{html: map[string]string{config.ScheduleURL: scheduleHTML}}
	resolver := stubResolver{
		"https://wfmu.org/listen.m3u?show=1": "https://archive.wfmu.org/wake.mp3",
	}
	task, store := testTask(t, fetch, resolver, nil)

	// A key absent from the new listing should not survive a full rebuild.
	seeded := store.Current()
	seeded["gone"] = models.ArchiveRecord{AnnouncedTitle: "Gone", DiscoveredAt: time.Now()}
	store.Replace(seeded)

	if err := task.RebuildFromSchedule(); err != nil {
		t.Fatalf("RebuildFromSchedule() error = %v", err)
	}
	if _, ok := store.Current()["gone"]; ok {
		t.Error("full rebuild should drop keys absent from the new listing")
	}
}

func TestRefreshFromFeedMerges(t *testing.T) {
	config := models.DefaultConfig()
	fetch := &stubFetch{
		html:  map[string]string{config.ScheduleURL: scheduleHTML},
		bytes: map[string]string{config.FeedURL: feedXML},
	}
	resolver := stubResolver{
		"https://wfmu.org/listen.m3u?show=1": "https://archive.wfmu.org/wake.mp3",
		"https://wfmu.org/listen.m3u?show=2": "https://archive.wfmu.org/techtonic.mp3",
	}
	task, store := testTask(t, fetch, resolver, nil)

	if err := task.RebuildFromSchedule(); err != nil {
		t.Fatalf("RebuildFromSchedule() error = %v", err)
	}
	if err := task.RefreshFromFeed(); err != nil {
		t.Fatalf("RefreshFromFeed() error = %v", err)
	}

	table := store.Current()
	if _, ok := table["wake"]; !ok {
		t.Error("feed refresh should retain schedule-seeded keys")
	}
	record, ok := table["techtonic"]
	if !ok {
		t.Fatal("feed refresh should add feed keys")
	}
	if record.MediaURL != "https://archive.wfmu.org/techtonic.mp3" {
		t.Errorf("media URL = %q, want resolved feed link", record.MediaURL)
	}
}

func TestFailedCycleKeepsLastGoodTable(t *testing.T) {
	fetch := &stubFetch{} // every fetch fails
	cycles := &stubCycleLog{}
	task, store := testTask(t, fetch, stubResolver{}, cycles)

	before := store.Current()
	if err := task.RebuildFromSchedule(); err == nil {
		t.Fatal("RebuildFromSchedule() with failing fetch: want error")
	}
	if err := task.RefreshFromFeed(); err == nil {
		t.Fatal("RefreshFromFeed() with failing fetch: want error")
	}

	after := store.Current()
	if len(after) != len(before) {
		t.Error("failed cycles must leave the live table unchanged")
	}
	if _, ok := after["wfmu"]; !ok {
		t.Error("permanent entries must survive failed cycles")
	}
	for _, c := range cycles.cycles {
		if !c.failed {
			t.Errorf("cycle %+v should be recorded as failed", c)
		}
	}
}
