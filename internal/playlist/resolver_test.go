package playlist

import (
	"errors"
	"testing"
)

// stubFetcher maps links to bodies and counts fetches per link.
type stubFetcher struct {
	bodies  map[string]string
	fetches map[string]int
}

func newStubFetcher(bodies map[string]string) *stubFetcher {
	return &stubFetcher{bodies: bodies, fetches: make(map[string]int)}
}

func (s *stubFetcher) GetText(url string) (string, error) {
	s.fetches[url]++
	body, ok := s.bodies[url]
	if !ok {
		return "", errors.New("fetch failed")
	}
	return body, nil
}

func TestResolveTrimsBody(t *testing.T) {
	fetch := newStubFetcher(map[string]string{
		"https://wfmu.org/listen.m3u?show=1": "  https://archive.wfmu.org/wake.mp3\n",
	})
	r := NewResolver(fetch, 0)

	mediaURL, err := r.Resolve("https://wfmu.org/listen.m3u?show=1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if mediaURL != "https://archive.wfmu.org/wake.mp3" {
		t.Errorf("Resolve() = %q, want trimmed playlist body", mediaURL)
	}
}

func TestResolveCachesByLink(t *testing.T) {
	link := "https://wfmu.org/listen.m3u?show=1"
	fetch := newStubFetcher(map[string]string{link: "https://archive.wfmu.org/wake.mp3"})
	r := NewResolver(fetch, 8)

	for i := 0; i < 3; i++ {
		if _, err := r.Resolve(link); err != nil {
			t.Fatalf("Resolve() #%d error = %v", i, err)
		}
	}
	if got := fetch.fetches[link]; got != 1 {
		t.Errorf("fetched %d times, want 1 (subsequent hits cached)", got)
	}
}

func TestResolveFailures(t *testing.T) {
	fetch := newStubFetcher(map[string]string{
		"https://wfmu.org/empty.m3u": "   \n",
	})
	r := NewResolver(fetch, 8)

	if _, err := r.Resolve("https://wfmu.org/missing.m3u"); err == nil {
		t.Error("Resolve() on fetch failure: want error, got nil")
	}
	if _, err := r.Resolve("https://wfmu.org/empty.m3u"); err == nil {
		t.Error("Resolve() on empty body: want error, got nil")
	}
}
