// ABOUTME: Tests for the TTS fetch client
// ABOUTME: Uses httptest servers; verifies caching and failure paths
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestSynthesizeAndCache(t *testing.T) {
	var requests atomic.Int64
	wavBytes := []byte("RIFF....WAVEfake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Text != "Welcome, traveler." {
			t.Errorf("text = %q", req.Text)
		}
		if req.Voice != "innkeeper" {
			t.Errorf("voice = %q", req.Voice)
		}

		w.Write(wavBytes)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Voice: "innkeeper"})

	got, err := c.Synthesize(context.Background(), "Welcome, traveler.")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !bytes.Equal(got, wavBytes) {
		t.Errorf("got % x, want % x", got, wavBytes)
	}

	// Second call for the same line is served from cache.
	if _, err := c.Synthesize(context.Background(), "Welcome, traveler."); err != nil {
		t.Fatalf("cached Synthesize failed: %v", err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}
	if c.CacheSize() != 1 {
		t.Errorf("cache size = %d, want 1", c.CacheSize())
	}

	// A different line misses the cache.
	if _, err := c.Synthesize(context.Background(), "Goodbye."); err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if n := requests.Load(); n != 2 {
		t.Errorf("server saw %d requests, want 2", n)
	}

	c.ClearCache()
	if c.CacheSize() != 0 {
		t.Errorf("cache size after clear = %d, want 0", c.CacheSize())
	}
}

func TestSynthesizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL})

	if _, err := c.Synthesize(context.Background(), "hello"); err == nil {
		t.Error("expected an error for HTTP 503")
	}
	if c.CacheSize() != 0 {
		t.Error("failed responses must not be cached")
	}
}

func TestSynthesizeContextCancel(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	c := NewClient(Config{URL: srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Synthesize(ctx, "hello"); err == nil {
		t.Error("expected an error when the context expires")
	}
}

func TestCacheKeyIncludesVoice(t *testing.T) {
	if cacheKey("a", "line") == cacheKey("b", "line") {
		t.Error("different voices must not share cache entries")
	}
	if cacheKey("a", "line") != cacheKey("a", "line") {
		t.Error("cache key is not stable")
	}
}
