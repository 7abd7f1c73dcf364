// ABOUTME: TTS fetch client with a per-line byte cache
// ABOUTME: Fetches synthesized speech over HTTP, strictly outside the engine lock
package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client fetches synthesized speech bytes from a local TTS service and
// caches them per logical line. Fetching can be slow; callers run it on
// their own goroutine and hand the resulting bytes to the audio device.
// There is no retry policy here — a failed line is simply silent.
type Client struct {
	url   string
	voice string
	httpc *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

// Config holds speech client configuration.
type Config struct {
	// URL of the synthesis endpoint, e.g. http://127.0.0.1:5002/api/tts.
	URL string

	// Voice identifier passed to the service.
	Voice string

	// Timeout bounds a single synthesis request. Zero means 30 seconds.
	Timeout time.Duration
}

// request is the synthesis request body.
type request struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// NewClient creates a speech client for the given service.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		url:   cfg.URL,
		voice: cfg.Voice,
		httpc: &http.Client{Timeout: timeout},
		cache: make(map[string][]byte),
	}
}

// Synthesize returns WAV bytes for text, from cache when the same line was
// fetched before. The returned slice is shared with the cache; callers
// hand it to the audio device, which copies what it keeps.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	key := cacheKey(c.voice, text)

	c.mu.Lock()
	if data, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	reqID := uuid.New().String()
	log.Printf("Synthesizing line [%s]: %d chars", reqID, len(text))

	body, err := json.Marshal(request{Text: text, Voice: c.voice})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis failed: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w", err)
	}

	c.mu.Lock()
	c.cache[key] = data
	c.mu.Unlock()

	log.Printf("Synthesized line [%s]: %d bytes", reqID, len(data))
	return data, nil
}

// ClearCache drops every cached line.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string][]byte)
	c.mu.Unlock()
}

// CacheSize returns the number of cached lines.
func (c *Client) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// cacheKey derives a stable key for one voice/text pair.
func cacheKey(voice, text string) string {
	sum := sha256.Sum256([]byte(voice + "|" + text))
	return fmt.Sprintf("%x", sum[:16])
}
