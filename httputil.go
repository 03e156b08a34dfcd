package bondplan

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// http helpers for the benchmark-rate feed.

// feedCache caches GET bodies on disk for the rest of the day, so repeated
// reports do not hammer the feed. The day is part of the cache key, stale
// entries are simply never read again.
type feedCache struct {
	next http.RoundTripper
}

func (c *feedCache) cachePath(req *http.Request) string {
	key := sha256.Sum256([]byte(Today().String() + " " + req.URL.String()))
	return filepath.Join(os.TempDir(), fmt.Sprintf("bondplan-feed-%x", key[:8]))
}

func (c *feedCache) RoundTrip(req *http.Request) (*http.Response, error) {
	path := c.cachePath(req)
	if body, err := os.ReadFile(path); err == nil {
		return &http.Response{
			Status:     "200 OK",
			StatusCode: http.StatusOK,
			Request:    req,
			Body:       io.NopCloser(bytes.NewReader(body)),
		}, nil
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("GET %v %v", req.URL.Host, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, body, 0600); err != nil {
		log.Printf("feed cache write failed (ignored): %v", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// cachedClient returns an HTTP client whose responses expire at the end of
// the day.
func cachedClient() *http.Client {
	return &http.Client{Transport: &feedCache{http.DefaultTransport}}
}

// getJSON performs a GET and decodes the JSON body into v.
func getJSON(client *http.Client, addr string, v any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %s: %s", addr, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
