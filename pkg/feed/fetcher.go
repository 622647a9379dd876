package feed

import (
	"context"
	"io"
	"net/http"
	"time"
)

// maxBodySize caps how much of a response is read, a misbehaving feed must
// not exhaust memory
const maxBodySize = 10 * 1024 * 1024

// Fetcher performs conditional HTTP GETs for feed sources. One attempt per
// call, no internal retry; the retry policy, if any, belongs to the caller.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Result is the outcome of a fetch attempt that produced a usable response.
// NotModified means the server confirmed the cached copy is current and Body
// was not consumed. ETag and LastModified carry the response validators, nil
// when the server omitted the header.
type Result struct {
	NotModified  bool
	Body         []byte
	ETag         *string
	LastModified *string
}

// NewFetcher creates a fetcher with a bounded per-request timeout
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	if userAgent == "" {
		userAgent = "feedvault/1.0"
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch requests the feed URL, attaching If-None-Match and If-Modified-Since
// only when the prior validators are known. Returns *NetworkError for
// transport failures and *HTTPError for any status other than 2xx or 304.
func (f *Fetcher) Fetch(ctx context.Context, url string, etag, lastModified *string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if etag != nil {
		req.Header.Set("If-None-Match", *etag)
	}
	if lastModified != nil {
		req.Header.Set("If-Modified-Since", *lastModified)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return &Result{NotModified: true}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	res := &Result{Body: body}
	if v := resp.Header.Get("ETag"); v != "" {
		res.ETag = &v
	}
	if v := resp.Header.Get("Last-Modified"); v != "" {
		res.LastModified = &v
	}
	return res, nil
}
