package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_ConditionalHeaders(t *testing.T) {
	var gotETag, gotModified string
	var etagPresent, modifiedPresent bool

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotETag = r.Header.Get("If-None-Match")
		_, etagPresent = r.Header["If-None-Match"]
		gotModified = r.Header.Get("If-Modified-Since")
		_, modifiedPresent = r.Header["If-Modified-Since"]
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, "test-agent")
	ctx := context.Background()

	t.Run("both validators attached when known", func(t *testing.T) {
		etag := `"abc"`
		lastMod := "Wed, 01 Jan 2025 00:00:00 GMT"
		_, err := f.Fetch(ctx, ts.URL, &etag, &lastMod)
		require.NoError(t, err)
		assert.Equal(t, `"abc"`, gotETag)
		assert.Equal(t, lastMod, gotModified)
	})

	t.Run("headers omitted when validators absent", func(t *testing.T) {
		_, err := f.Fetch(ctx, ts.URL, nil, nil)
		require.NoError(t, err)
		assert.False(t, etagPresent)
		assert.False(t, modifiedPresent)
	})
}

func TestFetcher_NotModified(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, "")
	etag := `"abc"`
	res, err := f.Fetch(context.Background(), ts.URL, &etag, nil)
	require.NoError(t, err)
	assert.True(t, res.NotModified)
	assert.Empty(t, res.Body)
}

func TestFetcher_Updated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v2"`)
		w.Header().Set("Last-Modified", "Thu, 02 Jan 2025 00:00:00 GMT")
		_, _ = w.Write([]byte("<rss/>"))
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, "")
	res, err := f.Fetch(context.Background(), ts.URL, nil, nil)
	require.NoError(t, err)

	assert.False(t, res.NotModified)
	assert.Equal(t, []byte("<rss/>"), res.Body)
	require.NotNil(t, res.ETag)
	assert.Equal(t, `"v2"`, *res.ETag)
	require.NotNil(t, res.LastModified)
	assert.Equal(t, "Thu, 02 Jan 2025 00:00:00 GMT", *res.LastModified)
}

func TestFetcher_MissingValidatorsAreNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<rss/>"))
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, "")
	res, err := f.Fetch(context.Background(), ts.URL, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, res.ETag)
	assert.Nil(t, res.LastModified)
}

func TestFetcher_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	f := NewFetcher(time.Second, "")
	_, err := f.Fetch(context.Background(), ts.URL, nil, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestFetcher_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from now on

	f := NewFetcher(time.Second, "")
	_, err := f.Fetch(context.Background(), ts.URL, nil, nil)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestFetcher_ContextCancel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	f := NewFetcher(10*time.Second, "")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, ts.URL, nil, nil)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
