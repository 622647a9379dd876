package syncer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedvault/feedvault/pkg/domain"
	"github.com/feedvault/feedvault/pkg/feed"
	"github.com/feedvault/feedvault/pkg/store"
)

// feedServer serves a mutable RSS document with proper etag handling
type feedServer struct {
	mu    sync.Mutex
	etag  string
	items []string
	hits  int
}

func (fs *feedServer) addItem(guid, title string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.items = append(fs.items, fmt.Sprintf(
		"<item><guid>%s</guid><title>%s</title><link>https://example.com/%s</link></item>", guid, title, guid))
}

func (fs *feedServer) setETag(etag string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.etag = etag
}

func (fs *feedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.hits++

	if r.Header.Get("If-None-Match") == fs.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", fs.etag)
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>` +
		strings.Join(fs.items, "") + `</channel></rss>`
	_, _ = w.Write([]byte(body))
}

func TestSynchronizer_EndToEnd(t *testing.T) {
	srv := &feedServer{etag: `"gen-1"`}
	for i := 0; i < 10; i++ {
		srv.addItem(fmt.Sprintf("post-%d", i), fmt.Sprintf("Post %d", i))
	}

	ts := httptest.NewServer(srv)
	defer ts.Close()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := store.New(store.Config{DSN: "file:" + dbPath + "?mode=rwc"})
	require.NoError(t, err)
	defer st.Close()

	s := New(st, feed.NewFetcher(5*time.Second, "test"), feed.NewParser())
	src := domain.Feed{ID: domain.DeriveFeedID(ts.URL), URL: ts.URL, Title: "Test"}
	ctx := context.Background()

	// first sync pulls all ten articles
	res := s.Sync(ctx, src)
	require.NoError(t, res.Err)
	assert.Equal(t, domain.StatusFresh, res.Status)
	assert.Equal(t, 10, res.NewArticles)

	count, err := st.CountArticles(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	// second sync with unchanged content stops at the 304
	res = s.Sync(ctx, src)
	require.NoError(t, res.Err)
	assert.Equal(t, domain.StatusUnchanged, res.Status)
	assert.Equal(t, 0, res.NewArticles)

	count, err = st.CountArticles(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	// publisher adds two entries and rotates the etag
	srv.addItem("post-10", "Post 10")
	srv.addItem("post-11", "Post 11")
	srv.setETag(`"gen-2"`)

	res = s.Sync(ctx, src)
	require.NoError(t, res.Err)
	assert.Equal(t, domain.StatusFresh, res.Status)
	assert.Equal(t, 2, res.NewArticles, "only the new entries merge")

	count, err = st.CountArticles(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	// fourth sync settles back into 304 against the rotated etag
	res = s.Sync(ctx, src)
	require.NoError(t, res.Err)
	assert.Equal(t, domain.StatusUnchanged, res.Status)

	assert.Equal(t, 4, srv.hits)
}

func TestSynchronizer_EndToEnd_FailSoftKeepsCache(t *testing.T) {
	srv := &feedServer{etag: `"gen-1"`}
	srv.addItem("post-1", "Post 1")

	ts := httptest.NewServer(srv)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := store.New(store.Config{DSN: "file:" + dbPath + "?mode=rwc"})
	require.NoError(t, err)
	defer st.Close()

	s := New(st, feed.NewFetcher(time.Second, "test"), feed.NewParser())
	src := domain.Feed{ID: domain.DeriveFeedID(ts.URL), URL: ts.URL, Title: "Test"}
	ctx := context.Background()

	res := s.Sync(ctx, src)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.NewArticles)

	// feed goes dark; cached articles must survive the failed refresh
	ts.Close()

	res = s.Sync(ctx, src)
	assert.Equal(t, domain.StatusStale, res.Status)
	require.Error(t, res.Err)

	articles, err := st.ListArticles(ctx, src.ID, 0)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "post-1", articles[0].Key)
}
