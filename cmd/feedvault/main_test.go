package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLog(t *testing.T) {
	// smoke test both modes
	setupLog(false)
	setupLog(true)
	setupLog(true, "secret")
}

func TestRun_MissingConfig(t *testing.T) {
	opts := Opts{Config: filepath.Join(t.TempDir(), "nope.toml")}

	err := run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_BadFeedsFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "feedvault.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0o600))

	opts := Opts{Config: cfgPath, FeedsFile: filepath.Join(t.TempDir(), "missing-feeds.toml")}

	err := run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load feed list")
}

func TestRun_StartAndShutdown(t *testing.T) {
	dir := t.TempDir()
	port := freePort(t)

	cfgPath := filepath.Join(dir, "feedvault.toml")
	cfg := fmt.Sprintf(`
[server]
listen = "127.0.0.1:%d"

[database]
dsn = "file:%s?mode=rwc"

[[feeds]]
url = "https://example.com/feed.xml"
`, port, filepath.Join(dir, "cache.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: cfgPath}) }()

	// wait for the server to come up
	var resp *http.Response
	var err error
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
