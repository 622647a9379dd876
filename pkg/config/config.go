package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pkgz/repeater/v2"

	"github.com/feedvault/feedvault/pkg/domain"
)

// Config holds the application configuration and the configured feed list.
// Timeouts are in seconds.
type Config struct {
	Server struct {
		Listen  string `toml:"listen"`
		Timeout int    `toml:"timeout"`
	} `toml:"server"`

	Database struct {
		DSN             string `toml:"dsn"`
		MaxOpenConns    int    `toml:"max_open_conns"`
		MaxIdleConns    int    `toml:"max_idle_conns"`
		ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	} `toml:"database"`

	Refresh struct {
		MaxConcurrent int    `toml:"max_concurrent"`
		HTTPTimeout   int    `toml:"http_timeout"`
		UserAgent     string `toml:"user_agent"`
	} `toml:"refresh"`

	// FeedsFile points to a separate feed list, a local path or an http(s)
	// URL. When empty the inline [[feeds]] tables are used.
	FeedsFile string `toml:"feeds_file"`

	Feeds []FeedConfig `toml:"feeds"`
}

// FeedConfig describes one configured feed source
type FeedConfig struct {
	ID      string   `toml:"id"`
	URL     string   `toml:"url"`
	Title   string   `toml:"title"`
	Enabled *bool    `toml:"enabled"` // nil means enabled
	Tags    []string `toml:"tags"`
}

// Domain converts a configured feed to its domain form
func (f FeedConfig) Domain() domain.Feed {
	return domain.Feed{ID: f.ID, URL: f.URL, Title: f.Title}
}

// Load reads configuration from a TOML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedvault.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for refresh
	if cfg.Refresh.MaxConcurrent == 0 {
		cfg.Refresh.MaxConcurrent = 5
	}
	if cfg.Refresh.HTTPTimeout == 0 {
		cfg.Refresh.HTTPTimeout = 20
	}
	if cfg.Refresh.UserAgent == "" {
		cfg.Refresh.UserAgent = "feedvault/1.0"
	}

	cfg.Feeds = normalizeFeeds(cfg.Feeds)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < 1 {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Refresh.MaxConcurrent < 1 {
		return fmt.Errorf("refresh.max_concurrent must be at least 1")
	}
	if cfg.Refresh.HTTPTimeout < 1 {
		return fmt.Errorf("refresh.http_timeout must be at least 1 second")
	}
	return nil
}

// FeedList resolves the configured feeds. A feeds_file setting, local or
// remote, takes precedence over the inline list.
func (c *Config) FeedList(ctx context.Context) ([]FeedConfig, error) {
	if c.FeedsFile == "" {
		return c.Feeds, nil
	}
	return LoadFeeds(ctx, c.FeedsFile)
}

// DomainFeeds converts configured feeds to their domain form
func DomainFeeds(feeds []FeedConfig) []domain.Feed {
	out := make([]domain.Feed, len(feeds))
	for i, f := range feeds {
		out[i] = f.Domain()
	}
	return out
}

// LoadFeeds reads a feed list from a local TOML file or an http(s) URL.
// Remote downloads are retried with backoff, a flaky connection at startup
// should not lose the whole feed list.
func LoadFeeds(ctx context.Context, source string) ([]FeedConfig, error) {
	var data []byte
	var err error

	if isRemote(source) {
		data, err = downloadFeeds(ctx, source)
	} else {
		data, err = os.ReadFile(source) //nolint:gosec // path comes from config
	}
	if err != nil {
		return nil, fmt.Errorf("read feed list %s: %w", source, err)
	}

	var wrapper struct {
		Feeds []FeedConfig `toml:"feeds"`
	}
	if err := toml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parse feed list %s: %w", source, err)
	}

	return normalizeFeeds(wrapper.Feeds), nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func downloadFeeds(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: 20 * time.Second}

	var data []byte
	retrier := repeater.NewBackoff(3, 250*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		data, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// normalizeFeeds drops disabled and URL-less entries, derives missing
// identifiers from the URL and defaults missing titles to the identifier
func normalizeFeeds(feeds []FeedConfig) []FeedConfig {
	out := make([]FeedConfig, 0, len(feeds))
	for _, f := range feeds {
		f.URL = strings.TrimSpace(f.URL)
		if f.URL == "" {
			continue
		}
		if f.Enabled != nil && !*f.Enabled {
			continue
		}
		if f.ID = strings.TrimSpace(f.ID); f.ID == "" {
			f.ID = domain.DeriveFeedID(f.URL)
		}
		if f.Title = strings.TrimSpace(f.Title); f.Title == "" {
			f.Title = f.ID
		}
		out = append(out, f)
	}
	return out
}
