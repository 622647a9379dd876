package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedvault/feedvault/pkg/config"
	"github.com/feedvault/feedvault/pkg/feed"
	"github.com/feedvault/feedvault/pkg/store"
	"github.com/feedvault/feedvault/pkg/syncer"
	"github.com/feedvault/feedvault/server"
)

// Opts with all CLI options
type Opts struct {
	Config    string `short:"c" long:"config" env:"CONFIG" default:"feedvault.toml" description:"config file"`
	DB        string `long:"db" env:"RSS_CACHE_DB" description:"cache database location, overrides config"`
	FeedsFile string `long:"feeds" env:"FEED_TOML" description:"feed list source (path or URL), overrides config"`
	Listen    string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting feedvault version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] feedvault failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires the components and serves until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// CLI/env overrides for the cache location and the feed-list source
	if opts.DB != "" {
		cfg.Database.DSN = "file:" + opts.DB + "?cache=shared&mode=rwc"
	}
	if opts.FeedsFile != "" {
		cfg.FeedsFile = opts.FeedsFile
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	feedList, err := cfg.FeedList(ctx)
	if err != nil {
		return fmt.Errorf("failed to load feed list: %w", err)
	}
	feeds := config.DomainFeeds(feedList)
	log.Printf("[INFO] %d feeds configured", len(feeds))

	st, err := store.New(store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	fetcher := feed.NewFetcher(time.Duration(cfg.Refresh.HTTPTimeout)*time.Second, cfg.Refresh.UserAgent)
	feedSyncer := syncer.New(st, fetcher, feed.NewParser())
	coordinator := syncer.NewCoordinator(feedSyncer, cfg.Refresh.MaxConcurrent)

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: time.Duration(cfg.Server.Timeout) * time.Second,
		Version: revision,
		Debug:   opts.Debug,
	}, st, feedSyncer, coordinator, feeds)

	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
