package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/apexchronicle/apex/pkg/config"
	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/feed"
	"github.com/apexchronicle/apex/pkg/jolpica"
	"github.com/apexchronicle/apex/pkg/openf1"
	"github.com/apexchronicle/apex/pkg/page"
	"github.com/apexchronicle/apex/pkg/repository"
	"github.com/apexchronicle/apex/pkg/scheduler"
	"github.com/apexchronicle/apex/pkg/upstream"
	"github.com/apexchronicle/apex/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"fetch log database DSN, overrides config"`
	Season int    `long:"season" env:"SEASON" description:"season of home and calendar pages, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	log.Printf("[INFO] starting apex version %s", revision)

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
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the server stops
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open fetch log: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	sched := scheduler.NewScheduler(scheduler.Params{
		Store:           repos.Fetch,
		MaxAge:          cfg.Retention.MaxAge,
		CleanupInterval: cfg.Retention.Interval,
		QueueSize:       cfg.Retention.QueueSize,
		MaxWorkers:      cfg.Retention.MaxWorkers,
	})
	sched.Start(ctx)
	defer sched.Stop()

	up := cfg.Upstream
	live := openf1.New(upstream.New(upstream.Opts{
		Source: "openf1", UserAgent: up.UserAgent, Timeout: up.APITimeout, Recorder: sched,
	}), up.OpenF1URL)
	history := jolpica.New(upstream.New(upstream.Opts{
		Source: "jolpica", UserAgent: up.UserAgent, Timeout: up.APITimeout, Recorder: sched,
	}), up.JolpicaURL)

	sources := feed.Sources{domain.NewsLatest: up.NewsURL, domain.NewsTechnical: up.TechnicalURL}
	news := feed.NewNews(upstream.New(upstream.Opts{
		Source:    "news",
		UserAgent: up.UserAgent,
		Accept:    "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8",
		Timeout:   up.NewsTimeout,
		Browser:   true,
		Recorder:  sched,
	}), up.RelayURL, sources)

	pages := page.NewService(live, history, news, page.Opts{Season: up.Season})
	log.Printf("[INFO] season %d, openf1 %s, jolpica %s", pages.Season(), up.OpenF1URL, up.JolpicaURL)

	srv := server.New(cfg, pages, repos.Fetch, server.Opts{
		Version: revision,
		Debug:   opts.Debug,
		BaseURL: cfg.Server.BaseURL,
		Sources: sources,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadConfig reads the config file, if any, and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}
	if opts.Season > 0 {
		cfg.Upstream.Season = opts.Season
	}
	return cfg, nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
