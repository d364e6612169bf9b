package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kcc-web/update-publisher/app/cfg"
	"github.com/kcc-web/update-publisher/app/feed"
	"github.com/kcc-web/update-publisher/app/publisher"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting update publisher",
		"version", appCfg.Version,
		"feed_url", appCfg.FeedURL,
		"output_dir", appCfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := feed.NewClient(appCfg.FeedURL, appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)
	rewriter := feed.NewRewriter(appCfg.ImageBaseURL, appCfg.DocumentCDNURL)
	builder := feed.NewBuilder(appCfg.ImageBaseURL, appCfg.DefaultThumbnail)

	var sink publisher.Sink = publisher.NewFileSink()
	if appCfg.DryRun {
		slog.Info("Dry run: no files will be written")
		sink = publisher.NewDryRunSink()
	}

	p := publisher.New(client, rewriter, builder, sink, appCfg.OutputDir)

	if err := p.Run(ctx, time.Now()); err != nil {
		slog.Error("Publication failed", "error", err)
		os.Exit(1)
	}
}
