package publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/kcc-web/update-publisher/app/feed"
)

// Publisher runs the publication pipeline: fetch the feed, keep the
// items still worth publishing, transform each one into a document,
// and hand the results to the sink in feed order. Items are processed
// independently; nothing is carried between them.
type Publisher struct {
	client    *feed.Client
	filterer  *feed.Filterer
	rewriter  *feed.Rewriter
	builder   *feed.Builder
	generator *feed.Generator
	sink      Sink
	outputDir string
}

func New(client *feed.Client, rewriter *feed.Rewriter, builder *feed.Builder, sink Sink, outputDir string) *Publisher {
	return &Publisher{
		client:    client,
		filterer:  feed.NewFilterer(),
		rewriter:  rewriter,
		builder:   builder,
		generator: feed.NewGenerator(),
		sink:      sink,
		outputDir: outputDir,
	}
}

// Run executes one publication pass. The first malformed item or sink
// failure aborts the pass.
func (p *Publisher) Run(ctx context.Context, now time.Time) error {
	items, err := p.client.Fetch(ctx)
	if err != nil {
		return err
	}

	published, err := p.Publish(items, now)
	if err != nil {
		return err
	}

	slog.Info("Publication pass completed",
		"total", len(items),
		"expired", len(items)-published,
		"published", published)

	return nil
}

// Publish transforms and emits every eligible item, preserving feed
// order, and returns the number of documents emitted.
func (p *Publisher) Publish(items []feed.Item, now time.Time) (int, error) {
	eligible := p.filterer.Run(items, now)

	published := 0
	for _, item := range eligible {
		record, err := p.transform(item)
		if err != nil {
			return published, err
		}

		if err := p.sink.Write(record); err != nil {
			return published, err
		}
		published++
	}

	return published, nil
}

// transform builds the output record for one eligible item.
func (p *Publisher) transform(item feed.Item) (OutputRecord, error) {
	content := p.rewriter.Run(item.Content)

	article, err := p.builder.Run(item, content)
	if err != nil {
		return OutputRecord{}, err
	}

	return OutputRecord{
		Dir:     p.outputDir,
		Name:    feed.Identifier(item.Title, item.PublishedAt),
		Content: p.generator.Run(article),
	}, nil
}
