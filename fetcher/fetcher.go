package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/y-yagi/hotspots"
)

// NewHTTPClient returns a client whose responses are cached on disk under
// cachePath, or in memory when cachePath is empty.
func NewHTTPClient(cachePath string, timeout time.Duration) *http.Client {
	var transport *httpcache.Transport
	if cachePath == "" {
		transport = httpcache.NewMemoryCacheTransport()
	} else {
		transport = httpcache.NewTransport(diskcache.New(cachePath))
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

type Fetcher struct {
	client *http.Client
	log    logrus.FieldLogger
}

func New(client *http.Client, log logrus.FieldLogger) *Fetcher {
	return &Fetcher{client: client, log: log}
}

// Fetch retrieves url and returns at most limit entries in feed order.
// Failures are logged and reported in the result, never returned.
func (f *Fetcher) Fetch(ctx context.Context, url string, limit int) hotspots.FetchResult {
	log := f.log.WithField("url", url)
	log.Infof("Fetching %v...", url)

	fp := gofeed.NewParser()
	fp.Client = f.client
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		log.Warnf("'%v' parsed error: %v", url, err)
		return hotspots.FetchResult{Err: fmt.Errorf("fetch %s: %w", url, err)}
	}

	items := feed.Items
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}

	entries := lo.Map(items, func(item *gofeed.Item, _ int) hotspots.Entry {
		e := toEntry(item, log)
		log.Debugf("entry %s", e.String())
		return e
	})
	log.WithField("entries", len(entries)).Debug("feed parsed")

	return hotspots.FetchResult{Entries: entries}
}

func toEntry(item *gofeed.Item, log logrus.FieldLogger) hotspots.Entry {
	summary := item.Description
	if strings.TrimSpace(summary) == "" {
		summary = item.Content
	}

	return hotspots.Entry{
		Title:       item.Title,
		Link:        item.Link,
		Summary:     summary,
		PublishedAt: parsedTime(item.PublishedParsed, item.Published, log),
		UpdatedAt:   parsedTime(item.UpdatedParsed, item.Updated, log),
	}
}

// parsedTime prefers the time gofeed already parsed and falls back to a
// lenient parse of the raw value. Unparseable values are dropped.
func parsedTime(parsed *time.Time, raw string, log logrus.FieldLogger) *time.Time {
	if parsed != nil {
		return parsed
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		log.Debugf("unparseable date %q: %v", raw, err)
		return nil
	}
	return &t
}
