package aggregator

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/y-yagi/hotspots"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string, limit int) hotspots.FetchResult
}

type Aggregator struct {
	fetcher      Fetcher
	skipPatterns []string
	log          logrus.FieldLogger
}

func New(fetcher Fetcher, skipPatterns []string, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{fetcher: fetcher, skipPatterns: skipPatterns, log: log}
}

// Aggregate fetches feeds one at a time in configured order. Placeholder
// feeds are never fetched, and feeds that fail or yield no entries are left
// out of the digest.
func (a *Aggregator) Aggregate(ctx context.Context, feeds []hotspots.FeedSource, limit int) *hotspots.Digest {
	digest := &hotspots.Digest{}
	var ok, failed, skipped int

	a.log.Info("Starting feed fetch...")
	for i, feed := range feeds {
		if err := ctx.Err(); err != nil {
			a.log.Warnf("feed fetch interrupted: %v", err)
			failed += len(feeds) - i
			break
		}

		log := a.log.WithFields(logrus.Fields{"feed": feed.Name, "url": feed.URL})
		if hotspots.MatchesAny(feed.URL, a.skipPatterns) {
			log.Debug("placeholder feed skipped")
			skipped++
			continue
		}

		res := a.fetcher.Fetch(ctx, feed.URL, limit)
		if !res.OK() {
			failed++
			continue
		}
		if !digest.Add(feed.Name, res.Entries) {
			log.Info("feed has no entries")
			continue
		}
		ok++
	}

	a.log.WithFields(logrus.Fields{
		"successful": ok,
		"failed":     failed,
		"skipped":    skipped,
		"total":      len(feeds),
	}).Info("Feed collection summary")

	return digest
}
