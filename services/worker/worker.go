package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"forgefinds/dealworker/internal/deal"
	"forgefinds/dealworker/internal/scraper"
	"forgefinds/dealworker/internal/store"
	"forgefinds/dealworker/logger"
	"forgefinds/dealworker/services/publisher"
)

// Worker runs the scheduled deal update pipeline: scrape the configured
// sources, merge the batch into the persisted collection, renormalize
// derived fields, write the document back and publish it downstream.
type Worker struct {
	ctx            context.Context
	scrapers       []scraper.Scraper
	store          *store.Store
	publisher      publisher.Publisher
	updateInterval time.Duration
	maxAgeDays     int
	maxDeals       int
	log            *logger.Logger
	clock          func() time.Time
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	scrapers []scraper.Scraper,
	st *store.Store,
	pub publisher.Publisher,
	updateInterval time.Duration,
	maxAgeDays int,
	maxDeals int,
) *Worker {
	return &Worker{
		ctx:            ctx,
		scrapers:       scrapers,
		store:          st,
		publisher:      pub,
		updateInterval: updateInterval,
		maxAgeDays:     maxAgeDays,
		maxDeals:       maxDeals,
		log:            logger.ForWorker(),
		clock:          time.Now,
	}
}

// Start runs the update pipeline immediately, then on every interval
// tick until the context is cancelled
func (w *Worker) Start() error {
	if err := w.RunOnce(); err != nil {
		w.log.Error().Err(err).Msg("Update run failed")
	}

	ticker := time.NewTicker(w.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := w.RunOnce(); err != nil {
				w.log.Error().Err(err).Msg("Update run failed")
				continue
			}
			w.log.Debug().Dur("elapsed", time.Since(start)).Msg("Update run finished")
		}
	}
}

// RunOnce executes one full update pass. A corrupted persisted document
// aborts the run before anything is overwritten.
func (w *Worker) RunOnce() error {
	now := w.clock().UTC()

	existing, err := w.store.Load()
	if err != nil {
		return err
	}
	w.log.Info().Int("count", len(existing)).Msg("Loaded existing deals")

	scraped := w.scrapeAll()
	if len(scraped) == 0 {
		w.log.Warn().Msg("No deals scraped, keeping existing collection")
	}

	merged := deal.Merge(existing, scraped, now, w.maxAgeDays, w.maxDeals)
	for i := range merged {
		merged[i] = deal.NormalizeTimestamps(merged[i], now)
		merged[i] = deal.DeriveNumbers(merged[i])
	}

	if err := w.store.Save(merged); err != nil {
		return err
	}

	w.log.Info().
		Int("existing", len(existing)).
		Int("scraped", len(scraped)).
		Int("total", len(merged)).
		Str("file", w.store.Path()).
		Msg("Deal collection updated")

	w.publish(merged)
	return nil
}

// scrapeAll runs every scraper in parallel and deduplicates the combined
// batch by natural key so the merge sees at most one record per deal
func (w *Worker) scrapeAll() []deal.Deal {
	results := make(chan []deal.Deal, len(w.scrapers))
	var wg sync.WaitGroup

	for _, s := range w.scrapers {
		wg.Add(1)
		go func(s scraper.Scraper) {
			defer wg.Done()
			deals, err := s.FetchDeals()
			if err != nil {
				w.log.Error().Err(err).Str("scraper", s.GetName()).Msg("Scrape failed")
				return
			}
			w.log.Info().Str("scraper", s.GetName()).Int("count", len(deals)).Msg("Scraped deals")
			results <- deals
		}(s)
	}

	wg.Wait()
	close(results)

	var batch []deal.Deal
	seen := make(map[string]int)
	for deals := range results {
		for _, d := range deals {
			if i, ok := seen[d.Key()]; ok {
				batch[i] = d
				continue
			}
			seen[d.Key()] = len(batch)
			batch = append(batch, d)
		}
	}
	return batch
}

// publish sends the refreshed collection to the stream; failures are
// logged, not fatal, since the document on disk is already current
func (w *Worker) publish(deals []deal.Deal) {
	if w.publisher == nil {
		return
	}

	data, err := json.Marshal(deals)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to encode deals for publishing")
		return
	}

	if err := w.publisher.Publish("deals", data); err != nil {
		w.log.Error().Err(err).Msg("Failed to publish deals")
		return
	}

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}
}
