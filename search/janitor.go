package search

import (
	"context"
	"log"
)

// Janitor sweeps expired entries out of a query cache. It implements the
// scheduler Job interface so eviction runs on a cron cadence rather than
// inline with requests.
type Janitor struct {
	cache *QueryCache
}

func NewJanitor(cache *QueryCache) *Janitor {
	return &Janitor{cache: cache}
}

func (j *Janitor) Name() string {
	return "query cache janitor"
}

func (j *Janitor) Run(ctx context.Context) error {
	dropped := j.cache.Cleanup()
	if dropped > 0 {
		log.Printf("Evicted %d expired cache entries (%d remain)", dropped, j.cache.Len())
	}
	return nil
}
