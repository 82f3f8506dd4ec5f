package search

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"creator-compass/analysis"
	"creator-compass/internal/models"
	"creator-compass/shared/monitoring"
)

const defaultMaxResults = 10

// State of the search lifecycle. Transient states exist so callers polling
// Status can render progress; terminal states carry either results or an
// error, never both.
type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateSuccess   State = "success"
	StateError     State = "error"
)

// Provider fetches raw video data for a query. The production implementation
// talks to the YouTube Data API; tests substitute a fake.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int64) ([]string, error)
	Videos(ctx context.Context, ids []string) ([]*models.VideoRecord, error)
}

// Orchestrator runs the search-analyze-cache pipeline and tracks its state.
type Orchestrator struct {
	provider   Provider
	cache      *QueryCache
	monitor    *monitoring.Monitor
	maxResults int64
	rng        *rand.Rand

	mu      sync.Mutex
	state   State
	lastErr error
	results []models.VideoResult
}

func NewOrchestrator(provider Provider, cache *QueryCache, monitor *monitoring.Monitor, maxResults int64, rng *rand.Rand) *Orchestrator {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{
		provider:   provider,
		cache:      cache,
		monitor:    monitor,
		maxResults: maxResults,
		rng:        rng,
		state:      StateIdle,
	}
}

// Search resolves a query to analyzed results, serving from cache when the
// exact query was seen before. A cache hit performs no provider calls.
func (o *Orchestrator) Search(ctx context.Context, query string) ([]models.VideoResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		o.setError(ErrEmptyQuery)
		return nil, ErrEmptyQuery
	}

	if cached, ok := o.cache.Get(query); ok {
		log.Printf("Serving %d cached results for query %q", len(cached), query)
		o.setSuccess(cached)
		return cached, nil
	}

	o.setState(StateSearching)
	start := time.Now()

	results, err := o.fetchAndAnalyze(ctx, query)
	if err != nil {
		o.setError(err)
		o.monitor.RecordFailure(err, time.Since(start))
		return nil, err
	}

	o.cache.Put(query, results)
	o.setSuccess(results)
	o.monitor.RecordSuccess(fmt.Sprintf("analyzed %d videos for %q", len(results), query), time.Since(start))
	return results, nil
}

func (o *Orchestrator) fetchAndAnalyze(ctx context.Context, query string) ([]models.VideoResult, error) {
	ids, err := o.provider.Search(ctx, query, o.maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoResults
	}

	records, err := o.provider.Videos(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoResults
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	results := make([]models.VideoResult, 0, len(records))
	for _, rec := range records {
		results = append(results, analysis.Result(rec, o.rng))
	}
	return results, nil
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// LastError returns the error from the most recent failed search, or nil.
func (o *Orchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Results returns a copy of the most recent successful result set.
func (o *Orchestrator) Results() []models.VideoResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.VideoResult, len(o.results))
	copy(out, o.results)
	return out
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
}

func (o *Orchestrator) setSuccess(results []models.VideoResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateSuccess
	o.lastErr = nil
	o.results = results
}

func (o *Orchestrator) setError(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateError
	o.lastErr = err
	o.results = nil
}
