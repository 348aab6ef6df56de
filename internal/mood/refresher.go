package mood

import (
	"context"
	"log"
	"time"
)

// Pruner deletes old mood log rows. Implemented by the sqlite store.
type Pruner interface {
	PruneMoodLog(before time.Time) (int64, error)
}

// Refresher keeps the snapshot warm so page loads rarely pay for a rebuild,
// and runs the daily mood-log prune.
type Refresher struct {
	assembler *Assembler
	pruner    Pruner
	interval  time.Duration
	retain    time.Duration
}

// NewRefresher builds a refresher that rebuilds every interval and keeps
// retain worth of mood log. A zero interval defaults to the cache TTL; a
// zero retain disables pruning.
func NewRefresher(a *Assembler, pruner Pruner, interval, retain time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultTTL
	}
	return &Refresher{
		assembler: a,
		pruner:    pruner,
		interval:  interval,
		retain:    retain,
	}
}

func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)
	r.prune()

	refreshTicker := time.NewTicker(r.interval)
	pruneTicker := time.NewTicker(24 * time.Hour)
	defer refreshTicker.Stop()
	defer pruneTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-refreshTicker.C:
			r.refresh(ctx)
		case <-pruneTicker.C:
			r.prune()
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	snap := r.assembler.Current(ctx, Options{})
	log.Printf("refresher: snapshot ready, theme %s", snap.Theme.ID)
}

func (r *Refresher) prune() {
	if r.pruner == nil || r.retain <= 0 {
		return
	}
	pruned, err := r.pruner.PruneMoodLog(time.Now().Add(-r.retain))
	if err != nil {
		log.Printf("refresher: prune mood log: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("refresher: pruned %d mood log rows", pruned)
	}
}
