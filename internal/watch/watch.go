package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/progress"
)

// Store is what the watcher reads progress from and records signalled
// milestones in.
type Store interface {
	progress.Source
	GetNotifiedMilestones() ([]string, error)
	MarkMilestonesNotified(ids []string) error
}

// Watcher periodically re-evaluates progress and signals milestones that
// became reached since the last check. Signalled ids are persisted so a
// restart does not repeat them.
type Watcher struct {
	store    Store
	tracker  *progress.Tracker
	cron     *cron.Cron
	interval time.Duration
	now      func() time.Time

	mu sync.Mutex
}

type Option func(*Watcher)

// WithClock overrides time.Now for snapshot evaluation.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) { w.now = now }
}

func New(store Store, notifier progress.MilestoneNotifier, title func(id string) string, interval time.Duration, opts ...Option) *Watcher {
	w := &Watcher{
		store:    store,
		tracker:  progress.NewTracker(notifier, title),
		cron:     cron.New(),
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Check runs one evaluation and returns the ids signalled by it.
func (w *Watcher) Check() ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := progress.LoadSnapshot(w.store, w.now())
	if !snap.Ready {
		// nothing to track, and a later quit date starts from scratch
		w.tracker.Reset()
		return nil, nil
	}

	priming := false
	if !w.tracker.Primed() {
		ids, err := w.store.GetNotifiedMilestones()
		if err != nil {
			return nil, fmt.Errorf("failed to read notified milestones: %w", err)
		}
		if len(ids) > 0 {
			w.tracker.Seed(ids)
		} else {
			priming = true
		}
	}

	fresh := w.tracker.Observe(snap.Achievements, snap.Benefits)

	record := fresh
	if priming {
		record = reached(snap)
		logger.Debug("Milestone baseline established", "reached", len(record))
	}
	if len(record) > 0 {
		if err := w.store.MarkMilestonesNotified(record); err != nil {
			return fresh, fmt.Errorf("failed to record notified milestones: %w", err)
		}
	}
	if len(fresh) > 0 {
		logger.Info("Milestones reached", "ids", fresh)
	}
	return fresh, nil
}

func reached(snap progress.Snapshot) []string {
	var ids []string
	for _, a := range snap.Achievements {
		if a.Unlocked {
			ids = append(ids, a.ID)
		}
	}
	for _, b := range snap.Benefits {
		if b.Achieved {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (w *Watcher) tick() {
	if _, err := w.Check(); err != nil {
		logger.Error("Milestone check failed", "error", err)
	}
}

// Reset forgets the in-memory baseline so the next Check reseeds from the
// store, e.g. after the quit date was reset.
func (w *Watcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tracker.Reset()
}

// Start runs a check immediately and then on every interval until Stop.
func (w *Watcher) Start() error {
	cronExpr := fmt.Sprintf("@every %s", w.interval)
	if _, err := w.cron.AddFunc(cronExpr, w.tick); err != nil {
		return fmt.Errorf("failed to schedule milestone check: %w", err)
	}

	logger.Info("Starting milestone watcher", "interval", w.interval)
	w.tick()
	w.cron.Start()
	return nil
}

// Stop waits for a running check to finish.
func (w *Watcher) Stop() {
	<-w.cron.Stop().Done()
	logger.Info("Milestone watcher stopped")
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}
