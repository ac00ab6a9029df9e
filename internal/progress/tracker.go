package progress

import (
	"sync"

	"github.com/julianstephens/smokeless/internal/models"
)

// MilestoneNotifier receives a signal for each milestone that becomes reached.
type MilestoneNotifier interface {
	NotifyMilestoneUnlocked(title string)
}

// Tracker remembers which milestones were already reached so each
// locked to unlocked transition is signalled exactly once.
type Tracker struct {
	mu       sync.Mutex
	notifier MilestoneNotifier
	title    func(id string) string
	seen     map[string]bool
	primed   bool
}

// NewTracker creates a tracker. title maps a milestone id to the text sent to
// the notifier; a nil title sends the id itself.
func NewTracker(notifier MilestoneNotifier, title func(id string) string) *Tracker {
	if title == nil {
		title = func(id string) string { return id }
	}
	return &Tracker{
		notifier: notifier,
		title:    title,
		seen:     make(map[string]bool),
	}
}

// Prime records the currently reached milestones as the baseline without
// signalling anything.
func (t *Tracker) Prime(achievements []models.AchievementStatus, benefits []models.HealthBenefitStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, a := range achievements {
		if a.Unlocked {
			t.seen[a.ID] = true
		}
	}
	for _, b := range benefits {
		if b.Achieved {
			t.seen[b.ID] = true
		}
	}
	t.primed = true
}

// Seed marks ids as already signalled and primes the tracker, so a restart
// does not repeat notifications that went out before.
func (t *Tracker) Seed(ids []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		t.seen[id] = true
	}
	t.primed = true
}

// Primed reports whether a baseline exists.
func (t *Tracker) Primed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.primed
}

// Observe returns the ids that became reached since the previous call and
// signals the notifier once for each. The first call on an unprimed tracker
// only establishes the baseline.
func (t *Tracker) Observe(achievements []models.AchievementStatus, benefits []models.HealthBenefitStatus) []string {
	t.mu.Lock()
	if !t.primed {
		t.mu.Unlock()
		t.Prime(achievements, benefits)
		return nil
	}

	var fresh []string
	for _, a := range achievements {
		if a.Unlocked && !t.seen[a.ID] {
			t.seen[a.ID] = true
			fresh = append(fresh, a.ID)
		}
	}
	for _, b := range benefits {
		if b.Achieved && !t.seen[b.ID] {
			t.seen[b.ID] = true
			fresh = append(fresh, b.ID)
		}
	}
	t.mu.Unlock()

	if t.notifier != nil {
		for _, id := range fresh {
			t.notifier.NotifyMilestoneUnlocked(t.title(id))
		}
	}
	return fresh
}

// Reset forgets the baseline, e.g. after the quit date was reset.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = make(map[string]bool)
	t.primed = false
}
