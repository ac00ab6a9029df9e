package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var quit = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type memStore struct {
	mu       sync.Mutex
	quit     time.Time
	profile  *models.SmokingProfile
	notified []string
	markErr  error
}

func newMemStore() *memStore {
	return &memStore{
		quit: quit,
		profile: &models.SmokingProfile{
			Name:              "Deniz",
			CigarettesPerDay:  20,
			PricePerPack:      10,
			CigarettesPerPack: 20,
		},
	}
}

func (s *memStore) GetQuitDate() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit.IsZero() {
		return time.Time{}, storage.ErrNotFound
	}
	return s.quit, nil
}

func (s *memStore) GetProfile() (models.SmokingProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.SmokingProfile{}, storage.ErrNotFound
	}
	return *s.profile, nil
}

func (s *memStore) GetNotifiedMilestones() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.notified...), nil
}

func (s *memStore) MarkMilestonesNotified(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markErr != nil {
		return s.markErr
	}
	s.notified = append(s.notified, ids...)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	titles []string
}

func (r *recorder) NotifyMilestoneUnlocked(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.titles)
}

func newWatcher(store Store, rec *recorder, at *time.Time) *Watcher {
	w := New(store, rec, func(id string) string { return "title:" + id }, time.Hour,
		WithClock(func() time.Time { return *at }))
	return w
}

func TestWatcher_FirstCheckIsSilentBaseline(t *testing.T) {
	store := newMemStore()
	rec := &recorder{}
	at := quit.Add(10 * time.Minute)
	w := newWatcher(store, rec, &at)

	fresh, err := w.Check()
	require.NoError(t, err)
	assert.Empty(t, fresh)
	assert.Zero(t, rec.count())
	assert.Equal(t, []string{"days_1"}, store.notified, "baseline is persisted")
}

func TestWatcher_SignalsEachTransitionOnce(t *testing.T) {
	store := newMemStore()
	rec := &recorder{}
	at := quit.Add(10 * time.Minute)
	w := newWatcher(store, rec, &at)

	_, err := w.Check()
	require.NoError(t, err)

	at = quit.Add(25 * time.Minute)
	fresh, err := w.Check()
	require.NoError(t, err)
	assert.Equal(t, []string{"20m"}, fresh)
	assert.Equal(t, []string{"title:20m"}, rec.titles)
	assert.Contains(t, store.notified, "20m")

	at = quit.Add(30 * time.Minute)
	fresh, err = w.Check()
	require.NoError(t, err)
	assert.Empty(t, fresh)
	assert.Equal(t, 1, rec.count())
}

func TestWatcher_RestartDoesNotRepeat(t *testing.T) {
	store := newMemStore()
	rec := &recorder{}
	at := quit.Add(10 * time.Minute)

	first := newWatcher(store, rec, &at)
	_, err := first.Check()
	require.NoError(t, err)
	at = quit.Add(9 * time.Hour)
	fresh, err := first.Check()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"20m", "8h"}, fresh)

	// a new process seeds from the store instead of priming
	restarted := newWatcher(store, rec, &at)
	at = quit.Add(25 * time.Hour)
	fresh, err = restarted.Check()
	require.NoError(t, err)
	assert.Equal(t, []string{"24h"}, fresh)
	assert.Equal(t, 3, rec.count())
}

func TestWatcher_NotReadyResetsBaseline(t *testing.T) {
	store := newMemStore()
	store.quit = time.Time{}
	rec := &recorder{}
	at := quit.Add(time.Hour)
	w := newWatcher(store, rec, &at)

	fresh, err := w.Check()
	require.NoError(t, err)
	assert.Nil(t, fresh)
	assert.False(t, w.tracker.Primed())
	assert.Empty(t, store.notified)
}

func TestWatcher_MarkFailure(t *testing.T) {
	store := newMemStore()
	store.markErr = errors.New("database is locked")
	rec := &recorder{}
	at := quit.Add(10 * time.Minute)
	w := newWatcher(store, rec, &at)

	_, err := w.Check()
	assert.ErrorContains(t, err, "database is locked")
}

func TestWatcher_RunStopsWithContext(t *testing.T) {
	store := newMemStore()
	rec := &recorder{}
	at := quit.Add(10 * time.Minute)
	w := newWatcher(store, rec, &at)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		ids, _ := store.GetNotifiedMilestones()
		return len(ids) > 0
	}, 5*time.Second, 10*time.Millisecond, "initial check runs on start")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
