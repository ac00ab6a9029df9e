package onboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/logger"
)

var (
	ErrFlowComplete         = errors.New("onboarding is already on its final step")
	ErrNotFinished          = errors.New("onboarding has not reached its final step")
	ErrNotCalculating       = errors.New("onboarding is not calculating")
	ErrCalculationCancelled = errors.New("calculation was cancelled")
)

// InteractionNotifier receives a light signal for each accepted answer.
type InteractionNotifier interface {
	NotifyInteraction()
}

// Flow is the onboarding state machine. It owns the draft and the
// Calculating timer; all methods are safe to call from the UI goroutine
// while the timer fires on its own goroutine.
type Flow struct {
	mu       sync.Mutex
	step     Step
	draft    Draft
	clock    func() time.Time
	delay    time.Duration
	feedback InteractionNotifier

	// generation invalidates timers that were stopped too late to prevent
	// their callback from running
	generation uint64
	timer      *time.Timer
	run        *calculation
}

type calculation struct {
	done  chan struct{}
	fired bool
}

type Option func(*Flow)

func WithClock(clock func() time.Time) Option {
	return func(f *Flow) { f.clock = clock }
}

// WithCalculatingDelay overrides how long the Calculating step lasts.
func WithCalculatingDelay(d time.Duration) Option {
	return func(f *Flow) { f.delay = d }
}

func WithFeedback(n InteractionNotifier) Option {
	return func(f *Flow) { f.feedback = n }
}

// New starts a flow on the Welcome step.
func New(opts ...Option) *Flow {
	f := &Flow{
		step:  StepWelcome,
		clock: time.Now,
		delay: constants.CalculatingDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Current() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Draft returns a copy of the answers collected so far.
func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.clone()
}

// Advance validates answer for the current step, records it and moves to the
// next step. On a validation error the flow stays where it is.
func (f *Flow) Advance(answer Answer) (Step, error) {
	f.mu.Lock()
	if f.step == StepAchievement {
		f.mu.Unlock()
		return StepAchievement, ErrFlowComplete
	}

	t := table[f.step]
	if t.apply != nil {
		next := f.draft.clone()
		if err := t.apply(&next, answer, f.clock()); err != nil {
			step := f.step
			f.mu.Unlock()
			logger.Debug("Onboarding answer rejected", "step", step, "error", err)
			return step, err
		}
		f.draft = next
	}

	f.moveLocked(t.next(f.draft))
	step := f.step
	f.mu.Unlock()

	if f.feedback != nil {
		f.feedback.NotifyInteraction()
	}
	return step, nil
}

// Back moves to the predecessor computed from the current step and the
// draft. Back from Welcome stays on Welcome.
func (f *Flow) Back() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moveLocked(table[f.step].prev(f.draft))
	return f.step
}

// Cancel stops a pending Calculating timer. Call it when the flow is torn
// down; the timer will not fire afterwards.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelLocked()
}

// AwaitCalculation blocks until the Calculating step auto-advances and
// returns the new step. It returns ErrCalculationCancelled if the step was
// left or cancelled first, and ErrNotCalculating if no timer is pending.
func (f *Flow) AwaitCalculation(ctx context.Context) (Step, error) {
	f.mu.Lock()
	run := f.run
	step := f.step
	f.mu.Unlock()

	if run == nil {
		return step, ErrNotCalculating
	}

	select {
	case <-run.done:
		if run.fired {
			return StepResults, nil
		}
		return f.Current(), ErrCalculationCancelled
	case <-ctx.Done():
		return f.Current(), ctx.Err()
	}
}

// Calculating reports whether the auto-advance timer is pending.
func (f *Flow) Calculating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.run != nil
}

func (f *Flow) moveLocked(to Step) {
	if f.step == StepCalculating && to != StepCalculating {
		f.cancelLocked()
	}
	entering := to == StepCalculating && f.step != StepCalculating
	f.step = to
	if entering {
		f.startLocked()
	}
}

func (f *Flow) startLocked() {
	f.generation++
	gen := f.generation
	f.run = &calculation{done: make(chan struct{})}
	f.timer = time.AfterFunc(f.delay, func() { f.fire(gen) })
}

func (f *Flow) fire(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation || f.step != StepCalculating || f.run == nil {
		return
	}
	f.step = StepResults
	f.timer = nil
	f.run.fired = true
	close(f.run.done)
	f.run = nil
}

func (f *Flow) cancelLocked() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	if f.run != nil {
		close(f.run.done)
		f.run = nil
	}
}
