package feedback

import (
	"io"
	"os"
	"sync"

	"github.com/julianstephens/smokeless/internal/logger"
)

const bell = "\a"

// Notifier delivers milestone and interaction feedback. Every method is fire
// and forget: delivery failures are logged at debug level and never returned.
type Notifier struct {
	mu           sync.Mutex
	enabled      bool
	interactions bool
	out          io.Writer
	send         func(text string) error
}

type Option func(*Notifier)

// WithOutput sets where the terminal bell fallback is written.
func WithOutput(w io.Writer) Option {
	return func(n *Notifier) { n.out = w }
}

// WithInteractionBell rings the bell on NotifyInteraction.
func WithInteractionBell(on bool) Option {
	return func(n *Notifier) { n.interactions = on }
}

// WithSender replaces the tray webhook transport.
func WithSender(send func(text string) error) Option {
	return func(n *Notifier) { n.send = send }
}

func New(enabled bool, opts ...Option) *Notifier {
	n := &Notifier{
		enabled: enabled,
		out:     os.Stderr,
		send:    SendTray,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetEnabled follows the notifications setting at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

func (n *Notifier) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

// Notify sends text to the tray companion and returns the delivery error.
func (n *Notifier) Notify(text string) error {
	return n.send(text)
}

// NotifyMilestoneUnlocked signals a newly unlocked achievement or benefit.
// Falls back to the terminal bell when the tray is unreachable.
func (n *Notifier) NotifyMilestoneUnlocked(title string) {
	if !n.Enabled() {
		return
	}
	if err := n.send(title); err != nil {
		logger.Debug("Tray notification failed, ringing bell", "title", title, "error", err)
		n.ring()
		return
	}
	logger.Debug("Milestone notification sent", "title", title)
}

// NotifyInteraction is the light acknowledgement for an answer selection.
func (n *Notifier) NotifyInteraction() {
	if !n.Enabled() || !n.interactions {
		return
	}
	n.ring()
}

func (n *Notifier) ring() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.out == nil {
		return
	}
	if _, err := io.WriteString(n.out, bell); err != nil {
		logger.Debug("Failed to ring terminal bell", "error", err)
	}
}
