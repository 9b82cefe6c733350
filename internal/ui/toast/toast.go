// Package toast shows transient status messages. A new toast replaces the
// visible one and takes over its hide timer; there is no queue.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

const (
	// ShortDelay is how long ordinary toasts and flash messages stay visible.
	ShortDelay = 2500 * time.Millisecond
	// LongDelay applies to long-lived messages such as one-time passcodes.
	LongDelay = 7 * time.Second
	// LongLivedClass marks a flash message as long-lived.
	LongLivedClass = "otp"
)

// DelayFor returns the auto-hide delay for a toast.
func DelayFor(longLived bool) time.Duration {
	if longLived {
		return LongDelay
	}
	return ShortDelay
}

// Surface is the on-page element toasts are drawn into.
type Surface interface {
	Show(t model.Toast)
	Hide(t model.Toast)
}

// Alerter is the blocking fallback used for errors when the page has no surface.
type Alerter interface {
	Alert(message string)
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Notifier drives a single toast surface.
type Notifier struct {
	mu      sync.Mutex
	surface Surface
	alert   Alerter
	sched   Scheduler
	current model.Toast
	hide    Timer
}

// Option customises a Notifier.
type Option func(*Notifier)

// WithScheduler replaces the wall clock used for hide timers.
func WithScheduler(s Scheduler) Option {
	return func(n *Notifier) {
		if s != nil {
			n.sched = s
		}
	}
}

// New constructs a Notifier. surface may be nil when the page has no toast
// element; alert may be nil to drop error fallbacks as well.
func New(surface Surface, alert Alerter, opts ...Option) *Notifier {
	n := &Notifier{
		surface: surface,
		alert:   alert,
		sched:   wallClock{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify shows message with the given tone on the short delay. Long-lived
// toasts go through Show with LongLived set.
func (n *Notifier) Notify(message string, tone model.Tone) {
	n.Show(model.Toast{Message: message, Tone: tone})
}

// NotifyAfter shows message once delay has elapsed.
func (n *Notifier) NotifyAfter(delay time.Duration, message string, tone model.Tone) {
	n.sched.AfterFunc(delay, func() {
		n.Notify(message, tone)
	})
}

// Show replaces the visible toast with t and schedules it to hide.
func (n *Notifier) Show(t model.Toast) {
	if t.Tone == "" {
		t.Tone = model.ToneInfo
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.surface == nil {
		if t.Tone == model.ToneError && n.alert != nil {
			n.alert.Alert(t.Message)
		}
		return
	}
	if n.hide != nil {
		n.hide.Stop()
		n.hide = nil
	}
	n.current = t
	n.surface.Show(t)
	expected := t
	n.hide = n.sched.AfterFunc(DelayFor(t.LongLived), func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.current.ID != expected.ID {
			return
		}
		n.current = model.Toast{}
		n.hide = nil
		n.surface.Hide(expected)
	})
}

// Current returns the toast that is visible right now.
func (n *Notifier) Current() (model.Toast, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.current.ID != ""
}
