package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) fire(t *testing.T, idx int) {
	t.Helper()
	s.mu.Lock()
	if idx >= len(s.timers) {
		s.mu.Unlock()
		t.Fatalf("no timer %d scheduled", idx)
	}
	timer := s.timers[idx]
	s.mu.Unlock()
	if !timer.stopped {
		timer.stopped = true
		timer.fn()
	}
}

type recordingSurface struct {
	shown  []model.Toast
	hidden []model.Toast
}

func (s *recordingSurface) Show(t model.Toast) { s.shown = append(s.shown, t) }
func (s *recordingSurface) Hide(t model.Toast) { s.hidden = append(s.hidden, t) }

type recordingAlerter struct {
	messages []string
}

func (a *recordingAlerter) Alert(message string) { a.messages = append(a.messages, message) }

func TestNotifyShowsThenHidesAfterShortDelay(t *testing.T) {
	surface := &recordingSurface{}
	sched := &fakeScheduler{}
	n := New(surface, nil, WithScheduler(sched))

	n.Notify("Submission approved successfully", model.ToneSuccess)
	if len(surface.shown) != 1 || surface.shown[0].Tone != model.ToneSuccess {
		t.Fatalf("expected toast to be shown, got %+v", surface.shown)
	}
	if sched.timers[0].delay != ShortDelay {
		t.Fatalf("expected %s hide delay, got %s", ShortDelay, sched.timers[0].delay)
	}
	sched.fire(t, 0)
	if len(surface.hidden) != 1 {
		t.Fatalf("expected toast to be hidden")
	}
	if _, ok := n.Current(); ok {
		t.Fatalf("expected no visible toast after hide")
	}
}

func TestNotifyReplacesVisibleToast(t *testing.T) {
	surface := &recordingSurface{}
	sched := &fakeScheduler{}
	n := New(surface, nil, WithScheduler(sched))

	n.Notify("first", model.ToneInfo)
	n.Notify("second", model.ToneError)

	if !sched.timers[0].stopped {
		t.Fatalf("expected the first hide timer to be cancelled")
	}
	current, ok := n.Current()
	if !ok || current.Message != "second" {
		t.Fatalf("expected second toast visible, got %+v", current)
	}
	sched.fire(t, 0)
	if len(surface.hidden) != 0 {
		t.Fatalf("cancelled timer must not hide the newer toast")
	}
	sched.fire(t, 1)
	if len(surface.hidden) != 1 || surface.hidden[0].Message != "second" {
		t.Fatalf("expected second toast hidden, got %+v", surface.hidden)
	}
}

func TestLongLivedToastUsesLongDelay(t *testing.T) {
	sched := &fakeScheduler{}
	n := New(&recordingSurface{}, nil, WithScheduler(sched))
	n.Show(model.Toast{Message: "Your code is 123456", LongLived: true})
	if sched.timers[0].delay != LongDelay {
		t.Fatalf("expected %s, got %s", LongDelay, sched.timers[0].delay)
	}
}

func TestMissingSurfaceFallsBackToAlertForErrorsOnly(t *testing.T) {
	alerter := &recordingAlerter{}
	n := New(nil, alerter, WithScheduler(&fakeScheduler{}))

	n.Notify("saved", model.ToneSuccess)
	n.Notify("heads up", model.ToneInfo)
	n.Notify("Request failed", model.ToneError)

	if len(alerter.messages) != 1 || alerter.messages[0] != "Request failed" {
		t.Fatalf("expected only the error to be alerted, got %v", alerter.messages)
	}
}

func TestNotifyAfterDefersToast(t *testing.T) {
	surface := &recordingSurface{}
	sched := &fakeScheduler{}
	n := New(surface, nil, WithScheduler(sched))

	n.NotifyAfter(time.Second, "Users tab updated", model.ToneInfo)
	if len(surface.shown) != 0 {
		t.Fatalf("toast should not show before the delay")
	}
	if sched.timers[0].delay != time.Second {
		t.Fatalf("unexpected delay %s", sched.timers[0].delay)
	}
	sched.fire(t, 0)
	if len(surface.shown) != 1 || surface.shown[0].Message != "Users tab updated" {
		t.Fatalf("expected deferred toast, got %+v", surface.shown)
	}
}
