package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/state"
	"github.com/Its-donkey/cinecraft-moderation/logging"
)

// Outcome classifies how a dispatched action ended.
type Outcome string

const (
	// OutcomeSkipped: no selected row, no key, or the button is disabled.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDeclined: the operator cancelled the confirmation prompt.
	OutcomeDeclined Outcome = "declined"
	// OutcomeNavigated: edit sent the browser to the edit page.
	OutcomeNavigated Outcome = "navigated"
	// OutcomeFailed: the request or its response could not be completed.
	OutcomeFailed Outcome = "failed"
	// OutcomeRejected: the server answered ok:false.
	OutcomeRejected Outcome = "rejected"
	// OutcomeApplied: the acknowledgement was applied to the board.
	OutcomeApplied Outcome = "applied"
)

// Poster sends one action to the server.
type Poster interface {
	Post(ctx context.Context, kind Kind, pk, requestID string) (model.Ack, error)
}

// Prompter asks the operator to confirm an action.
type Prompter interface {
	Confirm(message string) bool
}

// Notifier shows toasts.
type Notifier interface {
	Notify(message string, tone model.Tone)
	NotifyAfter(delay time.Duration, message string, tone model.Tone)
}

// Renderer redraws both views from a board snapshot.
type Renderer interface {
	Render(snap model.Snapshot)
}

// Navigator performs full-page navigation.
type Navigator interface {
	Navigate(path string)
}

// Dispatcher carries out operator actions against the board.
type Dispatcher struct {
	board    *state.Board
	poster   Poster
	prompt   Prompter
	notify   Notifier
	render   Renderer
	navigate Navigator
	logger   *logging.Logger
}

// Config wires a Dispatcher to its collaborators. Logger may be nil.
type Config struct {
	Board     *state.Board
	Poster    Poster
	Prompter  Prompter
	Notifier  Notifier
	Renderer  Renderer
	Navigator Navigator
	Logger    *logging.Logger
}

// NewDispatcher constructs a Dispatcher from cfg.
func NewDispatcher(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{
		board:    cfg.Board,
		poster:   cfg.Poster,
		prompt:   cfg.Prompter,
		notify:   cfg.Notifier,
		render:   cfg.Renderer,
		navigate: cfg.Navigator,
		logger:   logger,
	}
}

// Dispatch performs kind on the row selected in sectionID. The section's
// selection is cleared once a request has completed, whatever its result.
func (d *Dispatcher) Dispatch(ctx context.Context, sectionID string, kind Kind) Outcome {
	sub, ok := d.board.Selected(sectionID)
	if !ok || strings.TrimSpace(sub.PK) == "" {
		return OutcomeSkipped
	}
	spec, ok := SpecFor(kind)
	if !ok || !spec.Allowed(state.ButtonsFor(sub.Status)) {
		return OutcomeSkipped
	}
	if kind == KindEdit {
		if d.navigate != nil {
			d.navigate.Navigate(EditPath(sub.PK))
		}
		return OutcomeNavigated
	}

	outcome := d.perform(ctx, spec, sub.PK)
	if outcome != OutcomeDeclined {
		d.board.ClearSelection(sectionID)
		d.redraw()
	}
	return outcome
}

// DispatchCard performs activate or deactivate from a user card's own button.
// The mirrored row, if any, follows through the shared board.
func (d *Dispatcher) DispatchCard(ctx context.Context, pk string, kind Kind) Outcome {
	pk = strings.TrimSpace(pk)
	if pk == "" || (kind != KindActivate && kind != KindDeactivate) {
		return OutcomeSkipped
	}
	sub, ok := d.board.Lookup(pk)
	if !ok || !sub.HasCard {
		return OutcomeSkipped
	}
	// Cards only offer the control that flips their current state.
	cardStatus := model.CardStatusFor(sub.Status)
	if (kind == KindActivate) != (cardStatus == model.CardInactive) {
		return OutcomeSkipped
	}
	spec, _ := SpecFor(kind)
	outcome := d.perform(ctx, spec, pk)
	if outcome != OutcomeDeclined {
		d.redraw()
	}
	return outcome
}

func (d *Dispatcher) perform(ctx context.Context, spec Spec, pk string) Outcome {
	if d.prompt != nil && !d.prompt.Confirm(spec.Confirm) {
		return OutcomeDeclined
	}

	requestID := uuid.NewString()
	reqLog := d.logger.WithRequestID(requestID).
		WithCategory("actions").
		WithField("action", spec.Kind.String()).
		WithField("pk", pk)

	ack, err := d.poster.Post(ctx, spec.Kind, pk, requestID)
	if err != nil {
		reqLog.Error("request failed", err)
		d.toast("Request failed", model.ToneError)
		return OutcomeFailed
	}
	if !ack.OK {
		reason := strings.TrimSpace(ack.Error)
		if reason == "" {
			reason = "unknown"
		}
		reqLog.WithField("reason", reason).Warn("server refused action")
		prefix := "Action failed"
		if spec.Kind == KindDelete {
			prefix = "Delete failed"
		}
		d.toast(fmt.Sprintf("%s: %s", prefix, reason), model.ToneError)
		return OutcomeRejected
	}

	status := model.ParseStatus(ack.Status)
	if strings.TrimSpace(ack.Status) == "" {
		status = spec.Default
	}
	cardsChanged := spec.Apply(d.board, pk, status)
	reqLog.WithField("status", string(status)).WithField("cards_changed", cardsChanged).Info("action applied")

	d.toast(spec.Success, model.ToneSuccess)
	if cardsChanged && spec.FollowUp != "" && d.notify != nil {
		d.notify.NotifyAfter(followUpDelay, spec.FollowUp, model.ToneInfo)
	}
	return OutcomeApplied
}

func (d *Dispatcher) toast(message string, tone model.Tone) {
	if d.notify != nil {
		d.notify.Notify(message, tone)
	}
}

func (d *Dispatcher) redraw() {
	if d.render != nil {
		d.render.Render(d.board.Snapshot())
	}
}
