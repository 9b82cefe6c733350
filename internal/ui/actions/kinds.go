// Package actions issues confirmed moderation requests and applies their
// acknowledgements to the board.
package actions

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/state"
)

// Kind enumerates the actions an operator can take on a submission.
type Kind int

const (
	KindApprove Kind = iota + 1
	KindReject
	KindActivate
	KindDeactivate
	KindDelete
	KindEdit
)

var kindNames = map[Kind]string{
	KindApprove:    "approve",
	KindReject:     "reject",
	KindActivate:   "activate",
	KindDeactivate: "deactivate",
	KindDelete:     "delete",
	KindEdit:       "edit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps an action name (as carried by data attributes) to a Kind.
func ParseKind(raw string) (Kind, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for kind, name := range kindNames {
		if name == raw {
			return kind, true
		}
	}
	return 0, false
}

// KindForButton resolves the action a toolbar button triggers. An explicit
// data-action value wins; otherwise a "<kind>-btn" class names it.
func KindForButton(className, dataAction string) (Kind, bool) {
	if kind, ok := ParseKind(dataAction); ok {
		return kind, true
	}
	for _, class := range strings.Fields(className) {
		name, found := strings.CutSuffix(class, "-btn")
		if !found {
			continue
		}
		if kind, ok := ParseKind(name); ok {
			return kind, true
		}
	}
	return 0, false
}

// followUpDelay separates the success toast from the users-tab follow-up.
const followUpDelay = time.Second

// Spec describes everything the dispatcher needs to carry out one kind.
type Spec struct {
	Kind    Kind
	Confirm string
	// Default is the resulting status when the acknowledgement omits one.
	Default model.Status
	Success string
	// FollowUp is shown after followUpDelay when the users grids changed.
	FollowUp string
	// Allowed reports whether the button policy permits the kind.
	Allowed func(model.Buttons) bool
	// Apply mutates the board after a successful acknowledgement and reports
	// whether the users grids changed.
	Apply func(board *state.Board, pk string, status model.Status) bool
}

var specs = map[Kind]Spec{
	KindApprove: {
		Kind:     KindApprove,
		Confirm:  "Approve this submission?",
		Default:  model.StatusApproved,
		Success:  "Submission approved successfully",
		FollowUp: "Users tab updated",
		Allowed:  func(b model.Buttons) bool { return b.Approve },
		Apply: func(board *state.Board, pk string, status model.Status) bool {
			board.SetStatus(pk, status)
			return board.UpsertCard(pk)
		},
	},
	KindReject: {
		Kind:     KindReject,
		Confirm:  "Reject this submission?",
		Default:  model.StatusRejected,
		Success:  "Submission rejected successfully",
		FollowUp: "User removed from Users tab",
		Allowed:  func(b model.Buttons) bool { return b.Reject },
		Apply: func(board *state.Board, pk string, status model.Status) bool {
			board.SetStatus(pk, status)
			return board.RemoveCard(pk)
		},
	},
	KindActivate: {
		Kind:    KindActivate,
		Confirm: "Mark this user as active?",
		Default: model.StatusActive,
		Success: "User marked active",
		Allowed: func(b model.Buttons) bool { return b.Activate },
		Apply: func(board *state.Board, pk string, status model.Status) bool {
			board.SetStatus(pk, status)
			return board.MoveCard(pk)
		},
	},
	KindDeactivate: {
		Kind:    KindDeactivate,
		Confirm: "Mark this user as inactive?",
		Default: model.StatusInactive,
		Success: "User marked inactive",
		Allowed: func(b model.Buttons) bool { return b.Deactivate },
		Apply: func(board *state.Board, pk string, status model.Status) bool {
			board.SetStatus(pk, status)
			return board.MoveCard(pk)
		},
	},
	KindDelete: {
		Kind:     KindDelete,
		Confirm:  "Delete this submission permanently?",
		Success:  "Submission deleted",
		FollowUp: "User removed from Users tab",
		Allowed:  func(b model.Buttons) bool { return b.Delete },
		Apply: func(board *state.Board, pk string, _ model.Status) bool {
			sub, _ := board.Lookup(pk)
			board.Remove(pk)
			return sub.HasCard
		},
	},
	KindEdit: {
		Kind:    KindEdit,
		Allowed: func(b model.Buttons) bool { return b.Edit },
	},
}

// SpecFor returns the table entry for a kind.
func SpecFor(kind Kind) (Spec, bool) {
	spec, ok := specs[kind]
	return spec, ok
}

// ActionPath is the endpoint for approve, reject, activate and deactivate.
func ActionPath(pk string) string {
	return "/admin/front/submission/" + url.PathEscape(pk) + "/action/"
}

// DeletePath is the endpoint for delete.
func DeletePath(pk string) string {
	return "/admin/front/submission/" + url.PathEscape(pk) + "/delete/"
}

// EditPath is the full-page edit form for a submission.
func EditPath(pk string) string {
	return "/admin/front/submission/" + url.PathEscape(pk) + "/edit/"
}
