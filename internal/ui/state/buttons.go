package state

import "github.com/Its-donkey/cinecraft-moderation/internal/ui/model"

// ButtonsFor returns the action buttons enabled for a selected row with the
// given status. Edit and delete are always available once a row is selected.
func ButtonsFor(status model.Status) model.Buttons {
	buttons := model.Buttons{
		Edit:       true,
		Approve:    true,
		Reject:     true,
		Deactivate: true,
		Activate:   true,
		Delete:     true,
	}
	switch {
	case status == model.StatusPending:
		buttons.Deactivate = false
		buttons.Activate = false
	case status.IsApproved():
		buttons.Approve = false
		buttons.Activate = false
	case status == model.StatusRejected:
		buttons.Reject = false
		buttons.Deactivate = false
		buttons.Activate = false
	case status == model.StatusInactive:
		buttons.Deactivate = false
	}
	return buttons
}
