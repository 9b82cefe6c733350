package state

import (
	"testing"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

func TestButtonsForPolicyTable(t *testing.T) {
	cases := []struct {
		status                                 model.Status
		approve, reject, deactivate, activate bool
	}{
		{model.StatusPending, true, true, false, false},
		{model.StatusApproved, false, true, true, false},
		{model.StatusActive, false, true, true, false},
		{model.StatusRejected, true, false, false, false},
		{model.StatusInactive, true, true, false, true},
		{model.StatusDraft, true, true, true, true},
		{model.StatusUnknown, true, true, true, true},
		{model.Status("archived"), true, true, true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			got := ButtonsFor(tc.status)
			if got.Approve != tc.approve || got.Reject != tc.reject || got.Deactivate != tc.deactivate || got.Activate != tc.activate {
				t.Fatalf("ButtonsFor(%s) = %+v", tc.status, got)
			}
			if !got.Edit || !got.Delete {
				t.Fatalf("edit and delete must be enabled for a selected row, got %+v", got)
			}
		})
	}
}
