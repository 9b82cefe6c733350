package state

import "testing"

func TestTabsActivateShowsOnlyTarget(t *testing.T) {
	tabs := NewTabs([]string{"tab-submissions", "tab-users", "tab-reports"}, "tab-submissions")

	visible := tabs.Activate("tab-users")
	if tabs.Active() != "tab-users" {
		t.Fatalf("expected tab-users to be active, got %q", tabs.Active())
	}
	for id, shown := range visible {
		if shown != (id == "tab-users") {
			t.Fatalf("section %s visible=%v", id, shown)
		}
	}
	if len(visible) != 3 {
		t.Fatalf("expected visibility for every section, got %v", visible)
	}
}

func TestTabsActivateUnknownTargetHidesEverything(t *testing.T) {
	tabs := NewTabs([]string{"tab-submissions", "tab-users"}, "")
	for id, shown := range tabs.Activate("tab-missing") {
		if shown {
			t.Fatalf("section %s should be hidden", id)
		}
	}
}
