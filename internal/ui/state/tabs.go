package state

// Tabs tracks which tab button is active and which page section it reveals.
type Tabs struct {
	active   string
	sections []string
}

// NewTabs builds a tab strip over the given section ids. The initially active
// target may be empty.
func NewTabs(sections []string, active string) *Tabs {
	return &Tabs{
		active:   active,
		sections: append([]string(nil), sections...),
	}
}

// Active returns the target of the active tab.
func (t *Tabs) Active() string {
	return t.active
}

// Activate marks target as the active tab and returns the visibility of every
// section: only the section whose id equals target is shown.
func (t *Tabs) Activate(target string) map[string]bool {
	t.active = target
	visible := make(map[string]bool, len(t.sections))
	for _, id := range t.sections {
		visible[id] = id == target
	}
	return visible
}
