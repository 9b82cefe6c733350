//go:build js && wasm

package wasm

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/page"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/render"
)

type sectionNodes struct {
	root    js.Value
	tbody   js.Value
	buttons js.Value
}

// domView writes board snapshots into the page.
type domView struct {
	sections map[string]sectionNodes
	active   js.Value
	inactive js.Value
	stats    map[string]js.Value
}

func newDOMView(sectionIDs []string) *domView {
	known := make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		known[id] = true
	}
	v := &domView{
		sections: make(map[string]sectionNodes),
		active:   Document.Call("querySelector", page.ActiveGridSelector),
		inactive: Document.Call("querySelector", "#tab-users .users-grid."+page.InactiveGridClass),
		stats:    make(map[string]js.Value),
	}
	nodes := Document.Call("querySelectorAll", page.SectionSelector)
	length := nodes.Get("length").Int()
	for i := 0; i < length; i++ {
		root := nodes.Index(i)
		id := strings.TrimSpace(root.Get("id").String())
		if id == "" {
			id = "section-" + strconv.Itoa(i)
		}
		if !known[id] {
			continue
		}
		table := root.Call("querySelector", ".submissions-table")
		var tbody js.Value
		if table.Truthy() {
			tbody = table.Call("querySelector", "tbody")
		}
		v.sections[id] = sectionNodes{
			root:    root,
			tbody:   tbody,
			buttons: root.Call("querySelector", page.ButtonAreaSelector),
		}
	}
	for _, key := range []string{"total", "pending", "approved"} {
		v.stats[key] = Document.Call("querySelector", `[data-stat="`+key+`"]`)
	}
	return v
}

// Render redraws tables, buttons, both users grids and the counters.
func (v *domView) Render(snap model.Snapshot) {
	for _, sec := range snap.Sections {
		nodes, ok := v.sections[sec.ID]
		if !ok {
			continue
		}
		if nodes.tbody.Truthy() {
			nodes.tbody.Set("innerHTML", render.Rows(sec.Rows))
		}
		v.applyButtons(nodes.buttons, sec.Buttons)
	}
	if v.active.Truthy() {
		v.active.Set("innerHTML", render.Cards(snap.ActiveCards))
	}
	if v.inactive.Truthy() {
		v.inactive.Set("innerHTML", render.Cards(snap.InactiveCards))
	}
	setText(v.stats["total"], snap.Counters.Total)
	setText(v.stats["pending"], snap.Counters.Pending)
	setText(v.stats["approved"], snap.Counters.Approved)
}

func (v *domView) applyButtons(area js.Value, buttons model.Buttons) {
	if !area.Truthy() {
		return
	}
	enabled := map[string]bool{
		"edit-btn":       buttons.Edit,
		"approve-btn":    buttons.Approve,
		"reject-btn":     buttons.Reject,
		"deactivate-btn": buttons.Deactivate,
		"activate-btn":   buttons.Activate,
		"delete-btn":     buttons.Delete,
	}
	for class, on := range enabled {
		btn := area.Call("querySelector", "."+class)
		if btn.Truthy() {
			btn.Set("disabled", !on)
		}
	}
}

func setText(node js.Value, value int) {
	if node.Truthy() {
		node.Set("textContent", strconv.Itoa(value))
	}
}
