//go:build js && wasm

package wasm

import (
	"context"
	"syscall/js"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/actions"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/page"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/state"
	"github.com/Its-donkey/cinecraft-moderation/logging"
)

var handlers []js.Func

// console binds page events to the board and dispatcher.
type console struct {
	board       *state.Board
	interactive map[string]bool
	tabs        *state.Tabs
	dispatcher  *actions.Dispatcher
	view        *domView
	logger      *logging.Logger
}

func (c *console) bind() {
	forEachNode(Document.Call("querySelectorAll", page.TabSelector), func(node js.Value) {
		addHandler(node, "click", func(this js.Value, _ []js.Value) any {
			c.activateTab(this.Get("dataset").Get("target").String())
			return nil
		})
	})

	for id, nodes := range c.view.sections {
		if !c.interactive[id] || !nodes.tbody.Truthy() || !nodes.buttons.Truthy() {
			continue
		}
		sectionID := id
		addHandler(nodes.tbody, "click", func(_ js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			target := args[0].Get("target")
			if closest(target, `button, a, [role="button"]`).Truthy() {
				return nil
			}
			row := closest(target, "tr[data-pk]")
			if !row.Truthy() {
				return nil
			}
			c.board.Toggle(sectionID, row.Get("dataset").Get("pk").String())
			c.view.Render(c.board.Snapshot())
			return nil
		})
		addHandler(nodes.buttons, "click", func(_ js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			btn := closest(args[0].Get("target"), ".action-btn")
			if !btn.Truthy() || btn.Get("disabled").Truthy() {
				return nil
			}
			kind, ok := actions.KindForButton(btn.Get("className").String(), datasetString(btn.Get("dataset"), "action"))
			if !ok {
				return nil
			}
			go c.dispatcher.Dispatch(context.Background(), sectionID, kind)
			return nil
		})
	}

	// Cards are redrawn on every render, so their buttons are delegated.
	addHandler(Document, "click", func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		btn := closest(args[0].Get("target"), ".user-btn")
		if !btn.Truthy() {
			return nil
		}
		card := closest(btn, ".user-card[data-pk]")
		if !card.Truthy() {
			return nil
		}
		kind, ok := actions.ParseKind(datasetString(btn.Get("dataset"), "action"))
		if !ok {
			return nil
		}
		pk := card.Get("dataset").Get("pk").String()
		go c.dispatcher.DispatchCard(context.Background(), pk, kind)
		return nil
	})
}

func (c *console) activateTab(target string) {
	visible := c.tabs.Activate(target)
	forEachNode(Document.Call("querySelectorAll", page.TabSelector), func(node js.Value) {
		setClass(node, "active", node.Get("dataset").Get("target").String() == target)
	})
	forEachNode(Document.Call("querySelectorAll", page.PageSectionSelector), func(node js.Value) {
		setClass(node, "active", visible[node.Get("id").String()])
	})
	c.logger.Debug("console", "tab activated", map[string]any{"target": target, "sections": len(visible)})
}

func addHandler(node js.Value, event string, fn func(js.Value, []js.Value) any) {
	if !node.Truthy() {
		return
	}
	handler := js.FuncOf(fn)
	node.Call("addEventListener", event, handler)
	handlers = append(handlers, handler)
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}

func closest(node js.Value, selector string) js.Value {
	if !node.Truthy() || node.Get("closest").Type() != js.TypeFunction {
		return js.Null()
	}
	return node.Call("closest", selector)
}

func setClass(node js.Value, class string, on bool) {
	if on {
		node.Get("classList").Call("add", class)
	} else {
		node.Get("classList").Call("remove", class)
	}
}
