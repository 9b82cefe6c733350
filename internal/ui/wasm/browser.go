//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

// browser exposes the window's blocking dialogs and navigation.
type browser struct{}

func (browser) Confirm(message string) bool {
	return js.Global().Call("confirm", message).Truthy()
}

func (browser) Alert(message string) {
	js.Global().Call("alert", message)
}

func (browser) Navigate(path string) {
	js.Global().Get("location").Set("href", path)
}

// domToast draws toasts into the #af-toast element.
type domToast struct {
	el js.Value
}

func (t domToast) Show(msg model.Toast) {
	t.el.Set("textContent", msg.Message)
	classes := t.el.Get("classList")
	classes.Call("remove", "hide", string(model.ToneInfo), string(model.ToneSuccess), string(model.ToneError))
	classes.Call("add", "show", string(msg.Tone))
}

func (t domToast) Hide(model.Toast) {
	classes := t.el.Get("classList")
	classes.Call("remove", "show")
	classes.Call("add", "hide")
}
