//go:build js && wasm

package wasm

import (
	"strings"
	"syscall/js"
	"time"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/forms"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/toast"
)

// initFlashMessages fades out server-rendered flash messages.
func initFlashMessages() {
	forEachNode(Document.Call("querySelectorAll", ".message.show"), func(node js.Value) {
		fadeMessage(node, forms.MessageTimeout(classList(node)))
	})
}

func fadeMessage(node js.Value, after time.Duration) {
	time.AfterFunc(after, func() {
		node.Get("classList").Call("remove", "show")
		node.Get("style").Set("display", "none")
	})
}

// initRegistrationForm checks the sign-up form before it is submitted.
func initRegistrationForm() {
	path := js.Global().Get("location").Get("pathname").String()
	form := Document.Call("querySelector", `form[action="`+path+`"]`)
	if !form.Truthy() {
		form = Document.Call("querySelector", "form")
	}
	if !form.Truthy() || !form.Call("querySelector", `input[name="confirm_password"]`).Truthy() {
		return
	}
	addHandler(form, "submit", func(this js.Value, args []js.Value) any {
		result := forms.ValidateRegistration(forms.Registration{
			Username:        inputValue(this, "username"),
			Email:           inputValue(this, "email"),
			Password:        inputValue(this, "password"),
			ConfirmPassword: inputValue(this, "confirm_password"),
		})
		if result.OK() {
			return nil
		}
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		showFormError(result.Message())
		return nil
	})
}

func showFormError(message string) {
	area := Document.Call("querySelector", ".message-area")
	if !area.Truthy() {
		area = Document.Call("querySelector", ".auth-card")
	}
	if !area.Truthy() {
		js.Global().Call("alert", message)
		return
	}
	div := Document.Call("createElement", "div")
	div.Set("className", "message show error")
	div.Set("textContent", message)
	area.Call("appendChild", div)
	fadeMessage(div, toast.ShortDelay)
}

func inputValue(form js.Value, name string) string {
	input := form.Call("querySelector", `[name="`+name+`"]`)
	if !input.Truthy() {
		return ""
	}
	return input.Get("value").String()
}

func classList(node js.Value) []string {
	return strings.Fields(node.Get("className").String())
}
