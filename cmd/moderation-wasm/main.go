//go:build js && wasm

package main

import "github.com/Its-donkey/cinecraft-moderation/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
