//go:build js && wasm

package actions

import "net/http"

// The wasm fetch transport reads js.fetch:* headers as fetch options and
// strips them before sending.
func applyFetchOptions(req *http.Request) {
	req.Header.Set("js.fetch:credentials", "same-origin")
}
