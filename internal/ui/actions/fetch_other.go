//go:build !(js && wasm)

package actions

import "net/http"

func applyFetchOptions(*http.Request) {}
