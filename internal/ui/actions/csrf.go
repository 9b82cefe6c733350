package actions

import (
	"net/http"
	"strings"
)

// DefaultCSRFCookie is the cookie the admin backend stores its token in.
const DefaultCSRFCookie = "csrftoken"

// TokenFromCookies extracts the named cookie from a document.cookie style
// header value.
func TokenFromCookies(cookieHeader, name string) string {
	if strings.TrimSpace(cookieHeader) == "" || name == "" {
		return ""
	}
	req := http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	cookie, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// ResolveToken prefers the cookie token and falls back to the value embedded
// in the page.
func ResolveToken(cookieHeader, name, fallback string) string {
	if token := TokenFromCookies(cookieHeader, name); token != "" {
		return token
	}
	return strings.TrimSpace(fallback)
}
