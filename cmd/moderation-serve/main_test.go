//go:build !js && !wasm

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Its-donkey/cinecraft-moderation/logging"
)

func newTestHandler(t *testing.T, backend *httptest.Server) (http.Handler, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>console</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "main.wasm"), []byte{0x00, 0x61, 0x73, 0x6d}, 0o644); err != nil {
		t.Fatalf("write wasm: %v", err)
	}
	target, err := url.Parse(backend.URL)
	if err != nil {
		t.Fatalf("parse backend: %v", err)
	}
	var logs bytes.Buffer
	logger := logging.New("moderation-serve", logging.DEBUG, &logs)
	return newHandler(root, target, logger), &logs
}

func TestStaticFilesServed(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()
	handler, _ := newTestHandler(t, backend)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "console") {
		t.Fatalf("unexpected index response %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/main.wasm", nil))
	if got := rec.Header().Get("Content-Type"); got != "application/wasm" {
		t.Fatalf("expected application/wasm, got %q", got)
	}
}

func TestAdminRequestsProxied(t *testing.T) {
	var (
		gotPath  string
		gotToken string
		gotID    string
		gotBody  string
	)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-CSRFToken")
		gotID = r.Header.Get(logging.RequestIDHeader)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"status":"approved"}`))
	}))
	defer backend.Close()
	handler, logs := newTestHandler(t, backend)

	req := httptest.NewRequest(http.MethodPost, "/admin/front/submission/42/action/", strings.NewReader("action=approve"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRFToken", "tok")
	req.Header.Set(logging.RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if gotPath != "/admin/front/submission/42/action/" || gotBody != "action=approve" {
		t.Fatalf("unexpected proxied request %q %q", gotPath, gotBody)
	}
	if gotToken != "tok" || gotID != "req-1" {
		t.Fatalf("headers not forwarded: token=%q id=%q", gotToken, gotID)
	}

	var entry logging.Entry
	if err := json.NewDecoder(logs).Decode(&entry); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if entry.Category != "http" || entry.RequestID != "req-1" {
		t.Fatalf("unexpected log entry %+v", entry)
	}
}

func TestBackendFailureIsBadGateway(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	handler, _ := newTestHandler(t, backend)
	backend.Close()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/front/submission/1/delete/", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("MODERATION_LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("MODERATION_BACKEND_URL", "http://backend:8000")

	cfg, err := loadConfig([]string{"-dir", "dist"})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" || cfg.StaticDir != "dist" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := cfg.backend(); err != nil {
		t.Fatalf("backend: %v", err)
	}

	cfg.BackendURL = "backend:8000"
	if _, err := cfg.backend(); err == nil {
		t.Fatalf("expected error for url without scheme")
	}
}
