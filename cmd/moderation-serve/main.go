//go:build !js && !wasm

// Command moderation-serve serves the moderation console's static files and
// proxies its admin endpoints to the backend during local development.
package main

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Its-donkey/cinecraft-moderation/logging"
)

const (
	adminPrefix     = "/admin/front/"
	maxLoggedBody   = 4096
	logFileName     = "moderation-serve.log"
	logFileMaxMB    = 10
	logFileMaxCount = 5
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "moderation-serve: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	writers := []io.Writer{os.Stdout}
	if cfg.LogDir != "" {
		file, err := logging.NewFileWriter(cfg.LogDir, logFileName, logFileMaxMB, logFileMaxCount)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		writers = append(writers, file)
	}
	logger := logging.New("moderation-serve", logging.ParseLevel(cfg.LogLevel), writers...)

	root, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("resolve static directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("static directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static directory %s is not a directory", root)
	}
	backend, err := cfg.backend()
	if err != nil {
		return err
	}

	logger.Info("server", "serving moderation console", map[string]any{
		"listen":  cfg.ListenAddr,
		"root":    root,
		"backend": backend.String(),
	})
	if err := http.ListenAndServe(cfg.ListenAddr, newHandler(root, backend, logger)); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// newHandler routes admin requests to the backend and everything else to the
// static directory, with request logging around both.
func newHandler(root string, backend *url.URL, logger *logging.Logger) http.Handler {
	mime.AddExtensionType(".wasm", "application/wasm")

	mux := http.NewServeMux()
	mux.Handle(adminPrefix, backendProxy(backend, logger))
	mux.Handle("/", staticHandler(root))
	return logging.NewHTTPLogger(logger, maxLoggedBody).Middleware(mux)
}

func backendProxy(target *url.URL, logger *logging.Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("proxy", "backend request failed", err, map[string]any{"path": r.URL.Path})
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Host = target.Host
		proxy.ServeHTTP(w, r)
	})
}

func staticHandler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "" {
			http.ServeFile(w, r, filepath.Join(root, "index.html"))
			return
		}
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		fileServer.ServeHTTP(w, r)
	})
}
