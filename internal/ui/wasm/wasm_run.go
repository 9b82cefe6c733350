//go:build js && wasm

package wasm

import (
	"os"
	"strings"
	"syscall/js"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/actions"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/page"
	"github.com/Its-donkey/cinecraft-moderation/internal/ui/toast"
	"github.com/Its-donkey/cinecraft-moderation/logging"
)

// Document references the global browser document for DOM interactions.
var Document js.Value

// RunApp wires the moderation console onto the server-rendered page and
// blocks forever.
func RunApp() {
	done := make(chan struct{})
	Document = js.Global().Get("document")

	cfg := readConfig()
	logger := logging.New("moderation-console", logging.ParseLevel(cfg.logLevel), os.Stdout)

	initFlashMessages()
	initRegistrationForm()

	if Document.Call("querySelector", page.SectionSelector).Truthy() || Document.Call("querySelector", page.TabSelector).Truthy() {
		startConsole(cfg, logger)
	}
	<-done
}

type config struct {
	csrfCookie string
	apiBase    string
	logLevel   string
}

// readConfig reads data-* overrides from <body>.
func readConfig() config {
	cfg := config{csrfCookie: actions.DefaultCSRFCookie, logLevel: "info"}
	body := Document.Get("body")
	if !body.Truthy() {
		return cfg
	}
	dataset := body.Get("dataset")
	if v := datasetString(dataset, "csrfCookie"); v != "" {
		cfg.csrfCookie = v
	}
	cfg.apiBase = datasetString(dataset, "apiBase")
	if v := datasetString(dataset, "logLevel"); v != "" {
		cfg.logLevel = v
	}
	return cfg
}

func startConsole(cfg config, logger *logging.Logger) {
	markup := Document.Get("documentElement").Get("outerHTML").String()
	parsed, err := page.Parse(strings.NewReader(markup))
	if err != nil {
		logger.Error("console", "failed to read page", err, nil)
		return
	}
	for _, warning := range parsed.Warnings {
		logger.Warn("console", warning, nil)
	}

	var surface toast.Surface
	if el := Document.Call("getElementById", "af-toast"); el.Truthy() {
		surface = domToast{el: el}
	}
	notifier := toast.New(surface, browser{})

	hidden := ""
	if el := Document.Call("getElementById", "csrf-token"); el.Truthy() {
		hidden = el.Get("value").String()
	}
	token := actions.ResolveToken(Document.Get("cookie").String(), cfg.csrfCookie, hidden)
	if token == "" {
		logger.Warn("console", "no csrf token found", nil)
	}

	view := newDOMView(parsed.Board.SectionIDs())
	dispatcher := actions.NewDispatcher(actions.Config{
		Board:     parsed.Board,
		Poster:    actions.NewClient(cfg.apiBase, token),
		Prompter:  browser{},
		Notifier:  notifier,
		Renderer:  view,
		Navigator: browser{},
		Logger:    logger,
	})

	c := &console{
		board:       parsed.Board,
		interactive: parsed.Interactive,
		tabs:        parsed.Tabs,
		dispatcher:  dispatcher,
		view:        view,
		logger:      logger,
	}
	c.bind()
	view.Render(parsed.Board.Snapshot())
	logger.Info("console", "moderation console ready", map[string]any{
		"sections": len(view.sections),
	})
}

func datasetString(dataset js.Value, key string) string {
	if !dataset.Truthy() {
		return ""
	}
	value := dataset.Get(key)
	if value.Type() != js.TypeString {
		return ""
	}
	return strings.TrimSpace(value.String())
}
