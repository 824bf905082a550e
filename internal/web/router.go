package web

import (
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/thedevsaddam/renderer"

	"github.com/ynizan/clicker-game/internal/platform/branding"
	"github.com/ynizan/clicker-game/internal/services/clicker/domain"
	"github.com/ynizan/clicker-game/internal/web/static"
)

// Options configures the HTTP shell.
type Options struct {
	Pages static.Pages
	// MCP serves /mcp and /mcp/. Nil answers 503.
	MCP http.Handler
	// VerificationToken is echoed at the apps challenge path.
	VerificationToken string
	// DemoURL is the redirect target for /demo. Empty answers 404.
	DemoURL string
	// AccessLog receives combined-format access logs. Nil uses stdout.
	AccessLog io.Writer
}

type app struct {
	opts Options
	rnd  *renderer.Render
}

// NewHandler builds the router wrapped in recovery, compression, access
// logging and CORS middleware.
func NewHandler(opts Options) http.Handler {
	a := &app{opts: opts, rnd: renderer.New()}
	router := a.initRouter()

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}
	recoveryRouter := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(router)
	compressedRouter := gzhttp.GzipHandler(recoveryRouter)
	loggedRouter := handlers.CombinedLoggingHandler(accessLog, compressedRouter)
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept", "Mcp-Session-Id", "Mcp-Protocol-Version", domain.UserHeader}),
		handlers.ExposedHeaders([]string{"Mcp-Session-Id"}),
	)(loggedRouter)
}

func (a *app) initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/widget", a.getWidget)
	r.HandleFunc("/privacy-policy", a.getPrivacy)
	r.HandleFunc("/privacy", a.getPrivacy)
	r.HandleFunc("/terms", a.getTerms)
	r.HandleFunc("/terms-of-service", a.getTerms)
	r.HandleFunc("/.well-known/openai-apps-challenge", a.getVerificationToken)
	r.HandleFunc("/demo", a.getDemo)
	r.HandleFunc("/demo.mp4", a.getDemo)
	r.HandleFunc("/health", a.getHealth).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/mcp", a.mcpHandler())
	r.Handle("/mcp/", a.mcpHandler())
	r.NotFoundHandler = http.HandlerFunc(a.getBanner)
	r.MethodNotAllowedHandler = http.HandlerFunc(a.getBanner)
	return r
}

func (a *app) getWidget(w http.ResponseWriter, r *http.Request) {
	a.html(w, a.opts.Pages.Widget)
}

func (a *app) getPrivacy(w http.ResponseWriter, r *http.Request) {
	a.html(w, a.opts.Pages.Privacy)
}

func (a *app) getTerms(w http.ResponseWriter, r *http.Request) {
	a.html(w, a.opts.Pages.Terms)
}

func (a *app) getVerificationToken(w http.ResponseWriter, r *http.Request) {
	a.text(w, http.StatusOK, a.opts.VerificationToken)
}

func (a *app) getDemo(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimSpace(a.opts.DemoURL)
	if target == "" {
		a.text(w, http.StatusNotFound, "demo is not configured")
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (a *app) getHealth(w http.ResponseWriter, r *http.Request) {
	a.text(w, http.StatusOK, "OK")
}

func (a *app) getBanner(w http.ResponseWriter, r *http.Request) {
	a.text(w, http.StatusOK, branding.Banner())
}

func (a *app) mcpHandler() http.Handler {
	if a.opts.MCP != nil {
		return a.opts.MCP
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.text(w, http.StatusServiceUnavailable, "mcp endpoint is not configured")
	})
}

func (a *app) html(w http.ResponseWriter, markup string) {
	if err := a.rnd.HTMLString(w, http.StatusOK, markup); err != nil {
		log.Printf("write html response: %v", err)
	}
}

func (a *app) text(w http.ResponseWriter, status int, body string) {
	if err := a.rnd.String(w, status, body); err != nil {
		log.Printf("write text response: %v", err)
	}
}
