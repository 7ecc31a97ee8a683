// Package site serves the browser shell, its JSON API and the websocket
// navigation session.
package site

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docbrowser/internal/browser"
	"github.com/ziadkadry99/docbrowser/internal/prefs"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Title    string
	Subtitle string
	// ContentDir is served under /content/ so relative images resolve when
	// markdown is read from the filesystem. Empty disables the mount.
	ContentDir string
	AllowAll   bool // allow all CORS origins (dev mode)
}

// Server is the documentation browser web server.
type Server struct {
	cfg        Config
	svc        *browser.Service
	prefs      *prefs.Store
	logger     *log.Logger
	shell      *template.Template
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over a browser service and preference store.
func New(cfg Config, svc *browser.Service, store *prefs.Store, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shell, err := template.New("shell").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing shell template: %w", err)
	}
	s := &Server{
		cfg:    cfg,
		svc:    svc,
		prefs:  store,
		logger: logger,
		shell:  shell,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The websocket is long lived and must not sit behind the request timeout.
	r.Get("/ws", s.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handleShell)
		r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
		r.Get("/app.js", serveAsset("application/javascript; charset=utf-8", jsContent))

		r.Route("/api", func(r chi.Router) {
			r.Get("/modules", s.handleModules)
			r.Get("/modules/{id}", s.handleModule)
			r.Get("/modules/{id}/anchor", s.handleAnchor)
			r.Get("/theme", s.handleTheme)
			r.Post("/theme/toggle", s.handleThemeToggle)
		})

		if s.cfg.ContentDir != "" {
			r.Handle("/content/*", http.StripPrefix("/content/", http.FileServer(http.Dir(s.cfg.ContentDir))))
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. When open is set the
// default browser is pointed at the shell.
func (s *Server) Start(open bool) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	url := fmt.Sprintf("http://localhost:%d", s.cfg.Port)
	if open {
		go openBrowser(url)
	}
	s.logger.Info("serving documentation", "url", url)
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called. A server that
// was already shut down returns immediately.
func (s *Server) Serve(ln net.Listener) error {
	err := s.httpServer.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		io.WriteString(w, body)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
