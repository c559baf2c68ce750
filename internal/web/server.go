package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/yuin/goldmark"

	"github.com/conorfennell/learncards/internal/study"
	"github.com/conorfennell/learncards/internal/sync"
)

//go:embed all:static
var staticFiles embed.FS

//go:embed all:templates
var templateFiles embed.FS

// Options configures a Server.
type Options struct {
	// Shuffle is the initial state of the shuffle toggle on the home page.
	Shuffle bool
	// SwipeRatio and SwipeSpeed set when a released drag advances the stack.
	SwipeRatio float64
	SwipeSpeed float64
	// Sources and ReposDir are used by the manual sync on the manage page.
	Sources  []string
	ReposDir string
	// Health reports whether the backing store is reachable.
	Health func(ctx context.Context) error
	// AllowedOrigins for the JSON API. Empty allows every origin.
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	lib       Library
	opts      Options
	router    chi.Router
	templates *template.Template
	markdown  goldmark.Markdown
	sessions  *sessionStore
}

// NewServer creates and configures a new server.
func NewServer(lib Library, opts Options) (*Server, error) {
	if opts.SwipeRatio <= 0 {
		opts.SwipeRatio = study.DefaultDistanceRatio
	}
	if opts.SwipeSpeed <= 0 {
		opts.SwipeSpeed = study.DefaultMinSpeed
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		lib:      lib,
		opts:     opts,
		router:   chi.NewRouter(),
		markdown: newMarkdown(),
		sessions: newSessionStore(maxSessions),
	}

	tpl, err := template.New("").Funcs(s.funcs()).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = tpl

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// routes sets up the routing for the server.
func (s *Server) routes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create sub-filesystem for static assets: %w", err)
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", s.handleHome)
	r.Get("/manage", s.handleManage)
	r.Post("/sync", s.handlePostSync)

	r.Route("/decks", func(r chi.Router) {
		r.Post("/", s.handlePostDeck)
		r.Delete("/{id}", s.handleDeleteDeck)
		r.Post("/{id}/reset", s.handleResetDeck)
	})

	r.Route("/study", func(r chi.Router) {
		r.Get("/", s.handleStudy)
		r.Post("/decks/{id}", s.handleStudyDeck)
		r.Post("/custom", s.handleStudyCustom)
		r.Post("/flip", s.handleFlip)
		r.Post("/next", s.handleNext)
		r.Post("/release", s.handleRelease)
		r.Post("/shuffle", s.handleShuffle)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         3600,
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(c.Handler)
		r.Get("/health", s.handleAPIHealth)
		r.Get("/decks", s.handleAPIDecks)
		r.Get("/progress", s.handleAPIProgress)
		r.Get("/study", s.handleAPIStudy)
	})
	return nil
}

// handlePostSync runs a sync of the configured sources in the foreground and
// re-renders the deck list.
func (s *Server) handlePostSync(w http.ResponseWriter, r *http.Request) {
	report := sync.Run(r.Context(), s.lib, s.opts.Sources, sync.Options{ReposDir: s.opts.ReposDir})
	loggerFrom(r.Context()).Info("Manual sync finished", "changed", report.Changed, "errors", len(report.Errors))

	flash := fmt.Sprintf("Synced %d sources: %d decks changed, %d unchanged", report.Sources, report.Changed, report.Unchanged)
	if len(report.Errors) > 0 {
		flash += fmt.Sprintf(", %d problems (see log)", len(report.Errors))
	}
	s.renderManage(w, r, http.StatusOK, manageNotice{Success: flash})
}
