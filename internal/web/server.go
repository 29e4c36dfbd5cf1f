// Package web serves the portfolio over HTTP with gin. Pages are rendered on
// the server; the overlay menu is swapped in place with HTMX fragments, and
// its state travels with each request rather than being kept here.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/elifdikmn/elif-dev/internal/config"
	"github.com/elifdikmn/elif-dev/internal/content"
	"github.com/elifdikmn/elif-dev/internal/logging"
	"github.com/elifdikmn/elif-dev/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 10 * time.Second

// Server wires the routes to the content and statistics stores.
type Server struct {
	cfg        config.Config
	content    *content.Store
	stats      *store.Store
	liveReload *LiveReload
	adminToken string
	engine     *gin.Engine
	logger     *logrus.Entry
}

// Option customises a Server.
type Option func(*Server)

// WithLiveReload enables the /livereload websocket and the page script
// that listens on it.
func WithLiveReload(lr *LiveReload) Option {
	return func(s *Server) { s.liveReload = lr }
}

// New builds the server and its routes.
func New(cfg config.Config, site *content.Store, stats *store.Store, opts ...Option) (*Server, error) {
	token, err := store.RandomToken()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		content:    site,
		stats:      stats,
		adminToken: token,
		logger:     logging.NewLogger("web"),
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), s.visitorTracking())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.POST("/overlay", s.handleOverlay)
	r.GET("/go/:name", s.handleLink)
	r.GET("/resume", s.handleResume)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.liveReload != nil {
		r.GET("/livereload", s.liveReload.Handle)
	}
	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully. Old
// visitor rows are purged at start and once a day.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if s.liveReload != nil {
		s.liveReload.Close()
	}
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		if _, err := s.stats.Cleanup(ctx); err != nil && ctx.Err() == nil {
			s.logger.WithError(err).Warn("visitor cleanup failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
