// Package ui provides the web interface of gqlvis: the endpoint form, the
// outline pane and the force-directed schema graph.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/gqlvis/internal/introspect"
	"github.com/leapstack-labs/gqlvis/internal/loader"
	"github.com/leapstack-labs/gqlvis/internal/ui/features/common"
	"github.com/leapstack-labs/gqlvis/internal/ui/notifier"
	"github.com/leapstack-labs/gqlvis/internal/ui/router"
)

// Server is the main UI server.
type Server struct {
	loader          *loader.Service
	workspaces      *loader.Workspaces
	sessionStore    *sessions.CookieStore
	port            int
	watch           bool
	defaultEndpoint string
	allowFiles      []string
	loadTimeout     time.Duration
	isDev           bool
	logger          *slog.Logger
	notifier        *notifier.Notifier
}

// Config holds configuration for the UI server.
type Config struct {
	Loader          *loader.Service
	Port            int
	Watch           bool
	SessionSecret   string
	DefaultEndpoint string
	// AllowFiles are introspection files viewers may choose besides
	// DefaultEndpoint.
	AllowFiles    []string
	MaxWorkspaces int
	LoadTimeout   time.Duration
	Dev           bool
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		loader:          cfg.Loader,
		workspaces:      loader.NewWorkspaces(cfg.MaxWorkspaces, logger),
		sessionStore:    sessionStore,
		port:            cfg.Port,
		watch:           cfg.Watch,
		defaultEndpoint: cfg.DefaultEndpoint,
		allowFiles:      cfg.AllowFiles,
		loadTimeout:     cfg.LoadTimeout,
		isDev:           cfg.Dev,
		logger:          logger,
		notifier:        notifier.New(),
	}
}

// Handler builds the HTTP handler with all routes mounted.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.deps()); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

func (s *Server) deps() *common.Deps {
	return &common.Deps{
		Loader:          s.loader,
		Workspaces:      s.workspaces,
		Sessions:        s.sessionStore,
		Notifier:        s.notifier,
		DefaultEndpoint: s.defaultEndpoint,
		AllowFiles:      s.allowFiles,
		LoadTimeout:     s.loadTimeout,
		Logger:          s.logger,
		IsDev:           s.isDev,
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Workspaces returns the live viewer workspaces.
func (s *Server) Workspaces() *loader.Workspaces {
	return s.workspaces
}

// watchFiles reloads workspaces showing an introspection file when the file
// changes. Directories of file endpoints are watched as they appear, since
// editors often replace files instead of writing them in place.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]struct{})
	// Debounce timer per file
	timers := make(map[string]*time.Timer)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			for _, t := range timers {
				t.Stop()
			}
			return nil

		case <-ticker.C:
			s.syncWatches(watcher, watched)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			name := filepath.Clean(event.Name)
			if t := timers[name]; t != nil {
				t.Stop()
			}
			timers[name] = time.AfterFunc(100*time.Millisecond, func() {
				s.reloadFile(ctx, name)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// syncWatches adds the directories of active file endpoints to the watcher.
func (s *Server) syncWatches(watcher *fsnotify.Watcher, watched map[string]struct{}) {
	for _, ep := range s.workspaces.Endpoints() {
		path, ok := introspect.FilePath(ep)
		if !ok {
			continue
		}
		dir := filepath.Dir(filepath.Clean(path))
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			s.logger.Warn("failed to watch schema directory", "dir", dir, "error", err)
			continue
		}
		watched[dir] = struct{}{}
		s.logger.Debug("watching schema directory", "dir", dir)
	}
}

// reloadFile refreshes every workspace showing the changed file and notifies
// all SSE clients.
func (s *Server) reloadFile(ctx context.Context, name string) {
	for _, ep := range s.workspaces.Endpoints() {
		path, ok := introspect.FilePath(ep)
		if !ok || filepath.Clean(path) != name {
			continue
		}
		s.logger.Debug("schema file changed, reloading", "file", name)
		s.loader.Invalidate(ep)
		for _, ws := range s.workspaces.Showing(ep) {
			loadCtx, cancel := s.loadContext(ctx)
			s.loader.Switch(loadCtx, ws, ep, false)
			cancel()
		}
		s.notifier.Broadcast()
	}
}

func (s *Server) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.loadTimeout > 0 {
		return context.WithTimeout(ctx, s.loadTimeout)
	}
	return context.WithCancel(ctx)
}
