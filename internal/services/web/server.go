// Package web hosts the owner directory HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/petclinic/internal/platform/branding"
	"github.com/louisbranch/petclinic/internal/platform/timeouts"
	webi18n "github.com/louisbranch/petclinic/internal/services/web/i18n"
	"github.com/louisbranch/petclinic/internal/services/web/modules/owners"
	"github.com/louisbranch/petclinic/internal/services/web/platform/httpx"
	"github.com/louisbranch/petclinic/internal/services/web/platform/observability"
	"github.com/louisbranch/petclinic/internal/services/web/platform/weberror"
	"github.com/louisbranch/petclinic/internal/services/web/routepath"
	"github.com/louisbranch/petclinic/internal/services/web/static"
	"github.com/louisbranch/petclinic/internal/services/web/storage"
	"github.com/louisbranch/petclinic/internal/services/web/storage/sqlite"
	webtemplates "github.com/louisbranch/petclinic/internal/services/web/templates"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	DBPath   string
	AppName  string
}

// Server hosts the web HTTP server and owns its storage handle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
}

// NewHandler assembles the HTTP routes for the web service.
//
// This is the test-oriented entrypoint: it accepts any owner store so route
// behavior can be exercised without SQLite.
func NewHandler(config Config, store storage.OwnerStore) http.Handler {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	mux := http.NewServeMux()
	owners.New(store, appName).RegisterRoutes(mux)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.OwnersFind)
	})
	mux.HandleFunc("/", notFoundHandler(appName))

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(log.Default()),
	)
}

// notFoundHandler renders the localized not-found page for unmatched routes.
func notFoundHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, persist := webi18n.ResolveTag(r)
		if persist {
			webi18n.SetLanguageCookie(w, tag)
		}
		page := webtemplates.PageContext{
			Lang:         tag.String(),
			Loc:          webi18n.Printer(tag),
			CurrentPath:  r.URL.Path,
			CurrentQuery: r.URL.RawQuery,
			AppName:      appName,
		}
		weberror.WriteErrorPage(w, r, page, http.StatusNotFound)
	}
}

// NewServer builds a configured web server backed by SQLite storage.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	dbPath := strings.TrimSpace(config.DBPath)
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config, store),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the storage handle held by the server.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close web storage: %v", err)
	}
}
