package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	httpapi "github.com/aadishiv23/aadios/internal/api/http"
	"github.com/aadishiv23/aadios/internal/api/middleware"
	"github.com/aadishiv23/aadios/internal/api/ws"
	"github.com/aadishiv23/aadios/internal/domain/preferences"
	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/infrastructure/config"
	"github.com/aadishiv23/aadios/internal/infrastructure/logging"
	"github.com/aadishiv23/aadios/internal/infrastructure/monitoring"
	"github.com/aadishiv23/aadios/internal/infrastructure/resilience"
	"github.com/aadishiv23/aadios/internal/infrastructure/tracing"
)

const (
	serviceName = "aadios"
	streamPath  = "/stream"

	// gzip is skipped for bodies smaller than this
	gzipMinSize = 1024
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	cfg      *config.Config
	log      *logging.Logger
	router   *gin.Engine
	handler  http.Handler
	http     *http.Server
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	sessions *session.Manager
	prefs    *preferences.Service
}

// New wires every component from cfg. The logger is owned by the caller.
func New(ctx context.Context, cfg *config.Config, log *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}

	reg, err := buildRegistry(cfg.Desktop.CatalogDir, log.Logger)
	if err != nil {
		return nil, err
	}
	if _, ok := reg.Resolve(cfg.Desktop.DefaultApp); cfg.Desktop.DefaultApp != "" && !ok {
		return nil, fmt.Errorf("default app %q is not in the catalogue", cfg.Desktop.DefaultApp)
	}
	log.Info("App catalogue loaded", zap.Int("apps", reg.Len()))

	metrics := monitoring.NewMetrics()
	tracer := tracing.New(serviceName, log.Named("trace"))

	breaker := resilience.New("preferences", resilience.Settings{
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to resilience.State) {
			metrics.SetBreakerState(name, int(to))
			log.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	store := preferences.OpenStore(ctx, cfg.Preferences.DBPath, log.Logger)
	prefs := preferences.NewService(ctx, store, cfg.Preferences.DefaultDarkMode,
		preferences.WithLogger(log.Named("preferences")),
		preferences.WithRecorder(metrics),
		preferences.WithGuard(breaker),
	)

	sessions := session.NewManager(reg, prefs, session.Config{
		Viewport:    cfg.Desktop.Viewport(),
		DefaultApp:  cfg.Desktop.DefaultApp,
		MaxSessions: cfg.Desktop.MaxSessions,
		MediaDir:    cfg.Media.Dir,
	}).WithLogger(log.Named("session")).WithMetrics(metrics)

	s := &Server{
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		tracer:   tracer,
		sessions: sessions,
		prefs:    prefs,
	}

	s.router = s.routes(httpapi.NewHandlers(sessions, reg, prefs, metrics, log.Named("http")),
		ws.NewHandler(sessions, log.Named("ws"), metrics, tracer))

	s.handler = s.router
	if cfg.Server.Gzip {
		if s.handler, err = compress(s.router); err != nil {
			return nil, fmt.Errorf("failed to configure compression: %w", err)
		}
	}

	s.http = &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) routes(handlers *httpapi.Handlers, stream *ws.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(s.tracer))
	router.Use(monitoring.Middleware(s.metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(s.cfg.Server.CORSOrigins...)))
	if rl := s.cfg.RateLimit; rl.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: rl.RequestsPerSecond,
			Burst:             rl.Burst,
		}))
	}

	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	router.GET(streamPath, stream.HandleConnection)
	handlers.Register(router)
	return router
}

// buildRegistry merges catalogue files over the built-in apps
func buildRegistry(dir string, log *zap.Logger) (*registry.Registry, error) {
	seeded, err := registry.NewSeeder(dir, log.Named("seeder")).Seed()
	if err != nil {
		return nil, err
	}
	if len(seeded) == 0 {
		return registry.Default(), nil
	}
	reg, err := registry.New(append(registry.Builtin(), seeded...)...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}
	return reg, nil
}

// compress gzips responses except the WebSocket upgrade, which must keep
// the raw connection
func compress(next http.Handler) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, err
	}
	gz := wrap(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == streamPath {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	}), nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run serves until Shutdown is called
func (s *Server) Run() error {
	s.log.Info("Starting desktop service", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases every resource
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close closes every session and the preference store
func (s *Server) Close() error {
	n := s.sessions.Count()
	s.sessions.CloseAll()
	s.log.Info("Closed desktop sessions", zap.Int("count", n))

	err := s.prefs.Close()
	if err != nil {
		s.log.Error("Error closing preference store", zap.Error(err))
	}
	s.tracer.Close()
	return err
}
