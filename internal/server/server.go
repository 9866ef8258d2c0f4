package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/taskpool/internal/config"
	"github.com/kubev2v/taskpool/pkg/pool"
)

const metricsPath = "/metrics"

// Routes is implemented by the handlers served on the worker pool.
type Routes interface {
	RegisterRoutes(router gin.IRoutes)
	NotFound(c *gin.Context)
}

type Server struct {
	cfg    config.Server
	engine *gin.Engine
	srv    *http.Server

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

// NewServer builds the gin engine. Every route of routes, the 404 included,
// is executed on p. The metrics endpoint serves gatherer outside the pool.
func NewServer(cfg config.Server, p *pool.Pool, gatherer prometheus.Gatherer, routes Routes) *Server {
	switch cfg.Mode {
	case config.ServerModeProd:
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	logger := zap.L().Named("http")

	engine := gin.New()
	engine.Use(
		RequestID(),
		ginzap.GinzapWithConfig(logger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{metricsPath},
			Context: func(c *gin.Context) []zapcore.Field {
				return []zapcore.Field{zap.String(requestIDKey, c.GetString(requestIDKey))}
			},
		}),
		ginzap.RecoveryWithZap(logger, true),
	)

	engine.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	limiter := PoolLimiter(p)
	routes.RegisterRoutes(engine.Group("/", limiter))
	engine.NoRoute(limiter, routes.NotFound)

	return &Server{
		cfg:    cfg,
		engine: engine,
		srv: &http.Server{
			Addr:              cfg.Address,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ready: make(chan struct{}),
	}
}

// Handler returns the http handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start binds the listen address, retrying with exponential backoff, and serves
// until Stop is called. It returns http.ErrServerClosed after a graceful stop.
func (s *Server) Start(ctx context.Context) error {
	tries := s.cfg.BindRetries
	if tries == 0 {
		tries = 1
	}

	ln, err := backoff.Retry(ctx, func() (net.Listener, error) {
		ln, err := net.Listen("tcp", s.cfg.Address)
		if err != nil {
			zap.S().Named("http").Warnw("failed to bind address", "address", s.cfg.Address, "error", err)
			return nil, err
		}
		return ln, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(tries))
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	zap.S().Named("http").Infow("server listening", "address", ln.Addr().String(), "mode", s.cfg.Mode)

	return s.srv.Serve(ln)
}

// Ready is closed once the server is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, nil before the server is listening.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Stop gracefully shuts down the server, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
