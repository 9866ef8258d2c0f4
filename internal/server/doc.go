// Package server provides the HTTP server of taskpool.
//
// The server uses the Gin web framework. Every page request is executed as a
// unit of work on the worker pool, which caps the number of requests served
// concurrently at the pool size.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  RequestID (X-Request-ID, uuid when absent)             │  │
//	│  │  Logger (ginzap, "http" logger name)                    │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics          promhttp, served outside the pool          │
//	├───────────────────────────────────────────────────────────────┤
//	│  PoolLimiter  ──►  pool.Submit(rest of the chain)             │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  GET /   GET /sleep   NoRoute (404)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (Mode = "dev"):
//   - Gin runs in debug mode
//
// Production Mode (Mode = "prod"):
//   - Gin runs in release mode
//
// # Pool Limiter
//
// PoolLimiter submits the remaining handlers as one work and blocks the
// request goroutine until that work has run. When the pool is closed the
// request is answered with 503. A handler panic is recovered on the worker and
// re-raised on the request goroutine so the recovery middleware answers 500
// and the worker keeps serving.
//
// # Server Lifecycle
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Start binds the address with exponential backoff, up to BindRetries attempts.
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete. The
// pool must be closed after Stop returns, never before, or in-flight requests
// would be answered with 503.
//
// # Usage Example
//
//	err := pool.Run(cfg.Pool.Size, func(p *pool.Pool) error {
//	    srv := server.NewServer(cfg.Server, p, prometheus.DefaultGatherer, handlers.New(pages, cfg.Server.SleepDuration))
//
//	    go func() {
//	        <-ctx.Done()
//	        srv.Stop(context.Background())
//	    }()
//
//	    if err := srv.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
//	        return err
//	    }
//	    return nil
//	})
package server
