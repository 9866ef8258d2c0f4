// Package handlers implements the HTTP layer of taskpool.
//
// Handlers delegate page content to the services layer and only deal with
// HTTP semantics. Every handler runs as a unit of work on the worker pool (see
// server.PoolLimiter), so at most Pool.Size requests are served at once.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                 PoolLimiter (server package)                    │
//	│  - Submits the rest of the chain to the worker pool             │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer (Pages)                     │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Endpoints
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ GET    │ /        │ 200 with hello.html                         │
//	│ GET    │ /sleep   │ 200 with hello.html after SleepDuration     │
//	│ *      │ *        │ 404 with 404.html                           │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// GET /sleep keeps one worker busy for SleepDuration. If the client goes away
// during the delay the handler aborts without writing a body.
package handlers
