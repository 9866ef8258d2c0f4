// Package pool implements a fixed size worker pool executing fire-and-forget work.
//
// The pool starts N workers at creation. Work is submitted via Submit and is
// executed exactly once by one of the workers. There is no future and no way
// to cancel a work once submitted. Close drains the queue and blocks until
// every worker has exited.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │      receive() under the queue mutex      │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                 Signal Queue (FIFO, unbounded)          │        │
//	│  │  [work] [work] [work] ... [terminate] x N               │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                               │                                     │
//	│                 Submit(fn)  /   Close()                             │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Pool:
//   - Owns N workers (fixed at creation, N > 0)
//   - Owns the sending side of the signal queue
//   - Supports graceful shutdown via Close()
//
// Worker:
//   - Loops receiving signals from the shared queue
//   - Executes work outside the queue lock, so up to N works run concurrently
//   - Recovers from panics and reports them to the Observer
//   - Exits after receiving a terminate signal
//
// Signal:
//   - Either one unit of work or a terminate marker
//   - Each signal is received by exactly one worker
//
// # Worker Lifecycle
//
//	┌───────────┐    receive() work    ┌───────────┐
//	│   Idle    │ ───────────────────► │ Executing │
//	│           │ ◄─────────────────── │           │
//	└─────┬─────┘     work returns     └───────────┘
//	      │             or panics
//	      │ receive() terminate
//	      ▼
//	┌────────────┐
//	│ Terminated │
//	└────────────┘
//
// A panic inside a work does not kill the worker: it is recovered, reported as
// EventWorkPanicked with a *errors.WorkPanicError, and the worker keeps looping.
// A work calling runtime.Goexit ends the worker goroutine; the worker is then
// restarted with the same id (EventWorkerRestarted) so the pool keeps its size.
// Such a work is counted in Stats.Aborted and reported as EventWorkAborted, so
// once the pool is idle Submitted == Completed + Panicked + Aborted.
//
// # Graceful Shutdown
//
// Close() performs the shutdown:
//
//  1. Marks the queue closed and appends one terminate signal per worker,
//     after every work already submitted
//  2. Joins the workers in index order
//  3. Returns once every worker has exited
//
// Because the queue is FIFO, all the work submitted before Close is executed
// before the last terminate signal is consumed. Submit after Close returns a
// *errors.PoolClosedError. Close() is idempotent (uses sync.Once).
//
// # Observability
//
// Every lifecycle step is emitted as an Event to the pool Observer. The
// default observer logs with zap.S().Named("pool"). Observers can be combined:
//
//	p, err := pool.New(4, pool.WithObserver(pool.Observers(
//	    pool.NewLogObserver(zap.S().Named("pool")),
//	    metrics.NewObserver(prometheus.DefaultRegisterer),
//	)))
//
// # Usage Example
//
//	err := pool.Run(4, func(p *pool.Pool) error {
//	    for i := range 8 {
//	        if err := p.Submit(func() { process(i) }); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	}) // all 8 works have run here
package pool
