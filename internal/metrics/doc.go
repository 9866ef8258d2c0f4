// Package metrics exposes the worker pool activity as prometheus metrics.
//
// The Observer implements pool.Observer and is meant to be combined with the
// log observer:
//
//	m, err := metrics.NewObserver(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	p, err := pool.New(8, pool.WithName("http"), pool.WithObserver(pool.Observers(
//	    pool.NewLogObserver(zap.S().Named("pool")),
//	    m,
//	)))
//
// # Metrics
//
//	┌────────────────────────────────┬─────────┬──────────────────────────────────┐
//	│ Name                           │ Type    │ Description                      │
//	├────────────────────────────────┼─────────┼──────────────────────────────────┤
//	│ taskpool_work_submitted_total  │ counter │ Works passed to Submit           │
//	│ taskpool_work_rejected_total   │ counter │ Works refused by a closed pool   │
//	│ taskpool_work_completed_total  │ counter │ Works which returned normally    │
//	│ taskpool_work_panicked_total   │ counter │ Works which panicked             │
//	│ taskpool_work_aborted_total    │ counter │ Works which called Goexit        │
//	│ taskpool_worker_restarts_total │ counter │ Worker goroutines restarted      │
//	│ taskpool_workers_alive         │ gauge   │ Workers not yet terminated       │
//	└────────────────────────────────┴─────────┴──────────────────────────────────┘
//
// Every metric carries a "pool" label holding the pool name.
package metrics
