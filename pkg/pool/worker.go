package pool

import (
	"runtime/debug"

	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

type worker struct {
	id    int
	pool  *Pool
	queue *signalQueue
	done  chan struct{}
}

func newWorker(id int, p *Pool) *worker {
	return &worker{
		id:    id,
		pool:  p,
		queue: p.queue,
		done:  make(chan struct{}),
	}
}

func (w *worker) start() {
	go w.run()
}

// run consumes signals until it receives a terminate signal.
// A goroutine leaving the loop any other way (runtime.Goexit inside a work)
// is replaced by a new one with the same id, and the work it was running
// is counted as aborted.
func (w *worker) run() {
	terminated := false
	executing := false
	defer func() {
		if terminated {
			w.pool.alive.Add(-1)
			close(w.done)
			return
		}
		if executing {
			w.pool.aborted.Add(1)
			w.pool.emit(w.id, EventWorkAborted, nil)
		}
		w.pool.emit(w.id, EventWorkerRestarted, nil)
		go w.run()
	}()

	for {
		s := w.queue.receive()
		if s.kind == signalTerminate {
			w.pool.emit(w.id, EventWorkerTerminating, nil)
			terminated = true
			return
		}

		w.pool.emit(w.id, EventWorkReceived, nil)
		executing = true
		w.execute(s.work)
		executing = false
	}
}

func (w *worker) execute(fn Work) {
	defer func() {
		if rec := recover(); rec != nil {
			w.pool.panicked.Add(1)
			w.pool.emit(w.id, EventWorkPanicked, srvErrors.NewWorkPanicError(w.id, rec, debug.Stack()))
		}
	}()

	fn()

	w.pool.completed.Add(1)
	w.pool.emit(w.id, EventWorkCompleted, nil)
}
