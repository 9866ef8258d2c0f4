package pool

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

type Pool struct {
	name     string
	workers  []*worker
	queue    *signalQueue
	observer Observer
	once     sync.Once

	alive     atomic.Int32
	submitted atomic.Uint64
	completed atomic.Uint64
	panicked  atomic.Uint64
	aborted   atomic.Uint64
}

// New starts a pool of size workers. size must be greater than zero.
func New(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, srvErrors.NewInvalidPoolSizeError(size)
	}

	p := &Pool{
		queue:   newSignalQueue(),
		workers: make([]*worker, 0, size),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.observer == nil {
		p.observer = NewLogObserver(zap.S().Named("pool"))
	}

	for id := range size {
		w := newWorker(id, p)
		p.workers = append(p.workers, w)
		p.alive.Add(1)
		p.emit(id, EventWorkerStarted, nil)
		w.start()
	}
	p.emit(NoWorker, EventPoolStarted, nil)

	return p, nil
}

// Run creates a pool, hands it to fn and closes it on every exit path of fn,
// panics included.
func Run(size int, fn func(p *Pool) error, opts ...Option) error {
	p, err := New(size, opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	return fn(p)
}

// Submit enqueues w. It does not wait for w to run and there is no way
// to observe its completion.
// EventWorkSubmitted is emitted before w can reach a worker. A submission
// refused by a closed pool is followed by EventWorkRejected.
func (p *Pool) Submit(w Work) error {
	if w == nil {
		return srvErrors.NewInvalidWorkError()
	}

	p.submitted.Add(1)
	p.emit(NoWorker, EventWorkSubmitted, nil)
	if !p.queue.send(newWorkSignal(w)) {
		p.submitted.Add(^uint64(0))
		p.emit(NoWorker, EventWorkRejected, nil)
		return srvErrors.NewPoolClosedError(p.name)
	}

	return nil
}

func (p *Pool) SubmitTask(t Task) error {
	if t == nil {
		return srvErrors.NewInvalidWorkError()
	}
	return p.Submit(t.Execute)
}

// Close sends one terminate signal per worker behind all the work already
// submitted and blocks until every worker has exited.
// Work submitted before Close is always executed.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.emit(NoWorker, EventPoolStopping, nil)
		p.queue.closeWith(len(p.workers))

		for _, w := range p.workers {
			<-w.done
			p.emit(w.id, EventWorkerStopped, nil)
		}

		p.emit(NoWorker, EventPoolStopped, nil)
	})
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) Size() int {
	return len(p.workers)
}

// Alive returns the number of workers which have not terminated yet.
func (p *Pool) Alive() int {
	return int(p.alive.Load())
}

func (p *Pool) Stats() Stats {
	return Stats{
		Size:      len(p.workers),
		Alive:     p.Alive(),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
		Aborted:   p.aborted.Load(),
		Pending:   p.queue.pendingWork(),
	}
}

func (p *Pool) emit(workerID int, kind EventKind, err error) {
	p.observer.Observe(Event{
		Pool:     p.name,
		Kind:     kind,
		WorkerID: workerID,
		Err:      err,
		Time:     time.Now(),
	})
}
