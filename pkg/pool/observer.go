package pool

import (
	"go.uber.org/zap"
)

// Observer receives the lifecycle events of a pool.
// Observe is called synchronously from the submitting goroutine or from a worker,
// so implementations must be safe for concurrent use and must not block.
type Observer interface {
	Observe(e Event)
}

type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type multiObserver []Observer

func (m multiObserver) Observe(e Event) {
	for _, o := range m {
		o.Observe(e)
	}
}

// Observers fans every event out to each of obs, in order. Nil observers are skipped.
func Observers(obs ...Observer) Observer {
	m := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

type logObserver struct {
	log *zap.SugaredLogger
}

// NewLogObserver returns an Observer writing events to log.
func NewLogObserver(log *zap.SugaredLogger) Observer {
	return &logObserver{log: log}
}

func (o *logObserver) Observe(e Event) {
	log := o.log
	if e.Pool != "" {
		log = log.With("pool", e.Pool)
	}

	switch e.Kind {
	case EventWorkSubmitted, EventWorkCompleted:
		// too chatty even for debug
	case EventWorkReceived:
		log.Debugw("worker got a job; executing", "worker", e.WorkerID)
	case EventWorkRejected:
		log.Debugw("work rejected; pool is closed")
	case EventWorkPanicked:
		log.Errorw("work panicked", "worker", e.WorkerID, "error", e.Err)
	case EventWorkAborted:
		log.Warnw("work exited the worker goroutine", "worker", e.WorkerID)
	case EventWorkerRestarted:
		log.Warnw("worker exited abnormally, restarting", "worker", e.WorkerID)
	case EventWorkerStarted:
		log.Debugw("worker started", "worker", e.WorkerID)
	case EventWorkerTerminating:
		log.Debugw("worker was told to terminate", "worker", e.WorkerID)
	case EventWorkerStopped:
		log.Infow("worker shut down", "worker", e.WorkerID)
	default:
		log.Infow(string(e.Kind))
	}
}
