package pool

import "time"

// Work is a unit of deferred work. It is invoked exactly once by one worker.
type Work func()

// Task is the capability form of Work.
type Task interface {
	Execute()
}

type signalKind int

const (
	signalWork signalKind = iota
	signalTerminate
)

// signal is what travels through the shared queue: either one unit of work or a terminate marker.
type signal struct {
	kind signalKind
	work Work
}

func newWorkSignal(w Work) signal {
	return signal{kind: signalWork, work: w}
}

func newTerminateSignal() signal {
	return signal{kind: signalTerminate}
}

// Stats is a point in time snapshot of the pool counters.
type Stats struct {
	Size      int
	Alive     int
	Submitted uint64
	Completed uint64
	Panicked  uint64
	Aborted   uint64
	Pending   int
}

type EventKind string

const (
	EventPoolStarted       EventKind = "pool_started"
	EventWorkerStarted     EventKind = "worker_started"
	EventWorkSubmitted     EventKind = "work_submitted"
	EventWorkRejected      EventKind = "work_rejected"
	EventWorkReceived      EventKind = "work_received"
	EventWorkCompleted     EventKind = "work_completed"
	EventWorkPanicked      EventKind = "work_panicked"
	EventWorkAborted       EventKind = "work_aborted"
	EventWorkerRestarted   EventKind = "worker_restarted"
	EventWorkerTerminating EventKind = "worker_terminating"
	EventWorkerStopped     EventKind = "worker_stopped"
	EventPoolStopping      EventKind = "pool_stopping"
	EventPoolStopped       EventKind = "pool_stopped"
)

// NoWorker is the WorkerID of events which are not bound to a worker.
const NoWorker = -1

type Event struct {
	Pool     string
	Kind     EventKind
	WorkerID int
	Err      error
	Time     time.Time
}
