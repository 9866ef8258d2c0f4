package pool

import "sync"

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	var zero T
	old[0] = zero
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

// signalQueue is the unbounded FIFO shared by all workers of a pool.
// Sends never block. Each signal is handed to exactly one receiver and
// receivers are serialized by mu.
type signalQueue struct {
	mu      sync.Mutex
	ready   *sync.Cond
	items   queue[signal]
	pending int
	closed  bool
}

func newSignalQueue() *signalQueue {
	q := &signalQueue{items: queue[signal]{}}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// send enqueues s. It returns false once closeWith has been called.
func (q *signalQueue) send(s signal) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items.Push(s)
	if s.kind == signalWork {
		q.pending++
	}
	q.ready.Signal()
	return true
}

// closeWith appends n terminate signals after everything sent so far and
// refuses any further send.
func (q *signalQueue) closeWith(n int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for range n {
		q.items.Push(newTerminateSignal())
	}
	q.ready.Broadcast()
}

// receive blocks until a signal is available and takes ownership of it.
func (q *signalQueue) receive() signal {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Len() == 0 {
		q.ready.Wait()
	}
	s := q.items.Pop()
	if s.kind == signalWork {
		q.pending--
	}
	return s
}

// pendingWork returns the number of work signals not yet received.
func (q *signalQueue) pendingWork() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}
