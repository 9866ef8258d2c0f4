package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/taskpool/pkg/pool"
)

// Observer turns pool events into prometheus metrics, labelled by pool name.
type Observer struct {
	submitted *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	completed *prometheus.CounterVec
	panicked  *prometheus.CounterVec
	aborted   *prometheus.CounterVec
	restarts  *prometheus.CounterVec
	alive     *prometheus.GaugeVec
}

// NewObserver creates the pool metrics and registers them on reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		submitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_work_submitted_total",
				Help: "Number of works submitted to the pool, rejected ones included.",
			},
			[]string{"pool"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_work_rejected_total",
				Help: "Number of works refused because the pool was closed.",
			},
			[]string{"pool"},
		),
		completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_work_completed_total",
				Help: "Number of works which returned normally.",
			},
			[]string{"pool"},
		),
		panicked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_work_panicked_total",
				Help: "Number of works which panicked.",
			},
			[]string{"pool"},
		),
		aborted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_work_aborted_total",
				Help: "Number of works which ended their worker goroutine.",
			},
			[]string{"pool"},
		),
		restarts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskpool_worker_restarts_total",
				Help: "Number of workers restarted after their goroutine exited abnormally.",
			},
			[]string{"pool"},
		),
		alive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "taskpool_workers_alive",
				Help: "Number of workers not yet terminated.",
			},
			[]string{"pool"},
		),
	}

	for _, c := range []prometheus.Collector{o.submitted, o.rejected, o.completed, o.panicked, o.aborted, o.restarts, o.alive} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Observer) Observe(e pool.Event) {
	switch e.Kind {
	case pool.EventWorkSubmitted:
		o.submitted.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkRejected:
		o.rejected.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkCompleted:
		o.completed.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkPanicked:
		o.panicked.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkAborted:
		o.aborted.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkerRestarted:
		o.restarts.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkerStarted:
		o.alive.WithLabelValues(e.Pool).Inc()
	case pool.EventWorkerTerminating:
		o.alive.WithLabelValues(e.Pool).Dec()
	}
}
