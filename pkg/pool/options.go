package pool

type Option func(p *Pool)

// WithObserver replaces the default zap observer.
// Use Observers to keep logging next to another observer.
func WithObserver(o Observer) Option {
	return func(p *Pool) {
		p.observer = o
	}
}

// WithName sets the name attached to every event of the pool.
func WithName(name string) Option {
	return func(p *Pool) {
		p.name = name
	}
}
