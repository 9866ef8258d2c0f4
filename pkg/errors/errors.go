package errors

import (
	"errors"
	"fmt"
)

// ConfigError is returned when a pool or the agent configuration carries an invalid value.
type ConfigError struct {
	Field  string
	Reason string
}

func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// NewInvalidPoolSizeError is the ConfigError returned by pool.New for a non-positive size.
func NewInvalidPoolSizeError(size int) *ConfigError {
	return &ConfigError{Field: "size", Reason: fmt.Sprintf("invalid pool size %d: must be greater than zero", size)}
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// PoolClosedError is returned when work is submitted to a pool which is shutting down or already closed.
type PoolClosedError struct {
	Pool string
}

func NewPoolClosedError(pool string) *PoolClosedError {
	return &PoolClosedError{Pool: pool}
}

func (e *PoolClosedError) Error() string {
	if e.Pool == "" {
		return "pool is closed"
	}
	return fmt.Sprintf("pool %q is closed", e.Pool)
}

func IsPoolClosedError(err error) bool {
	var e *PoolClosedError
	return errors.As(err, &e)
}

type InvalidWorkError struct{}

func NewInvalidWorkError() *InvalidWorkError {
	return &InvalidWorkError{}
}

func (e *InvalidWorkError) Error() string {
	return "work must not be nil"
}

func IsInvalidWorkError(err error) bool {
	var e *InvalidWorkError
	return errors.As(err, &e)
}

// WorkPanicError describes a unit of work which panicked on a worker.
// It is never returned to the submitter, only reported to the pool observer.
type WorkPanicError struct {
	WorkerID int
	Value    any
	Stack    []byte
}

func NewWorkPanicError(workerID int, value any, stack []byte) *WorkPanicError {
	return &WorkPanicError{WorkerID: workerID, Value: value, Stack: stack}
}

func (e *WorkPanicError) Error() string {
	return fmt.Sprintf("worker %d: work panicked: %v", e.WorkerID, e.Value)
}

// Unwrap exposes the panic value when the work panicked with an error.
func (e *WorkPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func IsWorkPanicError(err error) bool {
	var e *WorkPanicError
	return errors.As(err, &e)
}
