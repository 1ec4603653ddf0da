// Package metrics defines the values produced by source readers: the tagged
// Reading result and the per-tick Snapshot that aggregates them.
package metrics

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is the reason attached to a reading whose source produced
// no value and gave no more specific cause.
var ErrUnavailable = errors.New("source unavailable")

// Reading is the outcome of one source read: either a value or the reason
// the value is unavailable. The zero Reading is unavailable.
type Reading[T any] struct {
	value T
	err   error
	ok    bool
}

// Reader produces one Reading from current system state. Readers take no
// input besides ctx, which bounds how long they may block.
type Reader[T any] func(ctx context.Context) Reading[T]

// Ok returns an available reading holding v.
func Ok[T any](v T) Reading[T] {
	return Reading[T]{value: v, ok: true}
}

// Unavailable returns a reading with no value. A nil reason is replaced by
// ErrUnavailable so Err never returns nil for an unavailable reading.
func Unavailable[T any](reason error) Reading[T] {
	if reason == nil {
		reason = ErrUnavailable
	}
	return Reading[T]{err: reason}
}

// Unavailablef is Unavailable with a formatted reason.
func Unavailablef[T any](format string, args ...any) Reading[T] {
	return Unavailable[T](fmt.Errorf(format, args...))
}

// From converts a conventional (value, error) pair into a Reading.
func From[T any](v T, err error) Reading[T] {
	if err != nil {
		return Unavailable[T](err)
	}
	return Ok(v)
}

// Get returns the value and whether it is available.
func (r Reading[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Available reports whether the reading holds a value.
func (r Reading[T]) Available() bool {
	return r.ok
}

// Err returns why the reading is unavailable, or nil.
func (r Reading[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrUnavailable
	}
	return r.err
}

// Or returns the value, or fallback when unavailable.
func (r Reading[T]) Or(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// Map transforms an available reading, passing an unavailable one through.
func Map[T, U any](r Reading[T], fn func(T) U) Reading[U] {
	v, ok := r.Get()
	if !ok {
		return Unavailable[U](r.Err())
	}
	return Ok(fn(v))
}
