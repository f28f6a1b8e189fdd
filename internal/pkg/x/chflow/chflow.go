// Package chflow holds context-aware channel helpers so that producers and
// consumers stop blocking as soon as their context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
// It reports whether the value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
