// Package chflow moves values through channels without outliving a context.
// Every helper gives up as soon as ctx is done.
package chflow

import "context"

// Receive takes one value from ch. ok is false when ctx is done first or ch
// is closed; value is then the zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
	case value, ok = <-ch:
	}

	return value, ok
}

// Send hands value to ch and reports whether it was delivered before ctx was
// done.
func Send[T any](ctx context.Context, ch chan<- T, value T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- value:
		return true
	}
}

// Each calls fn for every value received from ch, in order, until ch is
// closed or ctx is done. fn runs on the calling goroutine.
func Each[T any](ctx context.Context, ch <-chan T, fn func(T)) {
	for {
		value, ok := Receive(ctx, ch)
		if !ok {
			return
		}
		fn(value)
	}
}
