package asset

import (
	"github.com/lixenwraith/vi-stroll/core"
)

type result[T any] struct {
	val T
	err error
}

// Future is a load running in the background, polled from the frame loop
type Future[T any] struct {
	ch   chan result[T]
	done bool
	res  result[T]
}

// Go starts fn on a crash-safe goroutine and returns its future
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{ch: make(chan result[T], 1)}
	core.Go(func() {
		v, err := fn()
		f.ch <- result[T]{val: v, err: err}
	})
	return f
}

// Resolved returns a future that is already complete
func Resolved[T any](v T, err error) *Future[T] {
	return &Future[T]{done: true, res: result[T]{val: v, err: err}}
}

// Poll returns the result once available without blocking
// ready is false while the load is still running
func (f *Future[T]) Poll() (v T, ready bool, err error) {
	if !f.done {
		select {
		case r := <-f.ch:
			f.res = r
			f.done = true
		default:
			return v, false, nil
		}
	}
	return f.res.val, true, f.res.err
}

// Wait blocks until the result is available
func (f *Future[T]) Wait() (T, error) {
	if !f.done {
		f.res = <-f.ch
		f.done = true
	}
	return f.res.val, f.res.err
}
