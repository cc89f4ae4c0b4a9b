package app

import (
	"sync"
	"sync/atomic"
)

// lifecycle is shared between a loader and its in-flight requests. The
// requests never reference the loader itself, only this token.
type lifecycle struct {
	discarded atomic.Bool
}

func (l *lifecycle) discard() {
	l.discarded.Store(true)
}

func (l *lifecycle) alive() bool {
	return !l.discarded.Load()
}

// once fires fn for the first call only.
type once[T any] struct {
	o  sync.Once
	fn func(T)
}

func newOnce[T any](fn func(T)) *once[T] {
	return &once[T]{fn: fn}
}

func (o *once[T]) fire(v T) (fired bool) {
	o.o.Do(func() {
		fired = true
		o.fn(v)
	})
	return fired
}
