package kcon

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is the default console Lock: a CAS busy loop with no queueing or
// fairness, only eventual availability. Not reentrant.
type SpinLock struct {
	held atomic.Bool
}

func (l *SpinLock) Acquire() {
	for !l.held.CompareAndSwap(false, true) {
		// keep single-threaded schedulers live while spinning
		runtime.Gosched()
	}
}

func (l *SpinLock) Release() {
	l.held.Store(false)
}

// enter snapshots the locking flag once and acquires the lock if it is still
// enforced. The returned release must be called exactly once on every exit
// path. The snapshot is deliberately not re-checked mid-call: a panic on
// another core during a long write does not abort the write in progress.
func (c *Console) enter() (release func()) {
	if !c.state.LockingEnabled() {
		return func() {}
	}
	c.lock.Acquire()
	return c.lock.Release
}
