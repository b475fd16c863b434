package kcon

import "runtime"

// LockingEnabled reports whether writers should still take the console lock.
// True until the first panic, then false forever.
func (s *OutputState) LockingEnabled() bool {
	return !s.lockOff.Load()
}

// DisableLocking is the Running→Panicked half-step: one-way, never undone.
func (s *OutputState) DisableLocking() {
	s.lockOff.Store(true)
}

// Panicked reports whether a panic is in progress. Terminal once true. The
// flag exists to be observed by other console writers so they can stop
// producing output voluntarily; nothing in this package gates on it.
func (s *OutputState) Panicked() bool {
	return s.panicked.Load()
}

func (s *OutputState) MarkPanicked() {
	s.panicked.Store(true)
}

// haltFn parks the panicking core forever. Swapped by tests.
var haltFn = func() {
	for {
		runtime.Gosched()
	}
}

// Panic is the terminal state transition: it silences the console system-wide
// and halts the calling core. It never returns, never unwinds, runs no
// cleanup, and uses nothing that can fail (verbatim byte writes only).
//
// Locking is deliberately NOT acquired first: a panic must make forward
// progress even if another core holds the lock or died holding it. The cost
// is that the banner may interleave with an in-flight locked write; liveness
// during fatal failure wins over formatting during fatal failure. Do not
// "fix" this by taking the lock.
func (c *Console) Panic(message string) {
	c.state.DisableLocking()
	putString(c.sink, c.banner)
	putString(c.sink, message)
	c.sink.PutByte('\n')
	c.state.MarkPanicked()
	haltFn()
}
