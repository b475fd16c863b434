package kcon

import "sync/atomic"

type LogLevel uint8

const (
	LVL_ERROR LogLevel = iota
	LVL_WARN
	LVL_DEBUG
	LVL_INFO
	_LVL_MAX_FOR_CHECKS_ONLY
)

type Color uint8

const (
	COL_RED Color = iota
	COL_YELLOW
	COL_CYAN
	COL_GREEN
	COL_DIM
	COL_RESET
	_COL_MAX_FOR_CHECKS_ONLY
)

type valKind uint8

const (
	VAL_INT valKind = iota
	VAL_HEX
	VAL_PTR
	VAL_STR
	VAL_BYTES
	_VAL_MAX_FOR_CHECKS_ONLY
)

// Value is one tagged positional argument for a render template. It is
// built by the Int/Hex/Ptr/Str/Bytes constructors and lives only for the
// duration of one Log call, always on the stack.
type Value struct {
	kind valKind
	num  int64
	ptr  uintptr
	str  string
	bts  []byte
}

// Sink is the console device: accepts exactly one byte per call.
// Writes never fail and never block beyond device timing.
type Sink interface {
	PutByte(b byte)
}

// Lock is the console mutual exclusion primitive. Acquire spins until the
// caller holds the lock exclusively; it is not reentrant (a second Acquire
// from the holder deadlocks that core). Every Acquire must be matched by
// exactly one Release.
type Lock interface {
	Acquire()
	Release()
}

// OutputState holds the process-wide console flags. Both transitions are
// one-way: DisableLocking and MarkPanicked are called only by the panic
// path and are never undone. Readers take a snapshot, they do not re-check
// mid-operation.
type OutputState struct {
	lockOff  atomic.Bool // zero value: locking enabled
	panicked atomic.Bool
}

// Console is the shared output front end: one sink, one lock, one state.
type Console struct {
	sink   Sink
	lock   Lock
	state  *OutputState
	banner string
}

// Client is a scoped handle on a Console: every line it emits carries the
// client's scope tag. Cheap enough to create per subsystem.
type Client struct {
	console  *Console
	scope    string
	curLevel LogLevel
}
