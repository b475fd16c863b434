package kcon

import "os"

func Init() *Console {
	return InitWithParams(WriterSink(os.Stdout), new(SpinLock))
}

func InitWithParams(sink Sink, lock Lock) *Console {
	c := new(Console)
	c.sink = sink
	c.lock = lock
	c.state = new(OutputState)
	c.banner = DEFAULT_PANIC_BANNER
	return c
}

// Settings //////////////////////////////////////////

func (c *Console) SetBanner(banner string) *Console {
	c.banner = banner
	return c
}

func (c *Console) State() *OutputState {
	return c.state
}

func (c *Console) LockingEnabled() bool {
	return c.state.LockingEnabled()
}

func (c *Console) Panicked() bool {
	return c.state.Panicked()
}

// Leveled logging //////////////////////////////////////////

// Log emits one decorated line:
//
//	[<level color><label><reset>] (<dim><scope><reset>): <rendered template>\n
//
// The whole line is written under the console lock (if locking is still
// enforced), so it is atomic with respect to other lock-respecting writers.
// A template that does not match its arguments is a programming error, not a
// runtime condition: the line is cut short and the call escalates to Panic.
// The lock is released before escalating, on this and every other path.
func (c *Console) Log(level LogLevel, scope string, template string, args ...Value) {
	release := c.enter()
	c.putPrefix(level, scope)
	err := renderTemplate(c.sink, template, args)
	c.sink.PutByte('\n')
	release()
	if err != nil {
		c.Panic("bad log call: " + err.Error())
	}
}

// logRaw emits p verbatim as one decorated line, no directive scanning.
func (c *Console) logRaw(level LogLevel, scope string, p []byte) {
	release := c.enter()
	c.putPrefix(level, scope)
	putBytes(c.sink, p)
	c.sink.PutByte('\n')
	release()
}

func (c *Console) putPrefix(level LogLevel, scope string) {
	level = normLevel(level)
	c.sink.PutByte('[')
	putString(c.sink, level.Color().Seq())
	putString(c.sink, level.Label())
	putString(c.sink, COL_RESET.Seq())
	putString(c.sink, "] (")
	putString(c.sink, COL_DIM.Seq())
	putString(c.sink, scope)
	putString(c.sink, COL_RESET.Seq())
	putString(c.sink, "): ")
}
