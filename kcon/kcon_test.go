package kcon

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func Test_Console_Log(t *testing.T) {
	out := &FakeSink{}
	c := InitWithParams(out, new(SpinLock))

	t.Run("line_layout", func(t *testing.T) {
		out.Clear()
		c.Log(LVL_ERROR, "mm", "page fault at %p", Ptr(0x8000))
		assert.Equal(t, wantLine(LVL_ERROR, "mm", "page fault at 0x0000000000008000"), out.String())
	})
	t.Run("every_level", func(t *testing.T) {
		for lv := LogLevel(0); lv < _LVL_MAX_FOR_CHECKS_ONLY; lv++ {
			out.Clear()
			c.Log(lv, "scope", "msg")
			assert.Equal(t, wantLine(lv, "scope", "msg"), out.String())
		}
	})
	t.Run("scope_verbatim", func(t *testing.T) {
		out.Clear()
		c.Log(LVL_INFO, "weird scope/0x%d!", "ok")
		assert.Equal(t, wantLine(LVL_INFO, "weird scope/0x%d!", "ok"), out.String())
	})
	t.Run("lock_pairing", func(t *testing.T) {
		lock := &FakeLock{}
		lc := InitWithParams(&FakeSink{}, lock)
		lc.Log(LVL_DEBUG, "s", "%d", Int(1))
		assert.Equal(t, int64(1), lock.acquires.Load())
		assert.Equal(t, int64(1), lock.releases.Load())
	})
}

func Test_Console_Log_bad_template_escalates(t *testing.T) {
	out := &FakeSink{}
	lock := &FakeLock{}
	c := InitWithParams(out, lock)
	completed := runHalted(func() {
		c.Log(LVL_INFO, "fs", "%d of %d", Int(1))
	})
	assert.False(t, completed, "Log with a broken template must not return")
	assert.True(t, c.Panicked())
	assert.False(t, c.LockingEnabled())
	assert.Contains(t, out.String(), "bad log call")
	// lock released before escalation, not left held by the halted core
	assert.Equal(t, lock.acquires.Load(), lock.releases.Load())
}

func Test_Console_SetBanner(t *testing.T) {
	out := &FakeSink{}
	c := InitWithParams(out, new(SpinLock)).SetBanner("!!BOOM!!\n")
	completed := runHalted(func() { c.Panic("why") })
	assert.False(t, completed)
	assert.Equal(t, "!!BOOM!!\nwhy\n", out.String())
}

func Test_Default_Console(t *testing.T) {
	prev := Default
	defer func() { Default = prev }()
	out := &FakeSink{}
	Default = InitWithParams(out, new(SpinLock))

	Log(LVL_WARN, "irq", "vector %d", Int(9))
	assert.Equal(t, wantLine(LVL_WARN, "irq", "vector 9"), out.String())
	out.Clear()
	Printf("%s=%x", "mask", 0xff)
	assert.Equal(t, "mask=ff", out.String())
	assert.True(t, LockingEnabled())
	assert.False(t, Panicked())
}

func Test_Parallel_No_Interleaving(t *testing.T) {
	const (
		_GOROUTINES_ = 64  // concurrent writers
		_LINECOUNT_  = 200 // lines per writer
	)
	out := &FakeSink{}
	c := InitWithParams(out, new(SpinLock))
	Rand := rand.New(rand.NewSource(time.Now().UnixNano())) // stochastic

	payloads := make([]string, _GOROUTINES_)
	for i := range payloads {
		payloads[i] = strings.Repeat(string(rune('a'+i%26)), Rand.Intn(40)+1)
	}

	var eg errgroup.Group
	for i := 0; i < _GOROUTINES_; i++ {
		i := i
		eg.Go(func() error {
			for j := 0; j < _LINECOUNT_; j++ {
				if j%2 == 0 {
					c.Log(LVL_INFO, "w", "%s", Str(payloads[i]))
				} else {
					c.Printf("%s\n", payloads[i])
				}
			}
			return nil
		})
	}
	assert.NoError(t, eg.Wait())

	want := make(map[string]int, 2*_GOROUTINES_)
	for i := range payloads {
		logged := wantLine(LVL_INFO, "w", payloads[i])
		want[strings.TrimSuffix(logged, "\n")] += _LINECOUNT_ / 2
		want[payloads[i]] += _LINECOUNT_ / 2
	}
	got := make(map[string]int)
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "", lines[len(lines)-1], "output must end with a newline")
	for _, line := range lines[:len(lines)-1] {
		got[line]++
	}
	// every emitted line is one complete logical write, never intermixed
	assert.Equal(t, want, got)
}
