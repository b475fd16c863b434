package main

import (
	"fmt"

	"github.com/abyssdigger/kcon/kcon"
)

func st1() {
	// one line per level, full decoration
	for lv := kcon.LVL_ERROR; lv <= kcon.LVL_INFO; lv++ {
		kcon.Log(lv, "demo", "hello from level %d", kcon.Int(int(lv)))
	}
	sched := kcon.NewClient("sched")
	sched.Info("core %d online", kcon.Int(1))
	sched.Warn("run queue depth %d (max %d)", kcon.Int(37), kcon.Int(32))
	fmt.Fprintf(sched.Lvl(kcon.LVL_DEBUG), "raw writer path, 100%% safe")
}

func st2() {
	kcon.Printf("dec=%d hex=%x ptr=%p str=%s pct=%%\n",
		-42, 255, uintptr(0xdeadbeef), "ok")
	kcon.Printf("unknown directive passes through: %q\n")
	kcon.Printf("trailing percent just stops: 100%")
	kcon.Printf("\n")
}

const stage = 2

func main() {
	switch stage {
	case 1:
		st1()
	case 2:
		st1()
		st2()
	}
	fmt.Println("locking enabled:", kcon.LockingEnabled(), "| panicked:", kcon.Panicked())
	// kcon.Panic("uncomment to watch the console freeze") // halts this core!
}
