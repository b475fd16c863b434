package kcon

// Default is the package-level console, bound to stdout. Kernel call sites
// that do not care about wiring use the package functions below, which all
// delegate to it.
var Default = Init()

func Log(level LogLevel, scope string, template string, args ...Value) {
	Default.Log(level, scope, template, args...)
}

func Printf(format string, args ...any) {
	Default.Printf(format, args...)
}

func Panic(message string) {
	Default.Panic(message)
}

func LockingEnabled() bool {
	return Default.LockingEnabled()
}

func Panicked() bool {
	return Default.Panicked()
}

func NewClient(scope string) *Client {
	return Default.NewClient(scope)
}
