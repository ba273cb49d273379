package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup runs before the crash report so the terminal is readable
var crashCleanup atomic.Value // func()

// SetCrashCleanup registers display teardown to run before a crash report
// Frontends register their screen restore here
func SetCrashCleanup(fn func()) {
	crashCleanup.Store(fn)
}

// HandleCrash is the unified panic handler that restores the display and
// prints the stack trace. A nil recover value is ignored
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := crashCleanup.Load().(func()); ok && fn != nil {
		fn()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
