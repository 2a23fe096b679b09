package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores a terminal it took over
type Finisher interface {
	Fini()
}

// Escape sequences restoring a sane terminal when no Finisher is registered
var emergencyReset = []byte(
	"\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" + // Mouse tracking off
		"\x1b[?25h" + // Cursor show
		"\x1b[?1049l" + // Alt screen exit
		"\x1b[0m" + // SGR reset
		"\x1b[?7h", // Auto-wrap on
)

var (
	crashMu       sync.Mutex
	crashTerminal Finisher

	// Replaced in tests
	crashOut io.Writer = os.Stderr
	resetOut io.Writer = os.Stdout
	exit               = os.Exit
)

// SetCrashTerminal registers the terminal restored by HandleCrash, nil clears it
func SetCrashTerminal(f Finisher) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// EmergencyReset writes the terminal reset sequences to w
func EmergencyReset(w io.Writer) {
	w.Write(emergencyReset)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	// Terminal cleanup if available
	if term != nil {
		term.Fini()
	} else {
		EmergencyReset(resetOut)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
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
