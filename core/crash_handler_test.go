package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type fakeTerminal struct {
	finis int
}

func (f *fakeTerminal) Fini() { f.finis++ }

// captureCrash swaps the crash outputs and exit for the test duration
func captureCrash(t *testing.T) (out, reset *bytes.Buffer, code chan int) {
	t.Helper()
	out, reset = &bytes.Buffer{}, &bytes.Buffer{}
	code = make(chan int, 1)

	prevOut, prevReset, prevExit := crashOut, resetOut, exit
	crashOut, resetOut = out, reset
	exit = func(c int) { code <- c }
	t.Cleanup(func() {
		crashOut, resetOut, exit = prevOut, prevReset, prevExit
		SetCrashTerminal(nil)
	})
	return out, reset, code
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	out, _, code := captureCrash(t)
	HandleCrash(nil)

	if out.Len() != 0 || len(code) != 0 {
		t.Error("Expected nil recover value to be ignored")
	}
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	out, reset, code := captureCrash(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	if term.finis != 1 {
		t.Errorf("Expected Fini once, got %d", term.finis)
	}
	if reset.Len() != 0 {
		t.Error("Expected no emergency reset when a terminal is registered")
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") || !strings.Contains(out.String(), "Stack Trace") {
		t.Errorf("Unexpected crash output %q", out.String())
	}
	if c := <-code; c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
}

func TestHandleCrashFallsBackToEmergencyReset(t *testing.T) {
	_, reset, code := captureCrash(t)

	HandleCrash("boom")
	<-code

	if !bytes.Contains(reset.Bytes(), []byte("\x1b[?1049l")) {
		t.Error("Expected alt screen exit in emergency reset")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	out, _, code := captureCrash(t)

	Go(func() { panic("worker failed") })

	select {
	case c := <-code:
		if c != 1 {
			t.Errorf("Expected exit code 1, got %d", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected crash handler to run")
	}
	if !strings.Contains(out.String(), "worker failed") {
		t.Errorf("Expected panic value in output, got %q", out.String())
	}
}
