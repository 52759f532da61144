package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerminal struct{ finis int }

func (f *fakeTerminal) Fini() { f.finis++ }

func TestGoRecoversAndFinalizesTerminal(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = os.Exit })

	term := &fakeTerminal{}
	SetCrashTerminal(term)

	Go(func() { panic("boom") })

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "crash handler did not run")
	}
	assert.Equal(t, 1, term.finis)
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	exit = func(int) { called = true }
	t.Cleanup(func() { exit = os.Exit })

	HandleCrash(nil)
	assert.False(t, called)
}
