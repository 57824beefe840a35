package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerOnlyLastTriggerFires(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fired atomic.Int32
	done := make(chan struct{})

	d.Trigger(func() { fired.Add(1) })
	d.Trigger(func() { fired.Add(1) })
	d.Trigger(func() {
		fired.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced function never fired")
	}
	// Give superseded timers a chance to misfire before asserting.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fired atomic.Int32

	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestDebouncerReusableAfterStop(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	done := make(chan struct{})

	d.Stop()
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trigger after stop never fired")
	}
}
