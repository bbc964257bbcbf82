package core

import (
	"testing"
	"time"
)

func TestStepperFirstCallSeedsOnly(t *testing.T) {
	s := NewStepper(time.Second / 60)
	now := time.Unix(100, 0)

	if s.Advance(now) {
		t.Error("first Advance() should only seed the clock, not emit a tick")
	}
}

func TestStepperEmitsAfterStepElapsed(t *testing.T) {
	step := time.Second / 60
	s := NewStepper(step)
	now := time.Unix(100, 0)
	s.Advance(now)

	// Half a step: not enough elapsed
	if s.Advance(now.Add(step / 2)) {
		t.Error("Advance() emitted a tick before a full step elapsed")
	}

	// A full step from the reference: tick
	if !s.Advance(now.Add(step)) {
		t.Error("Advance() should emit a tick once a full step elapsed")
	}
}

func TestStepperDiscardsBacklog(t *testing.T) {
	step := time.Second / 60
	s := NewStepper(step)
	now := time.Unix(100, 0)
	s.Advance(now)

	// A long frame stall worth ten steps yields exactly one tick
	stalled := now.Add(10 * step)
	if !s.Advance(stalled) {
		t.Fatal("Advance() should emit a tick after a stall")
	}

	// The backlog is gone: an immediate follow-up frame does not tick
	if s.Advance(stalled.Add(time.Millisecond)) {
		t.Error("Advance() should discard backlog instead of queueing catch-up ticks")
	}
}

func TestStepperAtMostOneTickPerCall(t *testing.T) {
	step := time.Second / 60
	s := NewStepper(step)
	base := time.Unix(100, 0)
	s.Advance(base)

	ticks := 0
	for i := 1; i <= 120; i++ {
		if s.Advance(base.Add(time.Duration(i) * step)) {
			ticks++
		}
	}
	if ticks != 120 {
		t.Errorf("expected one tick per full step, got %d of 120", ticks)
	}
}
