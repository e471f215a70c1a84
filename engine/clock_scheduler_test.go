package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeClockHandler counts dispatched events
// Only touched from the test goroutine through Dispatch
type fakeClockHandler struct {
	ticks        int
	spawns       int
	housekeeping int
	level        int
	over         bool
}

func (h *fakeClockHandler) OnTick()          { h.ticks++ }
func (h *fakeClockHandler) OnSpawnTimer()    { h.spawns++ }
func (h *fakeClockHandler) OnHousekeeping()  { h.housekeeping++ }
func (h *fakeClockHandler) Level() int       { return h.level }
func (h *fakeClockHandler) IsGameOver() bool { return h.over }

// waitForEvent drains the scheduler until an event of kind arrives
func waitForEvent(t *testing.T, cs *ClockScheduler, kind ClockEventKind, timeout time.Duration) ClockEvent {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case ev := <-cs.Events():
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for %s event", kind)
			return ClockEvent{}
		}
	}
}

func TestClockSchedulerStartHalt(t *testing.T) {
	h := &fakeClockHandler{level: 1}
	cs := NewClockScheduler(h, 5*time.Millisecond, time.Hour, 16, zerolog.Nop())

	if cs.Running() {
		t.Fatal("Expected scheduler stopped after construction")
	}

	cs.Start()
	defer cs.Halt()

	if !cs.Running() {
		t.Fatal("Expected scheduler running after Start")
	}
	if cs.Epoch() != 1 {
		t.Errorf("Expected epoch 1, got %d", cs.Epoch())
	}

	// Start while running is a no-op
	cs.Start()
	if cs.Epoch() != 1 {
		t.Errorf("Expected epoch unchanged by second Start, got %d", cs.Epoch())
	}

	ev := waitForEvent(t, cs, ClockTick, time.Second)
	if !cs.Dispatch(ev) {
		t.Fatal("Expected current tick to dispatch")
	}
	if h.ticks != 1 || cs.TickCount() != 1 {
		t.Errorf("Expected 1 tick, got handler=%d count=%d", h.ticks, cs.TickCount())
	}

	cs.Halt()
	if cs.Running() {
		t.Error("Expected scheduler halted")
	}
	if cs.Epoch() != 2 {
		t.Errorf("Expected epoch bumped to 2 by Halt, got %d", cs.Epoch())
	}

	// Second Halt is safe
	cs.Halt()
}

func TestClockSchedulerDropsStaleEvents(t *testing.T) {
	h := &fakeClockHandler{level: 1}
	cs := NewClockScheduler(h, time.Hour, time.Hour, 16, zerolog.Nop())

	cs.Start()
	stale := ClockEvent{Kind: ClockTick, Epoch: cs.Epoch()}
	cs.Halt()
	cs.Start()
	defer cs.Halt()

	if cs.Dispatch(stale) {
		t.Error("Expected event from a superseded arming to be dropped")
	}
	if h.ticks != 0 {
		t.Errorf("Expected no tick handled, got %d", h.ticks)
	}

	if !cs.Dispatch(ClockEvent{Kind: ClockHousekeeping, Epoch: cs.Epoch()}) {
		t.Error("Expected current event to dispatch")
	}
}

func TestClockSchedulerDropsWhenHalted(t *testing.T) {
	h := &fakeClockHandler{level: 1}
	cs := NewClockScheduler(h, time.Hour, time.Hour, 16, zerolog.Nop())

	if cs.Dispatch(ClockEvent{Kind: ClockTick, Epoch: cs.Epoch()}) {
		t.Error("Expected dispatch to fail on a stopped scheduler")
	}
}

func TestClockSchedulerHaltsOnGameOver(t *testing.T) {
	h := &fakeClockHandler{level: 1}
	cs := NewClockScheduler(h, time.Hour, time.Hour, 16, zerolog.Nop())
	cs.Start()
	defer cs.Halt()

	h.over = true
	cs.Dispatch(ClockEvent{Kind: ClockTick, Epoch: cs.Epoch()})

	if cs.Running() {
		t.Error("Expected scheduler halted once the game is over")
	}

	// Restart resumes timers under a new epoch
	h.over = false
	prev := cs.Epoch()
	cs.Sync()
	if !cs.Running() {
		t.Fatal("Expected Sync to restart a live session")
	}
	if cs.Epoch() <= prev {
		t.Errorf("Expected epoch to advance past %d, got %d", prev, cs.Epoch())
	}
}

func TestClockSchedulerSpawnRearms(t *testing.T) {
	// Interval floor keeps the test short
	h := &fakeClockHandler{level: 50}
	cs := NewClockScheduler(h, time.Hour, time.Hour, 16, zerolog.Nop())
	cs.Start()
	defer cs.Halt()

	for i := 1; i <= 2; i++ {
		ev := waitForEvent(t, cs, ClockSpawn, 2*time.Second)
		if !cs.Dispatch(ev) {
			t.Fatalf("Expected spawn %d to dispatch", i)
		}
		if h.spawns != i {
			t.Errorf("Expected %d spawns, got %d", i, h.spawns)
		}
	}
}

func TestClockSchedulerHousekeeping(t *testing.T) {
	h := &fakeClockHandler{level: 1}
	cs := NewClockScheduler(h, time.Hour, 20*time.Millisecond, 16, zerolog.Nop())
	cs.Start()
	defer cs.Halt()

	ev := waitForEvent(t, cs, ClockHousekeeping, 2*time.Second)
	if !cs.Dispatch(ev) {
		t.Fatal("Expected housekeeping to dispatch")
	}
	if h.housekeeping != 1 {
		t.Errorf("Expected 1 housekeeping run, got %d", h.housekeeping)
	}
}

func TestClockEventKindString(t *testing.T) {
	if ClockSpawn.String() != "spawn" || ClockEventKind(99).String() != "unknown" {
		t.Errorf("Unexpected names: %s %s", ClockSpawn, ClockEventKind(99))
	}
}
