package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// ClockEventKind identifies which periodic process fired
type ClockEventKind int

const (
	ClockTick ClockEventKind = iota
	ClockSpawn
	ClockHousekeeping
)

func (k ClockEventKind) String() string {
	switch k {
	case ClockTick:
		return "tick"
	case ClockSpawn:
		return "spawn"
	case ClockHousekeeping:
		return "housekeeping"
	default:
		return "unknown"
	}
}

// ClockEvent is posted by a timer goroutine and consumed by the main loop
// Epoch ties the event to the arming that produced it
type ClockEvent struct {
	Kind  ClockEventKind
	Epoch uint64
}

// ClockHandler receives dispatched clock events on the main loop goroutine
type ClockHandler interface {
	OnTick()
	OnSpawnTimer()
	OnHousekeeping()
	Level() int
	IsGameOver() bool
}

// ClockScheduler owns the periodic processes of a session
// Timers never touch game state: they post ClockEvents, and the single consumer
// calls Dispatch, which runs the handler to completion
// Halt stops every timer and bumps the epoch so events already queued by a
// superseded arming are discarded
type ClockScheduler struct {
	handler ClockHandler
	log     zerolog.Logger

	tickInterval         time.Duration
	housekeepingInterval time.Duration

	events chan ClockEvent

	// Main-loop exclusive
	epoch      uint64
	stopChan   chan struct{}
	spawnTimer *time.Timer
	cron       *gocron.Scheduler
	wg         sync.WaitGroup

	running   atomic.Bool
	tickCount atomic.Uint64
}

// NewClockScheduler creates a stopped scheduler; call Start to arm timers
func NewClockScheduler(handler ClockHandler, tickInterval, housekeepingInterval time.Duration, buffer int, logger zerolog.Logger) *ClockScheduler {
	return &ClockScheduler{
		handler:              handler,
		log:                  logger,
		tickInterval:         tickInterval,
		housekeepingInterval: housekeepingInterval,
		events:               make(chan ClockEvent, buffer),
	}
}

// Events returns the channel the main loop must drain
func (cs *ClockScheduler) Events() <-chan ClockEvent {
	return cs.events
}

// Running reports whether timers are armed
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}

// Epoch returns the current arming generation
func (cs *ClockScheduler) Epoch() uint64 {
	return cs.epoch
}

// TickCount returns the number of dispatched animation ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start arms the animation ticker, spawn timer and housekeeping job under a new epoch
// No-op if already running
func (cs *ClockScheduler) Start() {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}

	cs.epoch++
	epoch := cs.epoch
	stop := make(chan struct{})
	cs.stopChan = stop

	// Animation tick
	cs.wg.Add(1)
	go cs.tickLoop(epoch, stop)

	// Spawn timer, re-armed by Dispatch with the interval of the current level
	cs.armSpawn(epoch, stop)

	// Housekeeping job
	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()
	if _, err := cron.Every(cs.housekeepingInterval).Do(func() {
		cs.post(ClockEvent{Kind: ClockHousekeeping, Epoch: epoch}, stop)
	}); err != nil {
		cs.log.Error().Err(err).Msg("failed to schedule housekeeping job")
	} else {
		cron.StartAsync()
	}
	cs.cron = cron

	cs.log.Debug().Uint64("epoch", epoch).Msg("clock scheduler started")
}

// Halt stops every periodic process and invalidates queued events
// Safe to call when already halted
func (cs *ClockScheduler) Halt() {
	if !cs.running.CompareAndSwap(true, false) {
		return
	}

	// Unblock any poster waiting on the channel before waiting for goroutines
	close(cs.stopChan)

	if cs.spawnTimer != nil {
		cs.spawnTimer.Stop()
		cs.spawnTimer = nil
	}
	if cs.cron != nil {
		cs.cron.Stop()
		cs.cron = nil
	}
	cs.wg.Wait()

	cs.epoch++
	cs.log.Debug().Uint64("epoch", cs.epoch).Msg("clock scheduler halted")
}

// Dispatch runs the handler for ev if it belongs to the current arming
// Returns false for stale events; halts the scheduler once the game is over
func (cs *ClockScheduler) Dispatch(ev ClockEvent) bool {
	if !cs.running.Load() || ev.Epoch != cs.epoch {
		return false
	}

	switch ev.Kind {
	case ClockTick:
		cs.tickCount.Add(1)
		cs.handler.OnTick()
	case ClockSpawn:
		cs.handler.OnSpawnTimer()
		if cs.running.Load() && !cs.handler.IsGameOver() {
			cs.armSpawn(cs.epoch, cs.stopChan)
		}
	case ClockHousekeeping:
		cs.handler.OnHousekeeping()
	default:
		return false
	}

	cs.Sync()
	return true
}

// Sync aligns timers with the handler: halts on game over, starts a live session
func (cs *ClockScheduler) Sync() {
	over := cs.handler.IsGameOver()
	switch {
	case over && cs.running.Load():
		cs.Halt()
	case !over && !cs.running.Load():
		cs.Start()
	}
}

// armSpawn schedules the next spawn event using the current level's interval
func (cs *ClockScheduler) armSpawn(epoch uint64, stop chan struct{}) {
	interval := SpawnInterval(cs.handler.Level())
	cs.spawnTimer = time.AfterFunc(interval, func() {
		cs.post(ClockEvent{Kind: ClockSpawn, Epoch: epoch}, stop)
	})
}

// tickLoop forwards animation ticks until stop is closed
func (cs *ClockScheduler) tickLoop(epoch uint64, stop chan struct{}) {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cs.post(ClockEvent{Kind: ClockTick, Epoch: epoch}, stop)
		}
	}
}

// post delivers ev unless the arming was stopped
func (cs *ClockScheduler) post(ev ClockEvent, stop chan struct{}) {
	select {
	case cs.events <- ev:
	case <-stop:
	}
}
