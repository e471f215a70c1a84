package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the animation tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// HousekeepingInterval is the interval of the transient event pruning job
	HousekeepingInterval = 100 * time.Millisecond

	// ClockEventBuffer is the capacity of the scheduler event channel
	ClockEventBuffer = 64
)

// Logging
const (
	LogDirName  = "logs"
	LogFileName = "cyber-invaders.log"
)
