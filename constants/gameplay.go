// @focus: #constants { gameplay }
package constants

import "time"

// Play-field geometry in logical units; the renderer scales to terminal cells
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0

	// FieldBottom is the loss boundary, a word whose y exceeds it ends the game
	FieldBottom = 520.0

	// SpawnMinX and SpawnRangeX bound the horizontal spawn position [20, 570)
	SpawnMinX   = 20.0
	SpawnRangeX = 550.0
)

// Spawn Cadence
const (
	// SpawnBaseInterval is the level-0 spawn interval before the per-level reduction
	SpawnBaseInterval = 1500 * time.Millisecond

	// SpawnIntervalStep is subtracted once per level
	SpawnIntervalStep = 100 * time.Millisecond

	// SpawnMinInterval is the spawn interval floor
	SpawnMinInterval = 300 * time.Millisecond
)

// Concurrency Cap
const (
	BaseMaxWords = 3
	// MaxWordsLevelDivisor adds one concurrent word per this many levels
	MaxWordsLevelDivisor = 2
)

// Word Speed (logical units per animation tick)
const (
	WordSpeedBase     = 0.5
	WordSpeedPerLevel = 0.2
	WordSpeedJitter   = 0.4
)

// Initial Batch Placement
const (
	// InitialMinSeparation is the minimum pairwise horizontal distance of the initial batch
	InitialMinSeparation = 120.0

	// InitialPlacementAttempts is the reject-and-retry budget per word before accepting a crowded spot
	InitialPlacementAttempts = 12

	// InitialRowOffset and InitialOffsetJitter pre-seed negative y so the batch falls into place
	InitialRowOffset    = 70.0
	InitialOffsetJitter = 40.0
)

// Progression
const (
	StartLevel          = 1
	InitialWordsNeeded  = 10
	WordsNeededIncrease = 5

	// PointsPerChar is the score per character of a completed word
	PointsPerChar = 10
)

// Transient Visual Events
const (
	// ExplosionTTL is how long an explosion stays in the visual event log
	ExplosionTTL = 500 * time.Millisecond

	// LevelUpDisplayDuration is how long the level complete banner is shown
	LevelUpDisplayDuration = 2 * time.Second
)
