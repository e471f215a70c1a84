package engine

import (
	"time"

	"github.com/lixenwraith/cyber-invaders/constants"
)

// Difficulty parameters are pure functions of level, recomputed at every decision

// SpawnInterval returns the spawn cadence for a level, floored at SpawnMinInterval
func SpawnInterval(level int) time.Duration {
	interval := constants.SpawnBaseInterval - time.Duration(level)*constants.SpawnIntervalStep
	if interval < constants.SpawnMinInterval {
		return constants.SpawnMinInterval
	}
	return interval
}

// MaxWords returns the concurrency cap of live words for a level
func MaxWords(level int) int {
	return constants.BaseMaxWords + level/constants.MaxWordsLevelDivisor
}

// WordSpeed returns the fall speed for a level given jitter in [0, 1)
func WordSpeed(level int, jitter float64) float64 {
	if jitter < 0 {
		jitter = 0
	}
	if jitter > 1 {
		jitter = 1
	}
	return constants.WordSpeedBase + float64(level)*constants.WordSpeedPerLevel + jitter*constants.WordSpeedJitter
}

// NextWordsNeeded returns the quota of the level following one with quota needed
func NextWordsNeeded(needed int) int {
	return needed + constants.WordsNeededIncrease
}

// ScoreFor returns the points awarded for completing text
func ScoreFor(text string) int {
	return len(text) * constants.PointsPerChar
}
