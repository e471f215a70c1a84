package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/rs/zerolog"
)

// maxLogSize is the size after which the previous log is kept as .1
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns the process logger
// Stdout belongs to the terminal UI, so without debug everything is discarded
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(dir string, debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, logPath+".1")
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	// Libraries using the standard logger land in the same file
	log.SetOutput(logFile)

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(logFile).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "cyber-invaders").
		Logger()

	return logger, logFile
}
