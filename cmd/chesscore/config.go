package main

import (
	"os"
	"runtime"
	"strconv"

	// loads .env into the process environment before flags read it
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/daystram/chesscore/board"
)

const (
	envFEN      = "CHESSCORE_FEN"
	envHashMB   = "CHESSCORE_HASH_MB"
	envLogLevel = "CHESSCORE_LOG_LEVEL"
	envParallel = "CHESSCORE_PARALLEL"
)

type config struct {
	FEN      string
	HashMB   uint64
	LogLevel zerolog.Level
	Parallel int
}

// configFromEnv reads defaults from the environment. Unset or malformed
// values fall back to built-in defaults.
func configFromEnv(getenv func(string) string) config {
	cfg := config{
		FEN:      board.DefaultStartingPositionFEN,
		HashMB:   64,
		LogLevel: zerolog.InfoLevel,
		Parallel: runtime.NumCPU(),
	}
	if v := getenv(envFEN); v != "" {
		cfg.FEN = v
	}
	if v, err := strconv.ParseUint(getenv(envHashMB), 10, 64); err == nil && v > 0 {
		cfg.HashMB = v
	}
	if v, err := zerolog.ParseLevel(getenv(envLogLevel)); err == nil && v != zerolog.NoLevel {
		cfg.LogLevel = v
	}
	if v, err := strconv.Atoi(getenv(envParallel)); err == nil && v > 0 {
		cfg.Parallel = v
	}
	return cfg
}

var envConfig = configFromEnv(os.Getenv)
