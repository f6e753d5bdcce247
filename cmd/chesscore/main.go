package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	fen      = flag.String("fen", envConfig.FEN, "position to load, env "+envFEN)
	hashMB   = flag.Uint64("hash", envConfig.HashMB, "hash table size in MB, env "+envHashMB)
	parallel = flag.Int("parallel", envConfig.Parallel, "perft worker count, env "+envParallel)
	logLevel = flag.String("log", envConfig.LogLevel.String(), "log level, env "+envLogLevel)

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftDepth = flag.Int("perft", 0, "run perft mode to the given depth")
	perftStats = flag.Bool("perft.stats", false, "classify leaf nodes in perft mode")
)

func main() {
	flag.Parse()

	log := newLogger(*logLevel)
	if *profile {
		runProfiler(log)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := realMain(ctx, log, flag.Args()); err != nil {
		log.Error().Err(err).Msg("exited with error")
		cancel()
		os.Exit(exitErr)
	}
	cancel()
	os.Exit(exitOK)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func runProfiler(log zerolog.Logger) {
	go func() {
		addr := "localhost:6060"
		log.Info().Str("addr", "http://"+addr+"/debug/pprof").Msg("starting pprof endpoint")
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error().Err(err).Msg("pprof endpoint stopped")
		}
	}()
}

func realMain(ctx context.Context, log zerolog.Logger, args []string) error {
	position := *fen
	if len(args) > 0 {
		position = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(log, position)
	}
	if *perftDepth > 0 {
		return perft(ctx, log, position, *perftDepth, *perftStats)
	}
	return runUCI(ctx, log, position)
}
