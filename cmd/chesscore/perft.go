package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
)

func perft(ctx context.Context, log zerolog.Logger, fen string, depth int, stats bool) error {
	log.Info().Int("depth", depth).Str("fen", fen).Int("workers", *parallel).Msg("perft")

	if stats {
		b, err := board.NewBoard(board.WithFEN(fen))
		if err != nil {
			return err
		}
		start := time.Now()
		s := bench.PerftStats(b, depth)
		log.Info().Msg(message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, s.Nodes, s.Captures, s.EnPassants, s.Castles, s.Promotions, s.Checks, time.Since(start).Seconds()))
		return nil
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Info().Msg(s)
		}
	}()
	err := bench.Run(ctx, depth, fen, *parallel, true, *hashMB<<20, out)
	close(out)
	<-done
	return err
}
