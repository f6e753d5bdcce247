package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/daystram/chesscore/uci"
)

func runUCI(ctx context.Context, log zerolog.Logger, fen string) error {
	i := uci.NewInterface(
		uci.WithLogger(log.With().Str("component", "uci").Logger()),
		uci.WithFEN(fen),
		uci.WithHashSize(*hashMB),
		uci.WithParallel(*parallel),
	)
	return i.Run(ctx)
}
