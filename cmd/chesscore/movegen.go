package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/daystram/chesscore/board"
)

func movegen(log zerolog.Logger, fen string) error {
	log.Info().Str("fen", fen).Msg("movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	dumpMoves(b)
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.SAN(mvs), mv.IsTurn, mv.Piece, mv.From, mv.To,
			mv.IsCapture(), mv.IsEnPassant(), mv.IsCastle(), mv.IsPromote)
	}
}
