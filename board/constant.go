package board

import (
	"github.com/daystram/chesscore/position"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// NoEnPassant marks the absence of an en passant file.
	NoEnPassant = -1

	zobristSeed = 0x9E3779B97F4A7C15
)

var (
	offsetsKnight = [8]position.Pos{-33, -31, -18, -14, 14, 18, 31, 33}
	offsetsKing   = [8]position.Pos{-17, -16, -15, -1, 1, 15, 16, 17}
	offsetsBishop = [4]position.Pos{-17, -15, 15, 17}
	offsetsRook   = [4]position.Pos{-16, -1, 1, 16}

	zobristConstantPiece        [2 + 1][6 + 1][position.TotalCells]uint64
	zobristConstantEnPassant    [position.MaxComponentScalar]uint64
	zobristConstantCastleRights [2 * position.MaxComponentScalar]uint64
	zobristConstantSideBlack    uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	r := NewPseudoRand()
	r.Seed(zobristSeed)
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, p := range []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing} {
			for pos := position.Pos(0); pos < position.TotalCells; pos++ {
				zobristConstantPiece[s][p][pos] = r.Uint64()
			}
		}
	}
	for file := range zobristConstantEnPassant {
		zobristConstantEnPassant[file] = r.Uint64()
	}
	for i := range zobristConstantCastleRights {
		zobristConstantCastleRights[i] = r.Uint64()
	}
	zobristConstantSideBlack = r.Uint64()
}
