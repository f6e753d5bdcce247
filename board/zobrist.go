package board

import (
	"math/bits"

	"github.com/daystram/chesscore/position"
)

// CalculateZobristKey recomputes the position hash from scratch over piece
// placement, side to move, castling rights and en passant file. Board keeps
// its hash incrementally; this is the oracle it is checked against.
func CalculateZobristKey(b *Board) uint64 {
	var hash uint64
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !pos.IsValid() {
			pos += 7
			continue
		}
		c := b.cells[pos]
		if c == 0 {
			continue
		}
		hash ^= zobristConstantPiece[c.Side()][c.Piece()][pos]
	}
	if b.turn == SideBlack {
		hash ^= zobristConstantSideBlack
	}
	hash ^= castleRightsHash(b.castleRights)
	if b.enPassant != NoEnPassant {
		hash ^= zobristConstantEnPassant[b.enPassant]
	}
	return hash
}

// CalculatePawnKey hashes the pawn placement only.
func CalculatePawnKey(b *Board) uint64 {
	var hash uint64
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if !pos.IsValid() {
			pos += 7
			continue
		}
		if c := b.cells[pos]; c.Piece() == PiecePawn {
			hash ^= zobristConstantPiece[c.Side()][PiecePawn][pos]
		}
	}
	return hash
}

// GetEpIndex maps a file letter 'a'..'h' to 0..7. Anything else, '-'
// included, yields NoEnPassant.
func GetEpIndex(file byte) int {
	if file < 'a' || file > 'h' {
		return NoEnPassant
	}
	return int(file - 'a')
}

// castleRightsHash folds one key per right in the set. XOR is linear, so the
// hash of old^new is the delta to apply when rights change.
func castleRightsHash(c CastleRights) uint64 {
	var hash uint64
	for rem := uint16(c); rem != 0; rem &= rem - 1 {
		hash ^= zobristConstantCastleRights[bits.TrailingZeros16(rem)]
	}
	return hash
}
