package board

import "github.com/daystram/chesscore/position"

type MoveFlag uint8

const FlagQuiet MoveFlag = 0

const (
	FlagCapture MoveFlag = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	// FlagCastle960 accompanies a castle flag when king or rook did not start
	// on the classic e/a/h files; the rook then relocates from RookFrom.
	FlagCastle960
	FlagPromotion
)

type Move struct {
	From, To position.Pos
	Piece    Piece
	IsTurn   Side

	Captured  Piece
	IsPromote Piece
	Flags     MoveFlag

	// RookFrom is the castling rook's origin, set on castle moves only.
	RookFrom position.Pos
}

func (m Move) String() string {
	return m.UCI()
}

// UCI renders the move in long algebraic form, e.g. "e2e4" or "b7a8q".
func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}

func (m Move) IsCapture() bool {
	return m.Flags&FlagCapture != 0
}

func (m Move) IsEnPassant() bool {
	return m.Flags&FlagEnPassant != 0
}

func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

func (m Move) IsKingsideCastle() bool {
	return m.Flags&FlagCastleKingside != 0
}

func (m Move) IsPromotion() bool {
	return m.Flags&FlagPromotion != 0
}
