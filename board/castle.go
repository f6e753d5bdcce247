package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
)

const (
	fileKingside  = 7
	fileQueenside = 0

	fileKingTargetKingside  = 6
	fileKingTargetQueenside = 2
	fileRookTargetKingside  = 5
	fileRookTargetQueenside = 3
)

// CastleRights is the set of (side, rook origin file) pairs that may still
// castle. White owns bits 0-7 and Black bits 8-15, one bit per file. Classic
// KQkq rights are the h- and a-file members of the set.
type CastleRights uint16

func castleBit(s Side, file int) CastleRights {
	if s == SideBlack {
		return 1 << (8 + file)
	}
	return 1 << file
}

func sideMask(s Side) CastleRights {
	if s == SideBlack {
		return 0xFF00
	}
	return 0x00FF
}

func (c *CastleRights) Set(s Side, file int, allow bool) {
	if allow {
		*c |= castleBit(s, file)
	} else {
		*c &^= castleBit(s, file)
	}
}

func (c CastleRights) IsAllowed(s Side, file int) bool {
	return c&castleBit(s, file) != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	return c&sideMask(s) != 0
}

func (c *CastleRights) ClearSide(s Side) {
	*c &^= sideMask(s)
}

// String renders the rights as a FEN castling field. A side whose rights
// all sit on the a/h files uses KQkq letters, otherwise rook file letters.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	for _, s := range []Side{SideWhite, SideBlack} {
		if !c.IsSideAllowed(s) {
			continue
		}
		classic := c&sideMask(s)&^(castleBit(s, fileKingside)|castleBit(s, fileQueenside)) == 0
		for file := position.MaxComponentScalar - 1; file >= 0; file-- {
			if !c.IsAllowed(s, file) {
				continue
			}
			var sym string
			switch {
			case classic && file == fileKingside:
				sym = PieceKing.SymbolFEN(s)
			case classic && file == fileQueenside:
				sym = PieceQueen.SymbolFEN(s)
			default:
				sym = strings.ToUpper(position.NotationComponentX(file))
				if s == SideBlack {
					sym = position.NotationComponentX(file)
				}
			}
			_, _ = builder.WriteString(sym)
		}
	}
	return builder.String()
}

// ParseCastleRights reads a FEN castling field in KQkq or Shredder form.
func ParseCastleRights(field string) (CastleRights, error) {
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	if field == "" || len(field) > 16 {
		return 0, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for _, e := range field {
		switch {
		case e == 'K':
			c.Set(SideWhite, fileKingside, true)
		case e == 'Q':
			c.Set(SideWhite, fileQueenside, true)
		case e == 'k':
			c.Set(SideBlack, fileKingside, true)
		case e == 'q':
			c.Set(SideBlack, fileQueenside, true)
		case e >= 'A' && e <= 'H':
			c.Set(SideWhite, int(e-'A'), true)
		case e >= 'a' && e <= 'h':
			c.Set(SideBlack, int(e-'a'), true)
		default:
			return 0, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}
	return c, nil
}

// castleTargets returns the king and rook destinations. They are the classic
// g/f and c/d files regardless of where king and rook started.
func castleTargets(s Side, kingside bool) (position.Pos, position.Pos) {
	row := s.backRow()
	if kingside {
		return position.NewPos(row, fileKingTargetKingside), position.NewPos(row, fileRookTargetKingside)
	}
	return position.NewPos(row, fileKingTargetQueenside), position.NewPos(row, fileRookTargetQueenside)
}
