package board

import "github.com/daystram/chesscore/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// forward is the 0x88 step of a single pawn push for the side.
func (s Side) forward() position.Pos {
	if s == SideWhite {
		return -16
	}
	return 16
}

// backRow is the row of the side's home rank.
func (s Side) backRow() int {
	if s == SideWhite {
		return 7
	}
	return 0
}

func (s Side) pawnStartRow() int {
	if s == SideWhite {
		return 6
	}
	return 1
}

func (s Side) promoteRow() int {
	if s == SideWhite {
		return 0
	}
	return 7
}
