package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8

	// TotalCells is the size of the flat 0x88 layout: 8 rows of 16 columns.
	TotalCells = 128

	// Invalid is returned by lookups that cannot resolve to a square.
	Invalid Pos = -1

	offBoardMask = 0x88
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in the 0x88 layout. Row 0 holds rank 8, so
// row = p>>4 and col = p&7, and p&0x88 != 0 marks an off-board index.
type Pos int

func NewPos(row, col int) Pos {
	return Pos(row<<4 | col)
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return Invalid, err
	}
	return NewPos(row, col), nil
}

// AlgebraicToIndex converts "a1".."h8" into a square. Malformed input yields
// Invalid instead of an error.
func AlgebraicToIndex(alg string) Pos {
	p, err := NewPosFromNotation(alg)
	if err != nil {
		return Invalid
	}
	return p
}

// ToRowCol splits a square into its row (0 = rank 8) and column (0 = file a).
func ToRowCol(p Pos) (int, int) {
	return p.Row(), p.Col()
}

func (p Pos) IsValid() bool {
	return p >= 0 && p&offBoardMask == 0
}

func (p Pos) Row() int {
	return int(p >> 4)
}

func (p Pos) Col() int {
	return int(p & 7)
}

// File is the 0-based file index, identical to Col.
func (p Pos) File() int {
	return p.Col()
}

// Rank is the 0-based rank index counted from White's side (rank 1 = 0).
func (p Pos) Rank() int {
	return MaxComponentScalar - 1 - p.Row()
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return NotationComponentX(p.Col()) + NotationComponentY(p.Rank())
}

func notationToRowCol(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	rank, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return MaxComponentScalar - 1 - rank, col, nil
}

func notationToX(x byte) (int, error) {
	if x < 'a' || x >= 'a'+MaxComponentScalar {
		return 0, ErrInvalidNotation
	}
	return int(x - 'a'), nil
}

func notationToY(y byte) (int, error) {
	if y < '1' || y >= '1'+MaxComponentScalar {
		return 0, ErrInvalidNotation
	}
	return int(y - '1'), nil
}

// NotationComponentX renders a 0-based file index as 'a'..'h'.
func NotationComponentX(x int) string {
	if x < 0 || MaxComponentScalar <= x {
		return ""
	}
	return string(rune('a' + x))
}

// NotationComponentY renders a 0-based rank index as '1'..'8'.
func NotationComponentY(y int) string {
	if y < 0 || MaxComponentScalar <= y {
		return ""
	}
	return string(rune('1' + y))
}
