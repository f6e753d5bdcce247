package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// LoadFEN replaces the board state with the given position. The half-move
// and full-move fields may be omitted. On error the board is left untouched.
func (b *Board) LoadFEN(fen string) error {
	var nb Board
	if err := unmarshalFEN(fen, &nb); err != nil {
		return err
	}
	nb.hash = CalculateZobristKey(&nb)
	nb.history = append(make([]uint64, 0, 64), nb.hash)
	*b = nb
	return nil
}

func unmarshalFEN(fen string, b *Board) error {
	segments := strings.Fields(fen)
	if len(segments) < 4 || len(segments) > 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != position.MaxComponentScalar {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [2 + 1]int
	for row, rank := range rows {
		col := 0
		for _, sym := range rank {
			if sym >= '1' && sym <= '8' {
				col += int(sym - '0')
				if col > position.MaxComponentScalar {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				continue
			}
			s, p := pieceFromSymbol(sym)
			if p == PieceUnknown {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			if col >= position.MaxComponentScalar {
				return fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			b.place(s, p, position.NewPos(row, col))
			if p == PieceKing {
				kings[s]++
			}
			col++
		}
		if col != position.MaxComponentScalar {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	if kings[SideWhite] != 1 || kings[SideBlack] != 1 {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	castleRights, err := ParseCastleRights(segments[2])
	if err != nil {
		return err
	}
	b.castleRights = castleRights

	b.enPassant = NoEnPassant
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Row() != enPassantRow(b.turn) {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		b.enPassant = GetEpIndex(segments[3][0])
	}

	b.halfMoveClock, b.fullMoveClock = 0, 1
	if len(segments) > 4 {
		halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
		if err != nil {
			return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
		b.halfMoveClock = uint16(halfMoveClock)
	}
	if len(segments) > 5 {
		fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
		if err != nil {
			return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
		b.fullMoveClock = uint16(fullMoveClock)
	}

	return nil
}

// enPassantRow is the row of the en passant target square when s is to move.
func enPassantRow(s Side) int {
	if s == SideWhite {
		return 2
	}
	return 5
}

// FEN serializes the board into the six-field form.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for row := 0; row < position.MaxComponentScalar; row++ {
		skip := 0
		for col := 0; col < position.MaxComponentScalar; col++ {
			c := b.cells[position.NewPos(row, col)]
			if c == 0 {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(c.Piece().SymbolFEN(c.Side()))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if row < position.MaxComponentScalar-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if b.enPassant == NoEnPassant {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(position.NewPos(enPassantRow(b.turn), b.enPassant).Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}
