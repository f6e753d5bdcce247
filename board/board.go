package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
)

// Board is a 0x88 mailbox position. It is mutated only through paired
// ApplyMove/UndoApplyMove calls and is not safe for concurrent use.
type Board struct {
	cells [position.TotalCells]cell
	kings [2 + 1]position.Pos

	turn          Side
	castleRights  CastleRights
	enPassant     int
	halfMoveClock uint16
	fullMoveClock uint16
	hash          uint64

	// hashes of every position reached since load, current one last
	history []uint64
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := b.LoadFEN(cfg.fen); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// Hash is the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 {
	return b.hash
}

// PawnKey is the pawn-only Zobrist key of the current placement.
func (b *Board) PawnKey() uint64 {
	return CalculatePawnKey(b)
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassantFile is the file of the en passant target or NoEnPassant.
func (b *Board) EnPassantFile() int {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// At reports the occupant of a square. Empty or off-board squares yield
// SideUnknown and PieceUnknown.
func (b *Board) At(pos position.Pos) (Side, Piece) {
	if !pos.IsValid() {
		return SideUnknown, PieceUnknown
	}
	c := b.cells[pos]
	return c.Side(), c.Piece()
}

func (b *Board) KingPos(s Side) position.Pos {
	return b.kings[s]
}

func (b *Board) place(s Side, p Piece, pos position.Pos) {
	b.cells[pos] = newCell(s, p)
	if p == PieceKing {
		b.kings[s] = pos
	}
}

func (b *Board) lift(pos position.Pos) {
	b.cells[pos] = 0
}

func (b *Board) isEmpty(pos position.Pos) bool {
	return b.cells[pos] == 0
}

// IsInCheck reports whether the side to move has its king attacked.
func (b *Board) IsInCheck() bool {
	return b.isKingChecked(b.turn)
}

func (b *Board) isKingChecked(s Side) bool {
	return b.IsSquareAttacked(b.kings[s], s.Opposite())
}

// IsSquareAttacked probes pos with reverse rays: pawn, knight and king
// offsets, then orthogonal and diagonal sliders.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	if !pos.IsValid() {
		return false
	}

	// a pawn of side `by` attacks from one row behind its own forward step
	for _, d := range [2]position.Pos{-1, 1} {
		from := pos - by.forward() + d
		if from.IsValid() && b.cells[from] == newCell(by, PiecePawn) {
			return true
		}
	}
	for _, d := range offsetsKnight {
		from := pos + d
		if from.IsValid() && b.cells[from] == newCell(by, PieceKnight) {
			return true
		}
	}
	for _, d := range offsetsKing {
		from := pos + d
		if from.IsValid() && b.cells[from] == newCell(by, PieceKing) {
			return true
		}
	}
	if b.isRayAttacked(pos, by, offsetsRook[:], PieceRook) {
		return true
	}
	return b.isRayAttacked(pos, by, offsetsBishop[:], PieceBishop)
}

func (b *Board) isRayAttacked(pos position.Pos, by Side, deltas []position.Pos, slider Piece) bool {
	for _, d := range deltas {
		for to := pos + d; to.IsValid(); to += d {
			c := b.cells[to]
			if c == 0 {
				continue
			}
			if c.Side() == by && (c.Piece() == slider || c.Piece() == PieceQueen) {
				return true
			}
			break
		}
	}
	return false
}

// Clone returns an independent copy, e.g. one per worker goroutine.
func (b *Board) Clone() *Board {
	bb := *b
	bb.history = make([]uint64, len(b.history), cap(b.history))
	copy(bb.history, b.history)
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := 0; row < position.MaxComponentScalar; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", position.MaxComponentScalar-row))
		for col := 0; col < position.MaxComponentScalar; col++ {
			s, p := b.At(position.NewPos(row, col))
			sym := p.SymbolFEN(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 0; col < position.MaxComponentScalar; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentX(col)))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %s\nenps: %d\nhalf: %4d\nfull: %4d\nhash: %016x\nstat: %s",
		b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock, b.hash, b.State())
}
