package board

import (
	"github.com/daystram/chesscore/position"
)

const maxMoves = 256

// GenerateMoves returns the legal moves of the side to move. Pseudo-legal
// candidates are applied and undone; those leaving the mover's king attacked
// are dropped.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	mvs := pseudo[:0]
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// IsLegal reports whether a pseudo-legal move keeps the mover's king safe.
func (b *Board) IsLegal(mv Move) bool {
	s := b.turn
	st := b.ApplyMove(mv)
	legal := !b.isKingChecked(s)
	b.UndoApplyMove(mv, st)
	return legal
}

// GeneratePseudoLegalMoves enumerates moves without the own-king safety
// filter. Castling is fully checked here since it depends on attacks.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	mvs := make([]Move, 0, maxMoves)
	s := b.turn
	for from := position.Pos(0); from < position.TotalCells; from++ {
		if !from.IsValid() {
			from += 7
			continue
		}
		c := b.cells[from]
		if c == 0 || c.Side() != s {
			continue
		}
		switch p := c.Piece(); p {
		case PiecePawn:
			mvs = b.genPawnMoves(mvs, from)
		case PieceKnight:
			mvs = b.genStepMoves(mvs, from, p, offsetsKnight[:])
		case PieceKing:
			mvs = b.genStepMoves(mvs, from, p, offsetsKing[:])
			mvs = b.genCastlingMoves(mvs, from)
		case PieceBishop:
			mvs = b.genSlidingMoves(mvs, from, p, offsetsBishop[:])
		case PieceRook:
			mvs = b.genSlidingMoves(mvs, from, p, offsetsRook[:])
		case PieceQueen:
			mvs = b.genSlidingMoves(mvs, from, p, offsetsBishop[:])
			mvs = b.genSlidingMoves(mvs, from, p, offsetsRook[:])
		}
	}
	return mvs
}

// addMove appends a move to an empty or enemy-held square and reports
// whether the target was empty, letting sliders continue their ray.
func (b *Board) addMove(mvs []Move, from, to position.Pos, p Piece) ([]Move, bool) {
	c := b.cells[to]
	if c == 0 {
		return append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn}), true
	}
	if c.Side() != b.turn {
		mvs = append(mvs, Move{
			From:     from,
			To:       to,
			Piece:    p,
			IsTurn:   b.turn,
			Captured: c.Piece(),
			Flags:    FlagCapture,
		})
	}
	return mvs, false
}

func (b *Board) genStepMoves(mvs []Move, from position.Pos, p Piece, deltas []position.Pos) []Move {
	for _, d := range deltas {
		if to := from + d; to.IsValid() {
			mvs, _ = b.addMove(mvs, from, to, p)
		}
	}
	return mvs
}

func (b *Board) genSlidingMoves(mvs []Move, from position.Pos, p Piece, deltas []position.Pos) []Move {
	for _, d := range deltas {
		for to := from + d; to.IsValid(); to += d {
			var empty bool
			if mvs, empty = b.addMove(mvs, from, to, p); !empty {
				break
			}
		}
	}
	return mvs
}

func (b *Board) genPawnMoves(mvs []Move, from position.Pos) []Move {
	s := b.turn
	fwd := s.forward()
	addPawnMove := func(to position.Pos, captured Piece, flags MoveFlag) {
		mv := Move{From: from, To: to, Piece: PiecePawn, IsTurn: s, Captured: captured, Flags: flags}
		if to.Row() != s.promoteRow() {
			mvs = append(mvs, mv)
			return
		}
		mv.Flags |= FlagPromotion
		for _, prom := range PawnPromoteCandidates {
			mv.IsPromote = prom
			mvs = append(mvs, mv)
		}
	}

	if one := from + fwd; one.IsValid() && b.isEmpty(one) {
		addPawnMove(one, PieceUnknown, FlagQuiet)
		if two := one + fwd; from.Row() == s.pawnStartRow() && b.isEmpty(two) {
			addPawnMove(two, PieceUnknown, FlagQuiet)
		}
	}

	for _, d := range [2]position.Pos{-1, 1} {
		to := from + fwd + d
		if !to.IsValid() {
			continue
		}
		if c := b.cells[to]; c != 0 {
			if c.Side() != s {
				addPawnMove(to, c.Piece(), FlagCapture)
			}
			continue
		}
		if b.enPassant != NoEnPassant && to == position.NewPos(enPassantRow(s), b.enPassant) &&
			b.cells[to-fwd] == newCell(s.Opposite(), PiecePawn) {
			addPawnMove(to, PiecePawn, FlagCapture|FlagEnPassant)
		}
	}
	return mvs
}

// genCastlingMoves emits one castle per recorded (side, rook file) right.
// Classic and Chess960 share this path: the squares spanned by king and rook
// travel must be empty apart from the two pieces, and the king may not start
// in, pass through, or land on an attacked square.
func (b *Board) genCastlingMoves(mvs []Move, from position.Pos) []Move {
	s := b.turn
	row := s.backRow()
	if !b.castleRights.IsSideAllowed(s) || from.Row() != row {
		return mvs
	}
	them := s.Opposite()
	if b.IsSquareAttacked(from, them) {
		return mvs
	}

	kingFile := from.Col()
	for file := 0; file < position.MaxComponentScalar; file++ {
		if file == kingFile || !b.castleRights.IsAllowed(s, file) {
			continue
		}
		rookFrom := position.NewPos(row, file)
		if b.cells[rookFrom] != newCell(s, PieceRook) {
			continue
		}
		kingside := file > kingFile
		kingTo, rookTo := castleTargets(s, kingside)

		lo := min(kingFile, file, kingTo.Col(), rookTo.Col())
		hi := max(kingFile, file, kingTo.Col(), rookTo.Col())
		clear := true
		for col := lo; col <= hi && clear; col++ {
			pos := position.NewPos(row, col)
			clear = pos == from || pos == rookFrom || b.isEmpty(pos)
		}
		if !clear {
			continue
		}

		step := 1
		if kingTo.Col() < kingFile {
			step = -1
		}
		safe := true
		for col := kingFile; col != kingTo.Col() && safe; {
			col += step
			safe = !b.IsSquareAttacked(position.NewPos(row, col), them)
		}
		if !safe {
			continue
		}

		flags := FlagCastleQueenside
		if kingside {
			flags = FlagCastleKingside
		}
		if kingFile != 4 || (file != fileKingside && file != fileQueenside) {
			flags |= FlagCastle960
		}
		mvs = append(mvs, Move{
			From:     from,
			To:       kingTo,
			Piece:    PieceKing,
			IsTurn:   s,
			Flags:    flags,
			RookFrom: rookFrom,
		})
	}
	return mvs
}
