package board

// UndoState holds what ApplyMove cannot recover from the move itself.
type UndoState struct {
	captured      Piece
	castleRights  CastleRights
	enPassant     int
	halfMoveClock uint16
	fullMoveClock uint16
	hash          uint64
}

// ApplyMove plays a pseudo-legal move for the side to move, updating the
// hash incrementally. The returned state must be handed back to
// UndoApplyMove together with the same move.
func (b *Board) ApplyMove(mv Move) UndoState {
	st := UndoState{
		captured:      mv.Captured,
		castleRights:  b.castleRights,
		enPassant:     b.enPassant,
		halfMoveClock: b.halfMoveClock,
		fullMoveClock: b.fullMoveClock,
		hash:          b.hash,
	}
	us, them := b.turn, b.turn.Opposite()

	if b.enPassant != NoEnPassant {
		b.hash ^= zobristConstantEnPassant[b.enPassant]
		b.enPassant = NoEnPassant
	}

	if mv.IsCastle() {
		_, rookTo := castleTargets(us, mv.IsKingsideCastle())
		b.lift(mv.From)
		b.lift(mv.RookFrom)
		b.place(us, PieceKing, mv.To)
		b.place(us, PieceRook, rookTo)
		b.hash ^= zobristConstantPiece[us][PieceKing][mv.From] ^ zobristConstantPiece[us][PieceKing][mv.To]
		b.hash ^= zobristConstantPiece[us][PieceRook][mv.RookFrom] ^ zobristConstantPiece[us][PieceRook][rookTo]
	} else {
		if mv.IsCapture() {
			capPos := mv.To
			if mv.IsEnPassant() {
				capPos = mv.To - us.forward()
			}
			b.lift(capPos)
			b.hash ^= zobristConstantPiece[them][mv.Captured][capPos]
		}
		p := mv.Piece
		if mv.IsPromotion() {
			p = mv.IsPromote
		}
		b.lift(mv.From)
		b.place(us, p, mv.To)
		b.hash ^= zobristConstantPiece[us][mv.Piece][mv.From] ^ zobristConstantPiece[us][p][mv.To]
	}

	rights := b.castleRights
	switch {
	case mv.Piece == PieceKing:
		rights.ClearSide(us)
	case mv.Piece == PieceRook && mv.From.Row() == us.backRow():
		rights.Set(us, mv.From.Col(), false)
	}
	if mv.Captured == PieceRook && mv.To.Row() == them.backRow() {
		rights.Set(them, mv.To.Col(), false)
	}
	if rights != b.castleRights {
		b.hash ^= castleRightsHash(b.castleRights ^ rights)
		b.castleRights = rights
	}

	if mv.Piece == PiecePawn && abs(mv.To-mv.From) == 2*abs(us.forward()) {
		b.enPassant = mv.From.Col()
		b.hash ^= zobristConstantEnPassant[b.enPassant]
	}

	if mv.Piece == PiecePawn || mv.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if us == SideBlack {
		b.fullMoveClock++
	}

	b.turn = them
	b.hash ^= zobristConstantSideBlack
	b.history = append(b.history, b.hash)
	return st
}

// UndoApplyMove reverts the most recent ApplyMove. Calls must be strictly
// LIFO with matching move and state.
func (b *Board) UndoApplyMove(mv Move, st UndoState) {
	us := mv.IsTurn
	if us == SideUnknown {
		us = b.turn.Opposite()
	}

	if mv.IsCastle() {
		_, rookTo := castleTargets(us, mv.IsKingsideCastle())
		b.lift(mv.To)
		b.lift(rookTo)
		b.place(us, PieceKing, mv.From)
		b.place(us, PieceRook, mv.RookFrom)
	} else {
		b.lift(mv.To)
		b.place(us, mv.Piece, mv.From)
		if mv.IsCapture() {
			capPos := mv.To
			if mv.IsEnPassant() {
				capPos = mv.To - us.forward()
			}
			b.place(us.Opposite(), st.captured, capPos)
		}
	}

	b.turn = us
	b.castleRights = st.castleRights
	b.enPassant = st.enPassant
	b.halfMoveClock = st.halfMoveClock
	b.fullMoveClock = st.fullMoveClock
	b.hash = st.hash
	b.history = b.history[:len(b.history)-1]
}

// Captured is the piece removed by the move, PieceUnknown if none.
func (st UndoState) Captured() Piece {
	return st.captured
}
