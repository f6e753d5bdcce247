package board

import (
	"strings"

	"github.com/daystram/chesscore/position"
)

// SAN renders the move in standard algebraic notation. mvs is the legal
// move list of the position the move belongs to and is used to pick the
// shortest origin disambiguator. Promotion pieces are not appended; UCI
// carries them.
func (m Move) SAN(mvs []Move) string {
	if m.IsCastle() {
		if m.IsKingsideCastle() {
			return "O-O"
		}
		return "O-O-O"
	}

	to := m.To.Notation()
	if m.Piece == PiecePawn {
		if m.IsCapture() {
			return position.NotationComponentX(m.From.File()) + "x" + to
		}
		return to
	}

	var collide, sameFile, sameRank bool
	for _, other := range mvs {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		collide = true
		sameFile = sameFile || other.From.Col() == m.From.Col()
		sameRank = sameRank || other.From.Row() == m.From.Row()
	}

	var origin string
	switch {
	case !collide:
	case !sameFile:
		origin = position.NotationComponentX(m.From.File())
	case !sameRank:
		origin = position.NotationComponentY(m.From.Rank())
	default:
		origin = m.From.Notation()
	}

	capture := ""
	if m.IsCapture() {
		capture = "x"
	}
	return m.Piece.SymbolAlgebra(SideWhite) + origin + capture + to
}

// FindMove resolves a SAN or long algebraic string against the legal moves
// of the current position. Check markers and "=Q" style promotion suffixes
// are accepted on SAN input; a bare SAN pawn push to the last rank picks the
// queen promotion.
func (b *Board) FindMove(s string) (Move, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "+#!?")
	if s == "" {
		return Move{}, false
	}
	mvs := b.GenerateMoves()

	san, promote := s, PieceQueen
	if i := strings.IndexByte(s, '='); i >= 0 && i == len(s)-2 {
		_, promote = pieceFromSymbol(rune(s[i+1]))
		san = s[:i]
	}
	san = strings.ReplaceAll(san, "0", "O")
	for _, mv := range mvs {
		if mv.SAN(mvs) != san {
			continue
		}
		if mv.IsPromotion() && mv.IsPromote != promote {
			continue
		}
		return mv, true
	}

	uci := strings.ToLower(s)
	for _, mv := range mvs {
		if mv.UCI() == uci {
			return mv, true
		}
	}
	return Move{}, false
}
