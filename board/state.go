package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate

	// StateFiftyMoveViolated is when 100 plies passed without captures or pawn moves.
	StateFiftyMoveViolated

	// StateThreefoldRepetition is when the current position occurred three times.
	StateThreefoldRepetition
)

const fiftyMoveHalfMoves = 100

// State derives the game state of the current position from its legal
// moves, check status, half-move clock and position history.
func (b *Board) State() State {
	checked := b.IsInCheck()
	if len(b.GenerateMoves()) == 0 {
		switch {
		case !checked:
			return StateStalemate
		case b.turn == SideWhite:
			return StateCheckmateWhite
		default:
			return StateCheckmateBlack
		}
	}
	if b.halfMoveClock >= fiftyMoveHalfMoves {
		return StateFiftyMoveViolated
	}
	if b.IsDrawByRepetition() {
		return StateThreefoldRepetition
	}
	switch {
	case checked && b.turn == SideWhite:
		return StateCheckWhite
	case checked:
		return StateCheckBlack
	default:
		return StateRunning
	}
}

// IsDrawByRepetition reports whether the current hash appears at least three
// times in the history since the board was loaded.
func (b *Board) IsDrawByRepetition() bool {
	var count int
	for i := len(b.history) - 1; i >= 0; i-- {
		if b.history[i] == b.hash {
			count++
		}
	}
	return count >= 3
}

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateFiftyMoveViolated, StateThreefoldRepetition:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	case StateFiftyMoveViolated:
		return "StateFiftyMoveViolated"
	case StateThreefoldRepetition:
		return "StateThreefoldRepetition"
	default:
		return ""
	}
}
