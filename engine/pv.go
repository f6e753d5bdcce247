package engine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/daystram/chesscore/board"
)

// ErrPVInconsistent reports a principal variation containing a move that is
// illegal where it is played, which means the move cache is corrupt.
var ErrPVInconsistent = errors.New("pv consistency check failed")

type PVLine struct {
	mvs []board.Move
}

func NewPVLine(mvs ...board.Move) PVLine {
	return PVLine{mvs: mvs}
}

func (pvl *PVLine) GetPV() board.Move {
	if len(pvl.mvs) == 0 {
		return board.Move{}
	}
	return pvl.mvs[0]
}

func (pvl *PVLine) Moves() []board.Move {
	return pvl.mvs
}

func (pvl *PVLine) Len() int {
	return len(pvl.mvs)
}

func (pvl *PVLine) StringUCI() string {
	if pvl == nil {
		return ""
	}
	builder := strings.Builder{}
	for i, mv := range pvl.mvs {
		_, _ = builder.WriteString(mv.UCI())
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

// String renders the line in numbered SAN as played from b.
func (pvl *PVLine) String(b *board.Board) string {
	return DumpHistory(b, pvl.mvs)
}

// DumpHistory replays mvs on a clone of b and renders them as numbered SAN
// with check and mate markers. Rendering stops at the first illegal move.
func DumpHistory(b *board.Board, mvs []board.Move) string {
	if b == nil || len(mvs) < 1 {
		return ""
	}
	builder := strings.Builder{}
	bb := b.Clone()
	fullMoveClock := bb.FullMoveClock()
	if bb.Turn() == board.SideBlack {
		_, _ = builder.WriteString(fmt.Sprintf("%d... ", fullMoveClock))
	}
	for i, mv := range mvs {
		legal := bb.GenerateMoves()
		legalMv, ok := findSameMove(legal, mv)
		if !ok {
			break
		}
		if i > 0 {
			_, _ = builder.WriteRune(' ')
		}
		if bb.Turn() == board.SideWhite {
			_, _ = builder.WriteString(fmt.Sprintf("%d. %s", fullMoveClock, legalMv.SAN(legal)))
		} else {
			_, _ = builder.WriteString(legalMv.SAN(legal))
			fullMoveClock++
		}
		bb.ApplyMove(legalMv)
		switch st := bb.State(); {
		case st.IsCheckmate():
			_, _ = builder.WriteRune('#')
		case st.IsCheck():
			_, _ = builder.WriteRune('+')
		}
	}
	return builder.String()
}

// IsSameMove compares origin, destination and promotion piece only.
func IsSameMove(m1, m2 board.Move) bool {
	return m1.From == m2.From && m1.To == m2.To && m1.IsPromote == m2.IsPromote
}

func findSameMove(mvs []board.Move, mv board.Move) (board.Move, bool) {
	for _, m := range mvs {
		if IsSameMove(m, mv) {
			return m, true
		}
	}
	return board.Move{}, false
}

type played struct {
	mv board.Move
	st board.UndoState
}

func unwind(b *board.Board, stack []played) {
	for i := len(stack) - 1; i >= 0; i-- {
		b.UndoApplyMove(stack[i].mv, stack[i].st)
	}
}

// GetPVLine follows best moves from tt, starting with firstMove when given,
// until depth moves are collected, the cache misses, a cached move is not
// legal in the reached position, or a position repeats. Every move applied
// is undone before returning.
func GetPVLine(b *board.Board, tt MoveProber, depth int, firstMove *board.Move) PVLine {
	var pvl PVLine
	var stack []played
	defer func() { unwind(b, stack) }()

	if firstMove != nil {
		mv, ok := findSameMove(b.GenerateMoves(), *firstMove)
		if !ok {
			return pvl
		}
		pvl.mvs = append(pvl.mvs, mv)
		stack = append(stack, played{mv: mv, st: b.ApplyMove(mv)})
	}

	seen := map[uint64]struct{}{b.Hash(): {}}
	for len(pvl.mvs) < depth {
		cached, ok := tt.ProbeMove(b.Hash())
		if !ok {
			break
		}
		mv, ok := findSameMove(b.GenerateMoves(), cached)
		if !ok {
			break
		}
		pvl.mvs = append(pvl.mvs, mv)
		stack = append(stack, played{mv: mv, st: b.ApplyMove(mv)})
		if _, repeated := seen[b.Hash()]; repeated {
			break
		}
		seen[b.Hash()] = struct{}{}
	}
	return pvl
}

// CheckPV replays pv from the current position and fails with
// ErrPVInconsistent on the first illegal move. The board is restored on
// every path.
func CheckPV(b *board.Board, pv []board.Move) error {
	var stack []played
	defer func() { unwind(b, stack) }()

	for i, mv := range pv {
		legalMv, ok := findSameMove(b.GenerateMoves(), mv)
		if !ok {
			return errors.Wrapf(ErrPVInconsistent, "illegal move %s at ply %d of %s", mv.UCI(), i, b.FEN())
		}
		stack = append(stack, played{mv: legalMv, st: b.ApplyMove(legalMv)})
	}
	return nil
}
