package engine

import (
	"github.com/daystram/chesscore/board"
)

const (
	DefaultHashTableSize = 1 << 20 // number of entries
)

// MoveProber is the best-move lookup PV extraction reads from.
type MoveProber interface {
	ProbeMove(hash uint64) (board.Move, bool)
}

// TranspositionTable maps position hashes to the best move found there.
// Slots are direct-mapped; a slot is overwritten when empty, held by another
// hash, or when the new depth is at least the stored one.
type TranspositionTable struct {
	table    []entry
	size     uint64
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	mv    board.Move
	depth uint8
	hash  uint64
	used  bool
}

// NewTranspositionTable allocates size entries rounded down to a power of
// two.
func NewTranspositionTable(size uint64) *TranspositionTable {
	n := uint64(1)
	for n*2 <= size {
		n *= 2
	}
	return &TranspositionTable{
		table:    make([]entry, n),
		size:     n,
		maskHash: n - 1,
	}
}

func (t *TranspositionTable) Set(b *board.Board, mv board.Move, depth uint8) {
	t.SetHash(b.Hash(), mv, depth)
}

func (t *TranspositionTable) SetHash(hash uint64, mv board.Move, depth uint8) {
	e := &t.table[hash&t.maskHash]
	if e.used && e.hash == hash && e.depth > depth {
		return
	}
	t.writes++
	*e = entry{
		mv:    mv,
		depth: depth,
		hash:  hash,
		used:  true,
	}
}

func (t *TranspositionTable) Get(b *board.Board) (board.Move, uint8, bool) {
	hash := b.Hash()
	e := t.table[hash&t.maskHash]
	if !e.used || e.hash != hash {
		t.misses++
		return board.Move{}, 0, false
	}
	t.hits++
	return e.mv, e.depth, true
}

func (t *TranspositionTable) ProbeMove(hash uint64) (board.Move, bool) {
	e := t.table[hash&t.maskHash]
	if !e.used || e.hash != hash {
		t.misses++
		return board.Move{}, false
	}
	t.hits++
	return e.mv, true
}

func (t *TranspositionTable) Clear() {
	for i := range t.table {
		t.table[i] = entry{}
	}
	t.ResetStats()
}

func (t *TranspositionTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *TranspositionTable) Stats() (int, int, int) {
	return t.hits, t.misses, t.writes
}
