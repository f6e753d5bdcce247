package engine

const pawnHashEntrySize = 16

// PawnHash caches pawn structure scores by pawn key. It is direct-mapped
// with index key%capacity and always replaces; a colliding key evicts the
// previous one.
type PawnHash struct {
	entries []pawnEntry
}

type pawnEntry struct {
	key   uint64
	score int32
	used  bool
}

// NewPawnHash holds floor(sizeBytes/16) entries, at least one.
func NewPawnHash(sizeBytes uint64) *PawnHash {
	return &PawnHash{
		entries: make([]pawnEntry, max(sizeBytes/pawnHashEntrySize, 1)),
	}
}

func (h *PawnHash) Capacity() int {
	return len(h.entries)
}

func (h *PawnHash) Set(key uint64, score int32) {
	h.entries[key%uint64(len(h.entries))] = pawnEntry{key: key, score: score, used: true}
}

func (h *PawnHash) Get(key uint64) (int32, bool) {
	e := h.entries[key%uint64(len(h.entries))]
	if !e.used || e.key != key {
		return 0, false
	}
	return e.score, true
}

func (h *PawnHash) Clear() {
	for i := range h.entries {
		h.entries[i] = pawnEntry{}
	}
}
