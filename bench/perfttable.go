package bench

const (
	perftEntrySize = 16
	perftDepthBits = 8
	perftDepthMask = 1<<perftDepthBits - 1

	// MaxPerftNodes is the largest node count one entry can hold.
	MaxPerftNodes = 1<<(64-perftDepthBits) - 1
)

// PerftTable memoizes perft subtree counts by (hash, depth). It is a
// direct-mapped array pair: keys holds the full hash, data packs the node
// count in the high 56 bits and the depth in the low 8 bits. Not safe for
// concurrent use.
type PerftTable struct {
	keys []uint64
	data []uint64
	mask uint64
}

// NewPerftTable sizes the table to floor(sizeBytes/16) entries rounded down
// to a power of two, with at least one entry.
func NewPerftTable(sizeBytes uint64) *PerftTable {
	capacity := uint64(1)
	for capacity*2 <= sizeBytes/perftEntrySize {
		capacity *= 2
	}
	return &PerftTable{
		keys: make([]uint64, capacity),
		data: make([]uint64, capacity),
		mask: capacity - 1,
	}
}

func (t *PerftTable) Capacity() int {
	return len(t.keys)
}

// Save stores a count. An occupied slot is replaced on key mismatch, or on
// a key match when depth is at least the stored depth.
func (t *PerftTable) Save(key uint64, depth int, nodes uint64) {
	i := key & t.mask
	storedKey := t.keys[i]
	if storedKey != 0 && storedKey == key && depth < unpackDepth(t.data[i]) {
		return
	}
	t.keys[i] = key
	t.data[i] = packPerftData(nodes, depth)
}

// Probe returns the stored count for an exact key and depth match.
func (t *PerftTable) Probe(key uint64, depth int) (uint64, bool) {
	i := key & t.mask
	d := t.data[i]
	if d == 0 || t.keys[i] != key || unpackDepth(d) != depth {
		return 0, false
	}
	return unpackNodes(d), true
}

func (t *PerftTable) Clear() {
	for i := range t.keys {
		t.keys[i] = 0
		t.data[i] = 0
	}
}

func packPerftData(nodes uint64, depth int) uint64 {
	return nodes<<perftDepthBits | uint64(depth)&perftDepthMask
}

func unpackNodes(data uint64) uint64 {
	return data >> perftDepthBits
}

func unpackDepth(data uint64) int {
	return int(data & perftDepthMask)
}
