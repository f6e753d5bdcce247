package bench

import "testing"

func TestNewPerftTableCapacity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sizeBytes uint64
		want      int
	}{
		{sizeBytes: 0, want: 1},
		{sizeBytes: 15, want: 1},
		{sizeBytes: 16, want: 1},
		{sizeBytes: 32, want: 2},
		{sizeBytes: 48, want: 2},
		{sizeBytes: 1000, want: 32},
		{sizeBytes: 1 << 20, want: 1 << 16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("", func(t *testing.T) {
			t.Parallel()

			if got := NewPerftTable(tt.sizeBytes).Capacity(); got != tt.want {
				t.Errorf("unexpected capacity for %d bytes: got=%d want=%d", tt.sizeBytes, got, tt.want)
			}
		})
	}
}

type perftSave struct {
	key   uint64
	depth int
	nodes uint64
}

func TestPerftTable(t *testing.T) {
	t.Parallel()

	const key = 0xDEADBEEF00000010
	tests := []struct {
		name      string
		saves     []perftSave
		probeKey  uint64
		depth     int
		wantNodes uint64
		wantOK    bool
	}{
		{
			name:     "empty",
			probeKey: key,
			depth:    3,
		},
		{
			name:      "hit",
			saves:     []perftSave{{key, 3, 8_902}},
			probeKey:  key,
			depth:     3,
			wantNodes: 8_902,
			wantOK:    true,
		},
		{
			name:     "deeper entry does not serve shallower probe",
			saves:    []perftSave{{key, 4, 197_281}},
			probeKey: key,
			depth:    3,
		},
		{
			name:      "shallower same-key save dropped",
			saves:     []perftSave{{key, 4, 197_281}, {key, 3, 8_902}},
			probeKey:  key,
			depth:     4,
			wantNodes: 197_281,
			wantOK:    true,
		},
		{
			name:      "deeper same-key save replaces",
			saves:     []perftSave{{key, 3, 8_902}, {key, 4, 197_281}},
			probeKey:  key,
			depth:     4,
			wantNodes: 197_281,
			wantOK:    true,
		},
		{
			name:      "equal depth same-key save replaces",
			saves:     []perftSave{{key, 3, 1}, {key, 3, 2}},
			probeKey:  key,
			depth:     3,
			wantNodes: 2,
			wantOK:    true,
		},
		{
			name:      "collision replaces unconditionally",
			saves:     []perftSave{{key, 9, 1}, {key + 16, 1, 20}},
			probeKey:  key + 16,
			depth:     1,
			wantNodes: 20,
			wantOK:    true,
		},
		{
			name:     "collision evicts previous key",
			saves:    []perftSave{{key, 9, 1}, {key + 16, 1, 20}},
			probeKey: key,
			depth:    9,
		},
		{
			name:      "zero node count",
			saves:     []perftSave{{key, 2, 0}},
			probeKey:  key,
			depth:     2,
			wantNodes: 0,
			wantOK:    true,
		},
		{
			name:      "max node count",
			saves:     []perftSave{{key, 255, MaxPerftNodes}},
			probeKey:  key,
			depth:     255,
			wantNodes: MaxPerftNodes,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// 16 slots, keys differing by 16 share a slot
			tab := NewPerftTable(16 * 16)
			for _, s := range tt.saves {
				tab.Save(s.key, s.depth, s.nodes)
			}
			gotNodes, gotOK := tab.Probe(tt.probeKey, tt.depth)
			if gotOK != tt.wantOK || gotNodes != tt.wantNodes {
				t.Errorf("unexpected probe: got=(%d, %v) want=(%d, %v)", gotNodes, gotOK, tt.wantNodes, tt.wantOK)
			}
		})
	}
}

func TestPerftTableClear(t *testing.T) {
	t.Parallel()

	tab := NewPerftTable(1 << 10)
	tab.Save(42, 3, 8_902)
	tab.Clear()
	if nodes, ok := tab.Probe(42, 3); ok {
		t.Errorf("unexpected hit after clear: got=%d", nodes)
	}
}
