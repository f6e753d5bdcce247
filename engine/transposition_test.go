package engine

import (
	"testing"

	"github.com/daystram/chesscore/board"
)

type ttSet struct {
	mv    board.Move
	depth uint8
}

func TestTranspositionTable(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	e4, ok := b.FindMove("e4")
	if !ok {
		t.Fatal("move not found: e4")
	}
	d4, ok := b.FindMove("d4")
	if !ok {
		t.Fatal("move not found: d4")
	}

	tests := []struct {
		name   string
		sets   []ttSet
		want   board.Move
		wantOK bool
	}{
		{
			name: "miss",
		},
		{
			name: "hit",
			sets: []ttSet{{e4, 3}},
			want:   e4,
			wantOK: true,
		},
		{
			name: "deeper replaces",
			sets: []ttSet{{e4, 3}, {d4, 5}},
			want:   d4,
			wantOK: true,
		},
		{
			name: "equal depth replaces",
			sets: []ttSet{{e4, 3}, {d4, 3}},
			want:   d4,
			wantOK: true,
		},
		{
			name: "shallower kept out",
			sets: []ttSet{{e4, 5}, {d4, 3}},
			want:   e4,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := NewTranspositionTable(1 << 10)
			for _, s := range tt.sets {
				table.Set(b, s.mv, s.depth)
			}
			got, gotOK := table.ProbeMove(b.Hash())
			if gotOK != tt.wantOK || !IsSameMove(got, tt.want) {
				t.Errorf("unexpected probe: got=(%s, %v) want=(%s, %v)", got, gotOK, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTranspositionTableCollision(t *testing.T) {
	t.Parallel()

	table := NewTranspositionTable(16)
	mv := board.Move{From: 0x64, To: 0x44, Piece: board.PiecePawn}
	table.SetHash(3, mv, 9)
	table.SetHash(3+16, board.Move{}, 1)

	if _, ok := table.ProbeMove(3); ok {
		t.Error("evicted entry still served")
	}
	if _, ok := table.ProbeMove(3 + 16); !ok {
		t.Error("colliding entry not stored")
	}
	hits, misses, writes := table.Stats()
	if hits != 1 || misses != 1 || writes != 2 {
		t.Errorf("unexpected stats: got=(%d, %d, %d) want=(1, 1, 2)", hits, misses, writes)
	}

	table.Clear()
	if _, ok := table.ProbeMove(3 + 16); ok {
		t.Error("unexpected hit after clear")
	}
}
