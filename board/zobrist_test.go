package board

import "testing"

func TestGetEpIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		file byte
		want int
	}{
		{file: 'a', want: 0},
		{file: 'e', want: 4},
		{file: 'h', want: 7},
		{file: '-', want: NoEnPassant},
		{file: 'i', want: NoEnPassant},
		{file: 'A', want: NoEnPassant},
		{file: 0, want: NoEnPassant},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.file), func(t *testing.T) {
			t.Parallel()

			if got := GetEpIndex(tt.file); got != tt.want {
				t.Errorf("unexpected index: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestPawnKey(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	pawnKey := b.PawnKey()

	mv := findMove(t, b, "g1f3", false)
	st := b.ApplyMove(mv)
	if got := b.PawnKey(); got != pawnKey {
		t.Errorf("pawn key changed by knight move: got=%016x want=%016x", got, pawnKey)
	}
	b.UndoApplyMove(mv, st)

	mv = findMove(t, b, "e2e4", false)
	b.ApplyMove(mv)
	if got := b.PawnKey(); got == pawnKey {
		t.Errorf("pawn key unchanged by pawn move: got=%016x", got)
	}
}

func TestPseudoRandDeterministic(t *testing.T) {
	t.Parallel()

	r1, r2 := NewPseudoRand(), NewPseudoRand()
	r1.Seed(zobristSeed)
	r2.Seed(zobristSeed)
	seen := map[uint64]bool{}
	for i := 0; i < 1024; i++ {
		a, b := r1.Uint64(), r2.Uint64()
		if a != b {
			t.Fatalf("unexpected divergence at %d: got=%016x want=%016x", i, a, b)
		}
		if seen[a] {
			t.Fatalf("unexpected repeat at %d: got=%016x", i, a)
		}
		seen[a] = true
	}
}
