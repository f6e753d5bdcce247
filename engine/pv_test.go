package engine

import (
	"errors"
	"testing"

	"github.com/daystram/chesscore/board"
)

// seedLine plays line from b's position on a clone and caches each move
// under the position it was played from.
func seedLine(t *testing.T, tt *TranspositionTable, b *board.Board, line []string) {
	t.Helper()
	bb := b.Clone()
	for _, s := range line {
		mv, ok := bb.FindMove(s)
		if !ok {
			t.Fatalf("move not found: %s in %s", s, bb.FEN())
		}
		tt.Set(bb, mv, 1)
		bb.ApplyMove(mv)
	}
}

func parseLine(t *testing.T, b *board.Board, line []string) []board.Move {
	t.Helper()
	bb := b.Clone()
	mvs := make([]board.Move, 0, len(line))
	for _, s := range line {
		mv, ok := bb.FindMove(s)
		if !ok {
			t.Fatalf("move not found: %s in %s", s, bb.FEN())
		}
		mvs = append(mvs, mv)
		bb.ApplyMove(mv)
	}
	return mvs
}

func TestGetPVLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		fen       string
		cached    []string
		stale     bool
		depth     int
		firstMove string
		want      string
	}{
		{
			name:  "empty cache",
			fen:   board.DefaultStartingPositionFEN,
			depth: 5,
			want:  "",
		},
		{
			name:   "full depth",
			fen:    board.DefaultStartingPositionFEN,
			cached: []string{"e4", "e5", "Nf3", "Nc6"},
			depth:  4,
			want:   "e2e4 e7e5 g1f3 b8c6",
		},
		{
			name:   "depth limit",
			fen:    board.DefaultStartingPositionFEN,
			cached: []string{"e4", "e5", "Nf3", "Nc6"},
			depth:  2,
			want:   "e2e4 e7e5",
		},
		{
			name:   "cache runs out",
			fen:    board.DefaultStartingPositionFEN,
			cached: []string{"e4", "e5"},
			depth:  6,
			want:   "e2e4 e7e5",
		},
		{
			name:   "cycle guard",
			fen:    board.DefaultStartingPositionFEN,
			cached: []string{"Nf3", "Nf6", "Ng1", "Ng8"},
			depth:  10,
			want:   "g1f3 g8f6 f3g1 f6g8",
		},
		{
			name:   "stale entry",
			fen:    board.DefaultStartingPositionFEN,
			cached: []string{"e4"},
			stale:  true,
			depth:  4,
			want:   "e2e4",
		},
		{
			name:      "first move",
			fen:       board.DefaultStartingPositionFEN,
			cached:    []string{"e4", "e5", "Nf3"},
			firstMove: "d2d4",
			depth:     4,
			want:      "d2d4",
		},
		{
			name:      "first move then cache",
			fen:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			cached:    []string{"c5", "Nf3", "d6", "d4"},
			firstMove: "c7c5",
			depth:     3,
			want:      "c7c5 g1f3 d7d6",
		},
		{
			name:   "castle and promotion",
			fen:    "r3k3/1P6/8/8/8/8/8/4K2R w K - 0 1",
			cached: []string{"O-O", "Kd7", "bxa8=N"},
			depth:  3,
			want:   "e1g1 e8d7 b7a8n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			table := NewTranspositionTable(1 << 12)
			seedLine(t, table, b, tt.cached)
			if tt.stale {
				// a move from another position lands on the line's last key
				bb := b.Clone()
				for _, mv := range parseLine(t, b, tt.cached) {
					bb.ApplyMove(mv)
				}
				table.SetHash(bb.Hash(), board.Move{From: 0x14, To: 0x54, Piece: board.PiecePawn}, 1)
			}

			var first *board.Move
			if tt.firstMove != "" {
				mv, ok := b.FindMove(tt.firstMove)
				if !ok {
					t.Fatalf("move not found: %s", tt.firstMove)
				}
				first = &mv
			}

			wantFEN, wantHash := b.FEN(), b.Hash()
			pvl := GetPVLine(b, table, tt.depth, first)
			if got := pvl.StringUCI(); got != tt.want {
				t.Errorf("unexpected pv: got=%q want=%q", got, tt.want)
			}
			if got := b.FEN(); got != wantFEN {
				t.Errorf("board mutated: got=%s want=%s", got, wantFEN)
			}
			if got := b.Hash(); got != wantHash {
				t.Errorf("hash mutated: got=%016x want=%016x", got, wantHash)
			}
		})
	}
}

func TestGetPVLineIllegalFirstMove(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	wantFEN := b.FEN()
	first := board.Move{From: 0x64, To: 0x34, Piece: board.PiecePawn}
	pvl := GetPVLine(b, NewTranspositionTable(16), 3, &first)
	if pvl.Len() != 0 {
		t.Errorf("unexpected pv: got=%s", pvl.StringUCI())
	}
	if got := b.FEN(); got != wantFEN {
		t.Errorf("board mutated: got=%s want=%s", got, wantFEN)
	}
}

func TestCheckPV(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		line    []string
		illegal *board.Move
		wantErr bool
	}{
		{
			name: "empty",
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name: "legal",
			fen:  board.DefaultStartingPositionFEN,
			line: []string{"e4", "e5", "Nf3", "Nc6", "Bb5"},
		},
		{
			name: "legal with en passant",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			line: []string{"exf6", "Nxf6", "Nf3"},
		},
		{
			name:    "illegal mid line",
			fen:     board.DefaultStartingPositionFEN,
			line:    []string{"e4", "e5"},
			illegal: &board.Move{From: 0x74, To: 0x54, Piece: board.PieceKing},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			pv := parseLine(t, b, tt.line)
			if tt.illegal != nil {
				pv = append(pv, *tt.illegal)
				pv = append(pv, pv[0])
			}

			wantFEN, wantHash := b.FEN(), b.Hash()
			err = CheckPV(b, pv)
			if tt.wantErr {
				if !errors.Is(err, ErrPVInconsistent) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrPVInconsistent)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got := b.FEN(); got != wantFEN {
				t.Errorf("board mutated: got=%s want=%s", got, wantFEN)
			}
			if got := b.Hash(); got != wantHash {
				t.Errorf("hash mutated: got=%016x want=%016x", got, wantHash)
			}
		})
	}
}

func TestIsSameMove(t *testing.T) {
	t.Parallel()
	base := board.Move{From: 0x16, To: 0x06, Piece: board.PiecePawn, IsPromote: board.PieceQueen, Flags: board.FlagPromotion}
	tests := []struct {
		name string
		mv   board.Move
		want bool
	}{
		{name: "identical", mv: base, want: true},
		{name: "flags ignored", mv: board.Move{From: 0x16, To: 0x06, IsPromote: board.PieceQueen}, want: true},
		{name: "different promotion", mv: board.Move{From: 0x16, To: 0x06, IsPromote: board.PieceKnight}, want: false},
		{name: "different origin", mv: board.Move{From: 0x15, To: 0x06, IsPromote: board.PieceQueen}, want: false},
		{name: "different destination", mv: board.Move{From: 0x16, To: 0x07, IsPromote: board.PieceQueen}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsSameMove(base, tt.mv); got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestDumpHistory(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen  string
		line []string
		want string
	}{
		{
			fen:  board.DefaultStartingPositionFEN,
			line: []string{"e4", "e5", "Nf3"},
			want: "1. e4 e5 2. Nf3",
		},
		{
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			line: []string{"e5", "Nf3"},
			want: "1... e5 2. Nf3",
		},
		{
			fen:  board.DefaultStartingPositionFEN,
			line: []string{"f3", "e5", "g4", "Qh4"},
			want: "1. f3 e5 2. g4 Qh4#",
		},
		{
			fen:  "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			line: []string{"Ra8"},
			want: "1. Ra8+",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			pvl := NewPVLine(parseLine(t, b, tt.line)...)
			if got := pvl.String(b); got != tt.want {
				t.Errorf("unexpected history: got=%q want=%q", got, tt.want)
			}
		})
	}
}
