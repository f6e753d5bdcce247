package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// DefaultPerftTableSize is the size of the table Perft allocates when the
// caller passes none.
const DefaultPerftTableSize = 64 << 20

var defaultTable struct {
	sync.Mutex
	t *PerftTable
}

// Perft counts leaf nodes of the legal move tree at depth, memoizing
// subtree counts in tt. A nil tt selects a lazily allocated package table,
// serialized across callers.
func Perft(b *board.Board, depth int, tt *PerftTable) uint64 {
	if tt == nil {
		defaultTable.Lock()
		defer defaultTable.Unlock()
		if defaultTable.t == nil {
			defaultTable.t = NewPerftTable(DefaultPerftTableSize)
		}
		tt = defaultTable.t
	}
	return perft(b, depth, tt)
}

func perft(b *board.Board, depth int, tt *PerftTable) uint64 {
	if depth == 0 {
		return 1
	}
	key := b.Hash()
	if nodes, ok := tt.Probe(key, depth); ok {
		return nodes
	}

	mvs := b.GenerateMoves()
	if depth == 1 {
		nodes := uint64(len(mvs))
		tt.Save(key, depth, nodes)
		return nodes
	}

	var nodes uint64
	for _, mv := range mvs {
		st := b.ApplyMove(mv)
		nodes += perft(b, depth-1, tt)
		b.UndoApplyMove(mv, st)
	}
	tt.Save(key, depth, nodes)
	return nodes
}

// Stats breaks the leaf nodes of a perft run down by the kind of move that
// reached them.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassants += o.EnPassants
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

// PerftStats walks the tree without memoization so every leaf can be
// classified.
func PerftStats(b *board.Board, depth int) Stats {
	if depth == 0 {
		return Stats{Nodes: 1}
	}
	var stats Stats
	for _, mv := range b.GenerateMoves() {
		st := b.ApplyMove(mv)
		if depth == 1 {
			stats.Nodes++
			if mv.IsCapture() {
				stats.Captures++
			}
			if mv.IsEnPassant() {
				stats.EnPassants++
			}
			if mv.IsCastle() {
				stats.Castles++
			}
			if mv.IsPromotion() {
				stats.Promotions++
			}
			if b.IsInCheck() {
				stats.Checks++
			}
		} else {
			stats.add(PerftStats(b, depth-1))
		}
		b.UndoApplyMove(mv, st)
	}
	return stats
}

// DivideResult is the subtree count below one root move.
type DivideResult struct {
	Move  board.Move
	Nodes uint64
}

// Divide counts each root move's subtree at depth-1. Root moves are spread
// over workers, each owning a cloned board and its own PerftTable of
// tableSize bytes. Results keep move generation order.
func Divide(ctx context.Context, b *board.Board, depth, workers int, tableSize uint64) ([]DivideResult, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide: depth must be positive, got %d", depth)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	mvs := b.GenerateMoves()
	results := make([]DivideResult, len(mvs))
	workers = min(workers, len(mvs))

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range mvs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			bb := b.Clone()
			tt := NewPerftTable(tableSize)
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				mv := mvs[i]
				st := bb.ApplyMove(mv)
				results[i] = DivideResult{Move: mv, Nodes: perft(bb, depth-1, tt)}
				bb.UndoApplyMove(mv, st)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run loads fen, runs perft at depth and streams a report to out: one line
// per root move when verbose, then a summary line. More than one worker
// divides the root moves across goroutines.
func Run(ctx context.Context, depth int, fen string, workers int, verbose bool, tableSize uint64, out chan string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	start := time.Now()
	var nodes uint64
	switch {
	case depth == 0:
		nodes = 1
	case workers > 1 || verbose:
		workers = max(workers, 1)
		results, err := Divide(ctx, b, depth, workers, tableSize/uint64(workers))
		if err != nil {
			return err
		}
		for _, r := range results {
			if verbose {
				out <- fmt.Sprintf("%s: %d", r.Move.UCI(), r.Nodes)
			}
			nodes += r.Nodes
		}
	default:
		nodes = perft(b, depth, NewPerftTable(tableSize))
	}
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/max(elapsed.Seconds(), 1e-9)), elapsed.Seconds())
	return nil
}
