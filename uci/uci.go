package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/engine"
)

var (
	EngineName   = "Chesscore"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		fen:        board.DefaultStartingPositionFEN,
		hashSizeMB: 64,
		parallel:   runtime.NumCPU(),
	}
)

const maxHashSizeMB = 1 << 14

type options struct {
	fen        string
	hashSizeMB uint64
	parallel   int
}

// Interface is a line-oriented console over the move generator: position
// setup, perft, divide and principal variation checks.
type Interface struct {
	in  io.Reader
	out io.Writer
	log zerolog.Logger

	board   *board.Board
	tt      *engine.TranspositionTable
	options options
}

type Option func(*Interface)

func WithInput(r io.Reader) Option {
	return func(i *Interface) {
		i.in = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(i *Interface) {
		i.out = w
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(i *Interface) {
		i.log = l
	}
}

// WithFEN sets the position loaded on start and on ucinewgame.
func WithFEN(fen string) Option {
	return func(i *Interface) {
		i.options.fen = fen
	}
}

func WithHashSize(mb uint64) Option {
	return func(i *Interface) {
		i.options.hashSizeMB = mb
	}
}

// WithParallel sets the number of divide workers; values below one select
// the CPU count.
func WithParallel(n int) Option {
	return func(i *Interface) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		i.options.parallel = n
	}
}

func NewInterface(opts ...Option) *Interface {
	i := &Interface{
		in:      os.Stdin,
		out:     os.Stdout,
		log:     zerolog.Nop(),
		options: defaultOptions,
	}
	for _, f := range opts {
		f(i)
	}
	return i
}

// Run reads commands until quit, end of input or ctx cancellation.
func (i *Interface) Run(ctx context.Context) error {
	if err := i.reset(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		i.log.Debug().Strs("args", args).Msg("command received")

		switch args[0] {
		case "uci":
			i.commandUCI(ctx)
		case "ucinewgame":
			if err := i.reset(ctx); err != nil {
				i.log.Error().Err(err).Msg("cannot reset")
			}
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			i.commandSetOption(ctx, args[1:])
		case "position":
			i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "moves":
			i.commandMoves(ctx)
		case "go":
			i.commandGo(ctx, args[1:])
		case "divide":
			i.commandDivide(ctx, args[1:])
		case "pv":
			i.commandPV(ctx, args[1:])
		case "quit":
			return nil
		default:
			i.log.Warn().Str("command", args[0]).Msg("unknown command")
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 1 max %d", defaultOptions.hashSizeMB, maxHashSizeMB))
	i.println(fmt.Sprintf("option name Threads type spin default %d min 1 max 256", defaultOptions.parallel))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	if i.board != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		i.log.Warn().Strs("args", args).Msg("malformed setoption")
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "hash":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value < 1 || value > maxHashSizeMB {
			i.log.Warn().Str("value", valueStr).Msg("invalid hash size")
			return
		}
		i.options.hashSizeMB = value
		i.tt = engine.NewTranspositionTable(i.ttEntries())
	case "threads":
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 1 {
			i.log.Warn().Str("value", valueStr).Msg("invalid thread count")
			return
		}
		i.options.parallel = value
	}
}

// commandPosition handles "position [startpos | fen F...] [moves m...]".
// Moves may be long algebraic or SAN; on any error the previous position is
// kept.
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := len(args)
	for idx, arg := range args {
		if arg == "moves" {
			movesAt = idx
			break
		}
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:movesAt], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		i.log.Warn().Str("kind", args[0]).Msg("unknown position kind")
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.log.Warn().Err(err).Str("fen", fen).Msg("cannot load position")
		i.println("info string " + err.Error())
		return
	}
	if movesAt < len(args) {
		for _, s := range args[movesAt+1:] {
			mv, ok := b.FindMove(s)
			if !ok {
				i.log.Warn().Str("move", s).Str("fen", b.FEN()).Msg("illegal move")
				i.println("info string illegal move " + s)
				return
			}
			b.ApplyMove(mv)
		}
	}
	i.board = b
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Draw())
	i.println(fmt.Sprintf("Fen: %s", i.board.FEN()))
	i.println(fmt.Sprintf("Key: %016X", i.board.Hash()))
	i.println(fmt.Sprintf("State: %s", i.board.State()))
}

func (i *Interface) commandMoves(_ context.Context) {
	mvs := i.board.GenerateMoves()
	sans := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		sans = append(sans, mv.SAN(mvs))
	}
	i.println(strings.Join(sans, " "))
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		i.log.Warn().Strs("args", args).Msg("unsupported go mode")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		i.log.Warn().Str("depth", args[1]).Msg("invalid depth")
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	err = bench.Run(ctx, depth, i.board.FEN(), i.options.parallel, true, i.options.hashSizeMB<<20, out)
	close(out)
	<-done
	if err != nil {
		i.log.Error().Err(err).Msg("perft failed")
	}
}

func (i *Interface) commandDivide(ctx context.Context, args []string) {
	if len(args) != 1 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		i.log.Warn().Str("depth", args[0]).Msg("invalid depth")
		return
	}

	results, err := bench.Divide(ctx, i.board, depth, i.options.parallel, i.options.hashSizeMB<<20/uint64(i.options.parallel))
	if err != nil {
		i.log.Error().Err(err).Msg("divide failed")
		return
	}
	mvs := i.board.GenerateMoves()
	var total uint64
	for _, r := range results {
		i.println(fmt.Sprintf("%s %s: %d", r.Move.UCI(), r.Move.SAN(mvs), r.Nodes))
		total += r.Nodes
	}
	i.println(fmt.Sprintf("total: %d", total))
}

// commandPV checks a line of moves from the current position, caches it as
// best moves and reads it back through the cache.
func (i *Interface) commandPV(_ context.Context, args []string) {
	bb := i.board.Clone()
	pv := make([]board.Move, 0, len(args))
	for _, s := range args {
		mv, ok := bb.FindMove(s)
		if !ok {
			i.println("info string illegal move " + s)
			return
		}
		pv = append(pv, mv)
		i.tt.Set(bb, mv, uint8(len(args)-len(pv)))
		bb.ApplyMove(mv)
	}

	if err := engine.CheckPV(i.board, pv); err != nil {
		i.log.Error().Err(err).Msg("pv check failed")
		i.println("info string " + err.Error())
		return
	}
	pvl := engine.GetPVLine(i.board, i.tt, len(pv), nil)
	i.println("pv " + pvl.StringUCI())
	i.println("san " + pvl.String(i.board))
}

func (i *Interface) reset(_ context.Context) error {
	b, err := board.NewBoard(board.WithFEN(i.options.fen))
	if err != nil {
		return err
	}
	i.board = b
	i.tt = engine.NewTranspositionTable(i.ttEntries())
	return nil
}

// ttEntries sizes the best-move cache from the hash budget; 64 bytes bounds
// one entry.
func (i *Interface) ttEntries() uint64 {
	return i.options.hashSizeMB << 20 / 64
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
