package bots

import (
	"context"
	"testing"

	"chessbot/analysis"
	"chessbot/game"

	"github.com/notnil/chess"
)

const (
	startFEN        = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	backRankMateFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	blackMateInOne  = "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1"
	forcedMoveFEN   = "k7/8/8/8/8/8/1r6/K7 w - - 0 1"
	foolsMateFEN    = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	scholarsMateFEN = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"
	stalemateFEN    = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	hangingQueenFEN = "4k3/8/8/q7/8/8/8/R3K3 w - - 0 1"
	oneCaptureFEN   = "4k3/8/8/8/3p4/4P3/8/4K3 w - - 0 1"
	middlegameFEN   = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
)

func mustBoard(t *testing.T, fen string) *game.Board {
	t.Helper()
	b, err := game.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) error = %v", fen, err)
	}
	return b
}

func assertLegal(t *testing.T, b *game.Board, m *chess.Move) {
	t.Helper()
	if m == nil {
		t.Fatalf("got nil move in %s", b.FEN())
	}
	for _, legal := range b.ValidMoves() {
		if game.UCI(legal) == game.UCI(m) {
			return
		}
	}
	t.Fatalf("move %s is not legal in %s", game.UCI(m), b.FEN())
}

// fixedRand always answers v, clamped to the requested range.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type constEvaluator float64

func (c constEvaluator) Evaluate(*game.Board) float64 { return float64(c) }

type panicEvaluator struct{}

func (panicEvaluator) Evaluate(b *game.Board) float64 {
	if b.Ply() > 0 {
		panic("evaluator blew up")
	}
	return 0
}

// fakeEngine is a scripted analysis.Engine.
type fakeEngine struct {
	readyErr error
	move     string
	err      error
	block    bool
	calls    int
}

func (f *fakeEngine) Ready(ctx context.Context) error {
	return f.readyErr
}

func (f *fakeEngine) BestMove(ctx context.Context, req analysis.Request) (analysis.Response, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return analysis.Response{}, ctx.Err()
	}
	if f.err != nil {
		return analysis.Response{}, f.err
	}
	return analysis.NewResponse(f.move), nil
}
