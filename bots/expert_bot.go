package bots

import (
	"context"
	"fmt"
	"time"

	"chessbot/analysis"
	"chessbot/game"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

// ExpertBot delegates to an external analysis engine and plays the hard tier
// whenever the engine is unavailable, slow or answers with nonsense.
type ExpertBot struct {
	Engine   analysis.Engine
	Fallback *MinimaxBot
	Depth    int
	MoveTime time.Duration
	// Grace is added to MoveTime to form the transport deadline.
	Grace time.Duration
}

// NewExpertBot asks engine for 15 plies or one second, whichever comes first.
func NewExpertBot(engine analysis.Engine, fallback *MinimaxBot) *ExpertBot {
	return &ExpertBot{
		Engine:   engine,
		Fallback: fallback,
		Depth:    15,
		MoveTime: time.Second,
		Grace:    2 * time.Second,
	}
}

func (b *ExpertBot) Name() string {
	return "Expert Bot"
}

// engineResult is the outcome of one delegated request: a move string or
// the reason there is none.
type engineResult struct {
	Move string
	Err  error
}

func (b *ExpertBot) BestMove(ctx context.Context, board *game.Board) (*chess.Move, error) {
	if len(board.ValidMoves()) == 0 {
		return nil, nil
	}
	if b.Engine == nil {
		return b.fallback(ctx, board, analysis.ErrNotReady)
	}

	reqCtx, cancel := context.WithTimeout(ctx, b.MoveTime+b.Grace)
	defer cancel()

	var res engineResult
	select {
	case res = <-b.request(reqCtx, board.FEN()):
	case <-reqCtx.Done():
		res = engineResult{Err: reqCtx.Err()}
	}
	if res.Err != nil {
		return b.fallback(ctx, board, res.Err)
	}

	// The answer is only trusted if it names one of our legal moves.
	move, err := board.ParseMove(res.Move)
	if err != nil {
		return b.fallback(ctx, board, err)
	}
	log.Debug().Str("move", res.Move).Msg("expert move from analysis engine")
	return move, nil
}

// request runs the readiness check and the analysis call off the caller's
// goroutine. It only sees the FEN, never the board.
func (b *ExpertBot) request(ctx context.Context, fen string) <-chan engineResult {
	out := make(chan engineResult, 1)
	go func() {
		if err := b.Engine.Ready(ctx); err != nil {
			out <- engineResult{Err: err}
			return
		}
		resp, err := b.Engine.BestMove(ctx, analysis.Request{
			Position:   fen,
			Depth:      b.Depth,
			MoveTimeMs: int(b.MoveTime / time.Millisecond),
		})
		if err != nil {
			out <- engineResult{Err: err}
			return
		}
		move, ok := resp.Move()
		if !ok {
			out <- engineResult{Err: analysis.ErrNoBestMove}
			return
		}
		out <- engineResult{Move: move}
	}()
	return out
}

func (b *ExpertBot) fallback(ctx context.Context, board *game.Board, cause error) (*chess.Move, error) {
	log.Warn().Err(cause).Msg("analysis engine unavailable, playing hard tier")
	if b.Fallback == nil {
		return nil, fmt.Errorf("no fallback for expert tier: %w", cause)
	}
	return b.Fallback.BestMove(ctx, board)
}
