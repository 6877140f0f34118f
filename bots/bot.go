// Package bots picks moves for the automated opponent, one bot per
// difficulty tier.
package bots

import (
	"context"

	"chessbot/game"

	"github.com/notnil/chess"
)

// ChessBot is implemented by every tier. BestMove returns nil only when the
// position has no legal moves. The board is restored before BestMove returns.
type ChessBot interface {
	BestMove(ctx context.Context, b *game.Board) (*chess.Move, error)
	Name() string
}

// PositionEvaluator scores a position, White positive.
type PositionEvaluator interface {
	Evaluate(b *game.Board) float64
}
