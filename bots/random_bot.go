package bots

import (
	"context"

	"chessbot/game"

	"github.com/notnil/chess"
)

// CaptureBias is how often, in percent, the random bot looks for a capture
// before falling back to any legal move.
const CaptureBias = 30

// RandomBot plays the easy tier: uniform over legal moves with a bias
// toward captures.
type RandomBot struct {
	Rand Rand
}

// NewRandomBot draws from r; nil means NewRand.
func NewRandomBot(r Rand) *RandomBot {
	if r == nil {
		r = NewRand()
	}
	return &RandomBot{Rand: r}
}

func (b *RandomBot) BestMove(ctx context.Context, board *game.Board) (*chess.Move, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return nil, nil
	}
	if chance(b.Rand, CaptureBias) {
		var captures []*chess.Move
		for _, m := range moves {
			if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
				captures = append(captures, m)
			}
		}
		if len(captures) > 0 {
			return captures[b.Rand.Intn(len(captures))], nil
		}
	}
	return moves[b.Rand.Intn(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
