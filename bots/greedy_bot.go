package bots

import (
	"context"
	"sort"

	"chessbot/game"

	"github.com/notnil/chess"
)

const (
	// TopPickChance is how often, in percent, the greedy bot plays one of its
	// top candidates instead of the single best.
	TopPickChance = 20
	TopPicks      = 3
)

// GreedyBot plays the medium tier: one-ply lookahead with some noise.
type GreedyBot struct {
	Evaluator PositionEvaluator
	Rand      Rand
}

// NewGreedyBot scores moves with the DefaultEvaluator. A nil r means NewRand.
func NewGreedyBot(r Rand) *GreedyBot {
	if r == nil {
		r = NewRand()
	}
	return &GreedyBot{Evaluator: DefaultEvaluator{}, Rand: r}
}

func (b *GreedyBot) Name() string {
	return "Greedy Bot"
}

func (b *GreedyBot) BestMove(ctx context.Context, board *game.Board) (*chess.Move, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return nil, nil
	}
	white := board.Turn() == chess.White

	var best *chess.Move
	var bestScore float64
	for _, m := range moves {
		score, err := b.score(board, m)
		if err != nil {
			return nil, err
		}
		if best == nil || better(score, bestScore, white) {
			best, bestScore = m, score
		}
	}

	if !chance(b.Rand, TopPickChance) {
		return best, nil
	}

	// The re-rank is its own pass; ties may resolve differently from above.
	ranked, err := b.rank(board, moves)
	if err != nil {
		return nil, err
	}
	n := TopPicks
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[b.Rand.Intn(n)].Move, nil
}

// rank orders moves best-first for the side to move by one-ply evaluation.
func (b *GreedyBot) rank(board *game.Board, moves []*chess.Move) ([]SearchResult, error) {
	white := board.Turn() == chess.White
	ranked := make([]SearchResult, 0, len(moves))
	for _, m := range moves {
		score, err := b.score(board, m)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, SearchResult{Score: score, Move: m})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return better(ranked[i].Score, ranked[j].Score, white)
	})
	return ranked, nil
}

func (b *GreedyBot) score(board *game.Board, m *chess.Move) (float64, error) {
	if err := board.Push(m); err != nil {
		return 0, err
	}
	defer func() { _ = board.Pop() }()
	return b.Evaluator.Evaluate(board), nil
}

// better reports whether a beats b for the given side.
func better(a, b float64, white bool) bool {
	if white {
		return a > b
	}
	return a < b
}
