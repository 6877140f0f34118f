package bots

import (
	"context"
	"fmt"
	"math"
	"sort"

	"chessbot/game"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

// HardDepth is the search depth of the hard tier, in plies.
const HardDepth = 4

// CheckBonus is added to a move's ordering score when it gives check.
const CheckBonus = 50

// MinimaxBot plays the hard tier: alpha-beta search to a fixed depth.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
}

// NewMinimaxBot searches depth plies with the DefaultEvaluator.
func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: DefaultEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

// BestMove returns nil only when the side to move has no legal moves.
func (b *MinimaxBot) BestMove(ctx context.Context, board *game.Board) (*chess.Move, error) {
	if board == nil || len(board.ValidMoves()) == 0 {
		return nil, nil
	}

	s := &searcher{eval: b.Evaluator}
	result, err := s.search(board, b.Depth, math.Inf(-1), math.Inf(1), board.Turn() == chess.White)
	if err != nil {
		return nil, err
	}
	if result.Move == nil {
		// Drawn by rule with moves still on the board: every move scores the
		// same, so take the first in search order.
		result.Move = orderMoves(board.Position().Board(), board.ValidMoves())[0]
	}
	log.Debug().
		Int("depth", b.Depth).
		Int("nodes", s.nodes).
		Float64("score", result.Score).
		Str("move", game.UCI(result.Move)).
		Msg("minimax search done")
	return result.Move, nil
}

// SearchResult is the value of a node and the move that reaches it. Move is
// nil at leaves.
type SearchResult struct {
	Score float64
	Move  *chess.Move
}

// Search runs alpha-beta minimax on b to the given depth. b is mutated during
// the search and restored on every return path, errors included.
func (b *MinimaxBot) Search(board *game.Board, depth int, alpha, beta float64, maximizing bool) (SearchResult, error) {
	s := &searcher{eval: b.Evaluator}
	return s.search(board, depth, alpha, beta, maximizing)
}

// searcher holds per-call state so one MinimaxBot can serve many boards at once.
type searcher struct {
	eval  PositionEvaluator
	nodes int
}

func (s *searcher) search(board *game.Board, depth int, alpha, beta float64, maximizing bool) (SearchResult, error) {
	s.nodes++
	if depth <= 0 || board.Status().Terminal() {
		return SearchResult{Score: s.eval.Evaluate(board)}, nil
	}

	moves := orderMoves(board.Position().Board(), board.ValidMoves())
	if len(moves) == 0 {
		return SearchResult{Score: s.eval.Evaluate(board)}, nil
	}

	var best SearchResult
	for _, move := range moves {
		current, err := s.child(board, move, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		// Strict comparison keeps the first of equally scored moves.
		if maximizing {
			if best.Move == nil || current.Score > best.Score {
				best = SearchResult{Score: current.Score, Move: move}
			}
			alpha = math.Max(alpha, best.Score)
		} else {
			if best.Move == nil || current.Score < best.Score {
				best = SearchResult{Score: current.Score, Move: move}
			}
			beta = math.Min(beta, best.Score)
		}
		if beta <= alpha {
			break
		}
	}
	return best, nil
}

// child searches the position after move and always takes move back.
func (s *searcher) child(board *game.Board, move *chess.Move, depth int, alpha, beta float64, maximizing bool) (SearchResult, error) {
	if err := board.Push(move); err != nil {
		return SearchResult{}, err
	}
	defer func() { _ = board.Pop() }()
	return s.search(board, depth, alpha, beta, maximizing)
}

// orderMoves sorts captures of valuable pieces and checks first. The sort is
// stable so equally scored moves keep generation order.
func orderMoves(board *chess.Board, moves []*chess.Move) []*chess.Move {
	ordered := make([]*chess.Move, len(moves))
	copy(ordered, moves)
	scores := make(map[*chess.Move]float64, len(ordered))
	for _, m := range ordered {
		scores[m] = moveOrderScore(board, m)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	return ordered
}

func moveOrderScore(board *chess.Board, m *chess.Move) float64 {
	var score float64
	if m.HasTag(chess.EnPassant) {
		score += pieceValue(chess.Pawn)
	} else if m.HasTag(chess.Capture) {
		score += pieceValue(board.Piece(m.S2()).Type())
	}
	if m.HasTag(chess.Check) {
		score += CheckBonus
	}
	return score
}
