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

// PolicyConfig wires the bots behind a Policy.
type PolicyConfig struct {
	// Engine backs the expert tier; nil means always fall back to hard.
	Engine      analysis.Engine
	EngineDepth int
	EngineTime  time.Duration
	EngineGrace time.Duration
	Rand        Rand
}

// Policy maps a difficulty tier to its bot. It holds no per-game state and
// may be shared by concurrent callers as long as each uses its own Board.
type Policy struct {
	easy   *RandomBot
	medium *GreedyBot
	hard   *MinimaxBot
	expert *ExpertBot
}

// NewPolicy builds one bot per tier. The hard bot doubles as the expert fallback.
func NewPolicy(cfg PolicyConfig) *Policy {
	r := cfg.Rand
	if r == nil {
		r = NewRand()
	}
	hard := NewMinimaxBot(HardDepth)
	expert := NewExpertBot(cfg.Engine, hard)
	if cfg.EngineDepth > 0 {
		expert.Depth = cfg.EngineDepth
	}
	if cfg.EngineTime > 0 {
		expert.MoveTime = cfg.EngineTime
	}
	if cfg.EngineGrace > 0 {
		expert.Grace = cfg.EngineGrace
	}
	return &Policy{
		easy:   NewRandomBot(r),
		medium: NewGreedyBot(r),
		hard:   hard,
		expert: expert,
	}
}

// Bot returns the bot playing tier t.
func (p *Policy) Bot(t Tier) (ChessBot, error) {
	switch t {
	case Easy:
		return p.easy, nil
	case Medium:
		return p.medium, nil
	case Hard:
		return p.hard, nil
	case Expert:
		return p.expert, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTier, t)
}

// SelectMove picks the next move for the side to move on b. It returns nil
// only when there are no legal moves; telling checkmate from stalemate is up
// to the caller.
func (p *Policy) SelectMove(ctx context.Context, b *game.Board, t Tier) (*chess.Move, error) {
	bot, err := p.Bot(t)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	move, err := bot.BestMove(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", bot.Name(), err)
	}
	log.Debug().
		Str("tier", string(t)).
		Str("fen", b.FEN()).
		Str("move", game.UCI(move)).
		Dur("took", time.Since(start)).
		Msg("move selected")
	return move, nil
}
