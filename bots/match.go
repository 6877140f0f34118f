package bots

import (
	"context"
	"fmt"

	"chessbot/game"

	"github.com/notnil/chess"
)

// MatchResult summarises one bot-versus-bot game.
type MatchResult struct {
	White  Tier
	Black  Tier
	Status game.Status
	// Winner is chess.NoColor for draws and unfinished games.
	Winner   chess.Color
	Plies    int
	FinalFEN string
	Moves    []string
}

// PlayMatch plays white against black from fen (the start position when
// empty) until the game ends or maxPlies moves were played.
func PlayMatch(ctx context.Context, p *Policy, white, black Tier, fen string, maxPlies int) (MatchResult, error) {
	start := game.NewBoard()
	if fen != "" {
		var err error
		if start, err = game.FromFEN(fen); err != nil {
			return MatchResult{}, err
		}
	}
	return PlayMatchFrom(ctx, p, white, black, start, maxPlies)
}

// PlayMatchFrom is PlayMatch on a copy of start. start itself is only read,
// so one parsed start board can seed many concurrent matches.
func PlayMatchFrom(ctx context.Context, p *Policy, white, black Tier, start *game.Board, maxPlies int) (MatchResult, error) {
	b := start.Clone()

	res := MatchResult{White: white, Black: black, Winner: chess.NoColor}
	for res.Plies < maxPlies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if b.Status().Terminal() {
			break
		}
		tier := white
		if b.Turn() == chess.Black {
			tier = black
		}
		move, err := p.SelectMove(ctx, b, tier)
		if err != nil {
			return res, err
		}
		if move == nil {
			break
		}
		if err := b.Push(move); err != nil {
			return res, fmt.Errorf("ply %d: %w", res.Plies, err)
		}
		res.Moves = append(res.Moves, game.UCI(move))
		res.Plies++
	}

	res.Status = b.Status()
	if b.IsCheckmate() {
		res.Winner = b.Turn().Other()
	}
	res.FinalFEN = b.FEN()
	return res, nil
}
