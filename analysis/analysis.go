// Package analysis talks to a high-strength analysis process, either a local
// UCI binary or a remote service speaking the JSON protocol below.
package analysis

import (
	"context"
	"errors"
)

var (
	ErrNotReady   = errors.New("analysis engine not ready")
	ErrNoBestMove = errors.New("analysis engine returned no best move")
)

// Request asks for the best move in Position (FEN) within the given budget.
type Request struct {
	Position   string `json:"position"`
	Depth      int    `json:"depth"`
	MoveTimeMs int    `json:"movetimeMs"`
}

// Response carries the best move in long-algebraic form, or null.
type Response struct {
	BestMove *string `json:"bestMove"`
}

// Move returns the best move, if any.
func (r Response) Move() (string, bool) {
	if r.BestMove == nil || *r.BestMove == "" {
		return "", false
	}
	return *r.BestMove, true
}

func NewResponse(move string) Response {
	if move == "" {
		return Response{}
	}
	return Response{BestMove: &move}
}

// Engine is a high-strength analysis process. Ready is checked before every
// request; both calls must give up when ctx is done.
type Engine interface {
	Ready(ctx context.Context) error
	BestMove(ctx context.Context, req Request) (Response, error)
}

// Offline is the Engine used when no analysis process is configured.
type Offline struct{}

func (Offline) Ready(context.Context) error { return ErrNotReady }

func (Offline) BestMove(context.Context, Request) (Response, error) {
	return Response{}, ErrNotReady
}
