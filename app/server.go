// Package app serves the move engine over HTTP and websockets.
package app

import (
	"time"

	"chessbot/analysis"
	"chessbot/app/config"
	"chessbot/bots"
)

// Server holds what the handlers share. It keeps no per-game state; every
// request parses its own board.
type Server struct {
	Policy *bots.Policy
	Engine analysis.Engine
	// Delay is the pause before a websocket move is revealed.
	Delay func(bots.Tier) time.Duration
}

func NewServer(engine analysis.Engine, cfg config.EngineConfig) *Server {
	r := bots.NewRand()
	return &Server{
		Policy: bots.NewPolicy(bots.PolicyConfig{
			Engine:      engine,
			EngineDepth: cfg.Depth,
			EngineTime:  cfg.MoveTime,
			EngineGrace: cfg.Grace,
			Rand:        r,
		}),
		Engine: engine,
		Delay: func(t bots.Tier) time.Duration {
			return bots.ThinkingDelay(t, r)
		},
	}
}
