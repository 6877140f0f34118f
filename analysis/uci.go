package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/notnil/chess"
	"github.com/notnil/chess/uci"
	"github.com/rs/zerolog/log"
)

// defaultDepth is used when a request carries neither depth nor movetime, so
// the engine never starts an infinite search.
const defaultDepth = 12

// UCI drives a local engine process (e.g. Stockfish) over the UCI protocol.
// A process that overruns a request is killed, and the next Ready starts a
// fresh one from the same path.
type UCI struct {
	path   string
	mu     sync.Mutex
	eng    *uci.Engine
	broken error
	closed bool
}

// NewUCI starts the engine at path and runs the uci/isready handshake.
func NewUCI(path string) (*UCI, error) {
	u := &UCI{path: path}
	if err := u.start(context.Background()); err != nil {
		return nil, err
	}
	return u, nil
}

// start launches a new process and handshakes with it. Callers hold mu.
func (u *UCI) start(ctx context.Context) error {
	eng, err := uci.New(u.path)
	if err != nil {
		return fmt.Errorf("start engine %s: %w", u.path, err)
	}
	u.eng, u.broken = eng, nil
	if err := u.run(ctx, uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		if u.broken == nil {
			u.broken = err
			go func() { _ = eng.Close() }()
		}
		return fmt.Errorf("engine handshake: %w", err)
	}
	return nil
}

// Ready pings the engine, first restarting it if an earlier request left it
// broken.
func (u *UCI) Ready(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return fmt.Errorf("%w: engine closed", ErrNotReady)
	}
	if u.broken != nil {
		log.Info().Err(u.broken).Str("path", u.path).Msg("restarting uci engine")
		if err := u.start(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrNotReady, err)
		}
	}
	return u.run(ctx, uci.CmdIsReady)
}

func (u *UCI) BestMove(ctx context.Context, req Request) (Response, error) {
	opt, err := chess.FEN(req.Position)
	if err != nil {
		return Response{}, fmt.Errorf("parse position: %w", err)
	}
	pos := chess.NewGame(opt).Position()

	cmdGo := uci.CmdGo{Depth: req.Depth, MoveTime: time.Duration(req.MoveTimeMs) * time.Millisecond}
	if cmdGo.Depth <= 0 && cmdGo.MoveTime <= 0 {
		cmdGo.Depth = defaultDepth
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return Response{}, fmt.Errorf("%w: engine closed", ErrNotReady)
	}
	if u.broken != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNotReady, u.broken)
	}
	if err := u.run(ctx, uci.CmdPosition{Position: pos}, cmdGo); err != nil {
		return Response{}, err
	}
	best := u.eng.SearchResults().BestMove
	if best == nil {
		return Response{}, ErrNoBestMove
	}
	return NewResponse(chess.UCINotation{}.Encode(pos, best)), nil
}

// run executes cmds, giving up when ctx is done. An engine that overran its
// budget is left mid-search, so it is marked broken and closed.
func (u *UCI) run(ctx context.Context, cmds ...uci.Cmd) error {
	eng := u.eng
	done := make(chan error, 1)
	go func() {
		done <- eng.Run(cmds...)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		u.broken = ctx.Err()
		log.Warn().Err(ctx.Err()).Msg("uci engine timed out, closing")
		// Close waits for the stuck command to release the engine.
		go func() { _ = eng.Close() }()
		return ctx.Err()
	}
}

func (u *UCI) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return nil
	}
	u.closed = true
	if u.broken != nil {
		return nil
	}
	return u.eng.Close()
}
