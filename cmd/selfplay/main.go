// Command selfplay pits two tiers against each other and reports the score.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"time"

	"chessbot/app"
	"chessbot/app/config"
	"chessbot/bots"
	"chessbot/game"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type tally struct {
	mu         sync.Mutex
	first      int
	second     int
	draws      int
	unfinished int
	totalPlies int
}

// record counts a game where the first tier played white when swapped is false.
func (t *tally) record(res bots.MatchResult, swapped bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalPlies += res.Plies
	switch {
	case res.Winner == chess.NoColor && res.Status.IsDraw():
		t.draws++
	case res.Winner == chess.NoColor:
		t.unfinished++
	case (res.Winner == chess.White) != swapped:
		t.first++
	default:
		t.second++
	}
}

func main() {
	var (
		firstFlag  = flag.String("a", "hard", "first tier")
		secondFlag = flag.String("b", "medium", "second tier")
		games      = flag.Int("games", 10, "number of games, colours alternate")
		maxPlies   = flag.Int("max-plies", 200, "plies before a game is abandoned")
		fen        = flag.String("fen", "", "start position (default: standard)")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	app.InitLogging(cfg.Logs)

	first, err := bots.ParseTier(*firstFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -a")
	}
	second, err := bots.ParseTier(*secondFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -b")
	}

	start := game.NewBoard()
	if *fen != "" {
		if start, err = game.FromFEN(*fen); err != nil {
			log.Fatal().Err(err).Msg("bad -fen")
		}
	}

	engine, release, err := app.NewEngine(cfg.Engine)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start analysis engine")
	}
	defer release()

	policy := bots.NewPolicy(bots.PolicyConfig{
		Engine:      engine,
		EngineDepth: cfg.Engine.Depth,
		EngineTime:  cfg.Engine.MoveTime,
		EngineGrace: cfg.Engine.Grace,
		Rand:        bots.NewRand(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	var score tally
	g, ctx := errgroup.WithContext(ctx)
	if cfg.SelfPlay.Workers > 0 {
		g.SetLimit(cfg.SelfPlay.Workers)
	}
	for i := 0; i < *games; i++ {
		swapped := i%2 == 1
		white, black := first, second
		if swapped {
			white, black = second, first
		}
		g.Go(func() error {
			res, err := bots.PlayMatchFrom(ctx, policy, white, black, start, *maxPlies)
			if err != nil {
				return err
			}
			score.record(res, swapped)
			log.Info().
				Str("white", string(res.White)).
				Str("black", string(res.Black)).
				Str("status", res.Status.String()).
				Str("winner", winner(res.Winner)).
				Int("plies", res.Plies).
				Str("fen", res.FinalFEN).
				Msg("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("self-play aborted")
	}

	avg := 0.0
	if *games > 0 {
		avg = float64(score.totalPlies) / float64(*games)
	}
	log.Info().
		Str("a", string(first)).
		Str("b", string(second)).
		Int("a_wins", score.first).
		Int("b_wins", score.second).
		Int("draws", score.draws).
		Int("unfinished", score.unfinished).
		Float64("avg_plies", avg).
		Dur("took", time.Since(began)).
		Msg("self-play done")
}

func winner(c chess.Color) string {
	switch c {
	case chess.White:
		return "white"
	case chess.Black:
		return "black"
	default:
		return "none"
	}
}
