// Command chessbot prints the move a tier would play in a position. With
// -play it instead plays the tier against itself and prints the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"chessbot/app"
	"chessbot/app/config"
	"chessbot/bots"
	"chessbot/game"

	"github.com/rs/zerolog/log"
)

func main() {
	var (
		fen      = flag.String("fen", "", "position to move in (default: start position)")
		tierFlag = flag.String("tier", "medium", "easy, medium, hard or expert")
		delay    = flag.Bool("delay", false, "wait the tier's thinking delay before answering")
		play     = flag.Int("play", 0, "play this many plies against itself instead")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	app.InitLogging(cfg.Logs)

	tier, err := bots.ParseTier(*tierFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -tier")
	}

	engine, release, err := app.NewEngine(cfg.Engine)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start analysis engine")
	}
	defer release()

	r := bots.NewRand()
	policy := bots.NewPolicy(bots.PolicyConfig{
		Engine:      engine,
		EngineDepth: cfg.Engine.Depth,
		EngineTime:  cfg.Engine.MoveTime,
		EngineGrace: cfg.Engine.Grace,
		Rand:        r,
	})
	ctx := context.Background()

	if *play > 0 {
		res, err := bots.PlayMatch(ctx, policy, tier, tier, *fen, *play)
		if err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		for i, m := range res.Moves {
			if i%2 == 0 {
				fmt.Printf("%d. ", i/2+1)
			}
			fmt.Printf("%s ", m)
		}
		fmt.Printf("\n%s\n%s\n", res.Status, res.FinalFEN)
		return
	}

	b := game.NewBoard()
	if *fen != "" {
		if b, err = game.FromFEN(*fen); err != nil {
			log.Fatal().Err(err).Msg("bad -fen")
		}
	}

	start := time.Now()
	move, err := policy.SelectMove(ctx, b, tier)
	if err != nil {
		log.Fatal().Err(err).Msg("select move failed")
	}
	if *delay {
		if wait := bots.ThinkingDelay(tier, r) - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
	}
	if move == nil {
		fmt.Fprintln(os.Stderr, "no legal moves:", b.Status())
		return
	}
	fmt.Println(game.UCI(move))
}
