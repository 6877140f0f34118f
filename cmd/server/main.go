package main

import (
	"chessbot/app"
	"chessbot/app/config"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	app.InitLogging(cfg.Logs)

	engine, release, err := app.NewEngine(cfg.Engine)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start analysis engine")
	}
	defer release()

	router := app.NewRouter(app.NewServer(engine, cfg.Engine))
	log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
