package app

import (
	"chessbot/analysis"
	"chessbot/app/config"

	"github.com/rs/zerolog/log"
)

// NewEngine builds the analysis engine for the expert tier. A local binary
// wins over a remote URL. The returned func releases the engine.
func NewEngine(cfg config.EngineConfig) (analysis.Engine, func(), error) {
	switch {
	case cfg.Path != "":
		eng, err := analysis.NewUCI(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Path).Msg("using local uci engine")
		return eng, func() { _ = eng.Close() }, nil
	case cfg.URL != "":
		log.Info().Str("url", cfg.URL).Msg("using remote analysis engine")
		return analysis.NewClient(cfg.URL), func() {}, nil
	default:
		log.Warn().Msg("no analysis engine configured, expert tier will play hard")
		return analysis.Offline{}, func() {}, nil
	}
}
