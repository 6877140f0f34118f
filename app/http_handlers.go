package app

import (
	"errors"
	"net/http"

	"chessbot/analysis"
	"chessbot/bots"
	"chessbot/game"

	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
)

type moveRequest struct {
	FEN  string `json:"fen" binding:"required"`
	Tier string `json:"tier" binding:"required"`
}

type moveDTO struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	UCI       string `json:"uci"`
}

type moveResponse struct {
	Move   *moveDTO `json:"move"`
	FEN    string   `json:"fen"`
	Status string   `json:"status"`
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Tiers(c *gin.Context) {
	infos := make([]bots.TierInfo, 0, len(bots.Tiers()))
	for _, t := range bots.Tiers() {
		infos = append(infos, t.Info())
	}
	c.JSON(http.StatusOK, infos)
}

// Move picks a move for the side to move and returns the position after it.
func (s *Server) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, status, err := s.selectMove(c, req)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) selectMove(c *gin.Context, req moveRequest) (moveResponse, int, error) {
	tier, err := bots.ParseTier(req.Tier)
	if err != nil {
		return moveResponse{}, http.StatusBadRequest, err
	}
	b, err := game.FromFEN(req.FEN)
	if err != nil {
		return moveResponse{}, http.StatusBadRequest, err
	}

	move, err := s.Policy.SelectMove(c.Request.Context(), b, tier)
	if err != nil {
		log.Error().Err(err).Str("fen", req.FEN).Str("tier", req.Tier).Msg("select move failed")
		return moveResponse{}, http.StatusInternalServerError, err
	}

	resp := moveResponse{}
	if move != nil {
		resp.Move = toMoveDTO(move)
		if err := b.Push(move); err != nil {
			return moveResponse{}, http.StatusInternalServerError, err
		}
	}
	resp.FEN = b.FEN()
	resp.Status = b.Status().String()
	return resp, http.StatusOK, nil
}

// Analyze serves the analysis protocol so this service can stand in as the
// remote engine for another deployment.
func (s *Server) Analyze(c *gin.Context) {
	var req analysis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := game.FromFEN(req.Position); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.Engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": analysis.ErrNotReady.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := s.Engine.Ready(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.Engine.BestMove(ctx, req)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, analysis.ErrNotReady) {
			status = http.StatusServiceUnavailable
		}
		log.Warn().Err(err).Msg("analysis request failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func toMoveDTO(m *chess.Move) *moveDTO {
	dto := &moveDTO{
		From: m.S1().String(),
		To:   m.S2().String(),
		UCI:  game.UCI(m),
	}
	if m.Promo() != chess.NoPieceType {
		dto.Promotion = m.Promo().String()
	}
	return dto
}
