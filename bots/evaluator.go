package bots

import (
	"math"

	"chessbot/game"

	"github.com/notnil/chess"
)

// DefaultEvaluator scores positions from White's point of view.
type DefaultEvaluator struct{}

// MobilityWeight is the score per legal move of the side to move.
const MobilityWeight = 2

var (
	// WhiteMates and BlackMates are the forced-mate sentinels. No material
	// and positional sum comes close to them.
	WhiteMates = math.Inf(1)
	BlackMates = math.Inf(-1)
)

// Evaluate is deterministic and has no side effects on b.
func (e DefaultEvaluator) Evaluate(b *game.Board) float64 {
	switch status := b.Status(); {
	case status == game.Checkmate:
		if b.Turn() == chess.White {
			return BlackMates
		}
		return WhiteMates
	case status.IsDraw():
		return 0
	}

	score := e.materialScore(b.Position().Board()) + e.mobilityScore(b)
	return score
}

// materialScore adds material and piece-square bonuses, White positive.
func (e DefaultEvaluator) materialScore(board *chess.Board) float64 {
	var score float64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := pieceValue(piece.Type()) + squareBonus(piece.Type(), sq, piece.Color())
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// mobilityScore only counts the side to move: White's options push the score
// up, Black's push it down. There is no opponent term.
func (e DefaultEvaluator) mobilityScore(b *game.Board) float64 {
	mobility := float64(MobilityWeight * len(b.ValidMoves()))
	if b.Turn() == chess.Black {
		return -mobility
	}
	return mobility
}

func pieceValue(piece chess.PieceType) float64 {
	switch piece {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	default:
		return 0
	}
}
