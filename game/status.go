package game

import (
	"strings"

	"github.com/notnil/chess"
)

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient_material"
	case FiftyMoveRule:
		return "fifty_move_rule"
	case ThreefoldRepetition:
		return "threefold_repetition"
	default:
		return "ongoing"
	}
}

// Terminal reports whether no further moves are worth searching.
func (s Status) Terminal() bool {
	return s != Ongoing
}

// IsDraw reports a drawn terminal status, stalemate included.
func (s Status) IsDraw() bool {
	return s != Ongoing && s != Checkmate
}

// Status classifies the current position. Checkmate and stalemate take
// precedence over the draw rules.
func (b *Board) Status() Status {
	pos := b.Position()
	switch pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	if insufficientMaterial(pos.Board()) {
		return InsufficientMaterial
	}
	if pos.HalfMoveClock() >= 100 {
		return FiftyMoveRule
	}
	if b.repetitions() >= 3 {
		return ThreefoldRepetition
	}
	return Ongoing
}

func (b *Board) IsCheckmate() bool {
	return b.Position().Status() == chess.Checkmate
}

func (b *Board) IsDraw() bool {
	return b.Status().IsDraw()
}

// repetitions counts earlier occurrences of the current position, itself
// included, along the pushed line.
func (b *Board) repetitions() int {
	key := b.keys[len(b.keys)-1]
	n := 0
	for _, k := range b.keys {
		if k == key {
			n++
		}
	}
	return n
}

// repetitionKey drops the move counters so transpositions of the same
// placement, side, castling and en-passant target compare equal.
func repetitionKey(fen string) string {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return fen
	}
	return strings.Join(parts[:4], " ")
}

func insufficientMaterial(board *chess.Board) bool {
	var minors []chess.Square
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch board.Piece(sq).Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight, chess.Bishop:
			minors = append(minors, sq)
		default:
			return false
		}
	}
	if len(minors) <= 1 {
		return true
	}
	// Bishops only, all on squares of one colour.
	shade := -1
	for _, sq := range minors {
		if board.Piece(sq).Type() != chess.Bishop {
			return false
		}
		c := (int(sq.File()) + int(sq.Rank())) % 2
		if shade >= 0 && c != shade {
			return false
		}
		shade = c
	}
	return true
}
