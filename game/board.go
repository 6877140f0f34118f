// Package game wraps github.com/notnil/chess into the rules collaborator the
// bots search over: a caller-owned position stack with push/undo.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoHistory   = errors.New("no move to undo")
)

// Board is a position plus the stack of positions that led to it.
// It is not safe for concurrent use: a search mutates it in place and
// restores it before returning.
type Board struct {
	stack []*chess.Position
	keys  []string
}

// NewBoard returns a board at the standard starting position.
func NewBoard() *Board {
	return newBoard(chess.NewGame().Position())
}

// FromFEN parses the six-field board notation.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return newBoard(chess.NewGame(opt).Position()), nil
}

func newBoard(pos *chess.Position) *Board {
	return &Board{
		stack: []*chess.Position{pos},
		keys:  []string{repetitionKey(pos.String())},
	}
}

// Position is the current position. Callers must not hold it across Push/Pop.
func (b *Board) Position() *chess.Position {
	return b.stack[len(b.stack)-1]
}

func (b *Board) Turn() chess.Color {
	return b.Position().Turn()
}

// FEN serializes the current position.
func (b *Board) FEN() string {
	return b.Position().String()
}

// Ply is the number of moves pushed on top of the root position.
func (b *Board) Ply() int {
	return len(b.stack) - 1
}

func (b *Board) ValidMoves() []*chess.Move {
	return b.Position().ValidMoves()
}

// MovesFrom returns the legal moves starting on sq.
func (b *Board) MovesFrom(sq chess.Square) []*chess.Move {
	var moves []*chess.Move
	for _, m := range b.ValidMoves() {
		if m.S1() == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// Push applies a legal move. Moves that are not in the legal list for the
// current position are rejected and the board is left unchanged.
func (b *Board) Push(m *chess.Move) error {
	if m == nil {
		return fmt.Errorf("%w: nil move", ErrIllegalMove)
	}
	legal := b.find(m)
	if legal == nil {
		return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, b.FEN())
	}
	next := b.Position().Update(legal)
	b.stack = append(b.stack, next)
	b.keys = append(b.keys, repetitionKey(next.String()))
	return nil
}

// Pop undoes the last pushed move.
func (b *Board) Pop() error {
	if len(b.stack) == 1 {
		return ErrNoHistory
	}
	n := len(b.stack) - 1
	b.stack[n] = nil
	b.stack = b.stack[:n]
	b.keys = b.keys[:n]
	return nil
}

// ParseMove resolves a long-algebraic move ("e2e4", "e7e8q") against the
// legal moves of the current position.
func (b *Board) ParseMove(s string) (*chess.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return nil, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	for _, m := range b.ValidMoves() {
		if UCI(m) == s {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrIllegalMove, s, b.FEN())
}

// Clone copies the board so another goroutine can own it. Positions cache
// their legal moves lazily, so the copy re-parses each one instead of
// sharing pointers.
func (b *Board) Clone() *Board {
	stack := make([]*chess.Position, 0, len(b.stack))
	for _, pos := range b.stack {
		opt, err := chess.FEN(pos.String())
		if err != nil {
			stack = append(stack, pos)
			continue
		}
		stack = append(stack, chess.NewGame(opt).Position())
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return &Board{stack: stack, keys: keys}
}

func (b *Board) find(m *chess.Move) *chess.Move {
	for _, legal := range b.ValidMoves() {
		if legal == m || (legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo()) {
			return legal
		}
	}
	return nil
}

// UCI encodes a move in long-algebraic form.
func UCI(m *chess.Move) string {
	if m == nil {
		return ""
	}
	return chess.UCINotation{}.Encode(nil, m)
}
