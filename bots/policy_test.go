package bots

import (
	"context"
	"errors"
	"testing"
	"time"

	"chessbot/analysis"
	"chessbot/game"
)

func newTestPolicy(engine analysis.Engine) *Policy {
	return NewPolicy(PolicyConfig{
		Engine:      engine,
		EngineTime:  20 * time.Millisecond,
		EngineGrace: 50 * time.Millisecond,
		Rand:        NewSeededRand(3),
	})
}

func TestSelectMoveEasyOpening(t *testing.T) {
	p := newTestPolicy(nil)
	b := mustBoard(t, startFEN)
	for i := 0; i < 50; i++ {
		m, err := p.SelectMove(context.Background(), b, Easy)
		if err != nil {
			t.Fatalf("SelectMove error: %v", err)
		}
		assertLegal(t, b, m)
	}
}

func TestSelectMoveForcedMoveAllTiers(t *testing.T) {
	engines := map[string]analysis.Engine{
		"offline": analysis.Offline{},
		"engine":  &fakeEngine{move: "a1b2"},
	}
	for name, engine := range engines {
		p := newTestPolicy(engine)
		for _, tier := range Tiers() {
			b := mustBoard(t, forcedMoveFEN)
			m, err := p.SelectMove(context.Background(), b, tier)
			if err != nil {
				t.Fatalf("%s/%s: SelectMove error: %v", name, tier, err)
			}
			if game.UCI(m) != "a1b2" {
				t.Fatalf("%s/%s: SelectMove = %s, want a1b2", name, tier, game.UCI(m))
			}
		}
	}
}

func TestSelectMoveNilWithoutLegalMoves(t *testing.T) {
	p := newTestPolicy(&fakeEngine{move: "e2e4"})
	for _, fen := range []string{foolsMateFEN, scholarsMateFEN, stalemateFEN} {
		for _, tier := range Tiers() {
			m, err := p.SelectMove(context.Background(), mustBoard(t, fen), tier)
			if err != nil || m != nil {
				t.Fatalf("%s at %s: SelectMove = (%v, %v), want (nil, nil)", tier, fen, m, err)
			}
		}
	}
}

func TestSelectMoveAlwaysLegal(t *testing.T) {
	p := newTestPolicy(analysis.Offline{})
	for _, fen := range []string{backRankMateFEN, blackMateInOne, hangingQueenFEN, oneCaptureFEN} {
		for _, tier := range Tiers() {
			b := mustBoard(t, fen)
			m, err := p.SelectMove(context.Background(), b, tier)
			if err != nil {
				t.Fatalf("SelectMove error: %v", err)
			}
			assertLegal(t, b, m)
			// The chosen move must leave a position the rules accept.
			if err := b.Push(m); err != nil {
				t.Fatalf("%s: Push(%s) error: %v", tier, game.UCI(m), err)
			}
		}
	}
}

func TestSelectMoveExpertMatchesHardWhenEngineFails(t *testing.T) {
	p := newTestPolicy(&fakeEngine{err: errors.New("engine crashed")})
	for _, fen := range []string{backRankMateFEN, blackMateInOne, hangingQueenFEN} {
		hard, err := p.SelectMove(context.Background(), mustBoard(t, fen), Hard)
		if err != nil {
			t.Fatal(err)
		}
		expert, err := p.SelectMove(context.Background(), mustBoard(t, fen), Expert)
		if err != nil {
			t.Fatal(err)
		}
		if game.UCI(hard) != game.UCI(expert) {
			t.Fatalf("%s: expert %s != hard %s", fen, game.UCI(expert), game.UCI(hard))
		}
	}
}

func TestSelectMoveHardMate(t *testing.T) {
	m, err := newTestPolicy(nil).SelectMove(context.Background(), mustBoard(t, backRankMateFEN), Hard)
	if err != nil {
		t.Fatal(err)
	}
	if game.UCI(m) != "a1a8" {
		t.Fatalf("SelectMove = %s, want a1a8", game.UCI(m))
	}
}

func TestSelectMoveUnknownTier(t *testing.T) {
	_, err := newTestPolicy(nil).SelectMove(context.Background(), mustBoard(t, startFEN), Tier("grandmaster"))
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("SelectMove error = %v, want ErrUnknownTier", err)
	}
}
