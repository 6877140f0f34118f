package bots

import (
	"errors"
	"testing"
	"time"
)

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"easy":   Easy,
		"Medium": Medium,
		" HARD ": Hard,
		"expert": Expert,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Fatalf("ParseTier(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"", "impossible", "easy1"} {
		if _, err := ParseTier(in); !errors.Is(err, ErrUnknownTier) {
			t.Fatalf("ParseTier(%q) error = %v, want ErrUnknownTier", in, err)
		}
	}
}

func TestTierInfo(t *testing.T) {
	for _, tier := range Tiers() {
		info := tier.Info()
		if info.Tier != tier || info.Label == "" || info.Description == "" || info.Elo == "" {
			t.Fatalf("incomplete info for %s: %+v", tier, info)
		}
	}
}

func TestThinkingDelay(t *testing.T) {
	bounds := map[Tier][2]time.Duration{
		Easy:   {300 * time.Millisecond, 800 * time.Millisecond},
		Medium: {500 * time.Millisecond, 1500 * time.Millisecond},
		Hard:   {800 * time.Millisecond, 2300 * time.Millisecond},
		Expert: {200 * time.Millisecond, 200 * time.Millisecond},
	}
	r := NewSeededRand(9)
	for tier, b := range bounds {
		for i := 0; i < 100; i++ {
			d := ThinkingDelay(tier, r)
			if d < b[0] || d > b[1] {
				t.Fatalf("ThinkingDelay(%s) = %v, want within %v", tier, d, b)
			}
		}
	}
	if got := ThinkingDelay(Hard, fixedRand(0)); got != 800*time.Millisecond {
		t.Fatalf("ThinkingDelay(hard, min) = %v", got)
	}
	if got := ThinkingDelay(Tier("nope"), fixedRand(0)); got != 0 {
		t.Fatalf("ThinkingDelay(unknown) = %v, want 0", got)
	}
}
