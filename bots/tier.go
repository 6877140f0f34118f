package bots

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownTier is returned for names outside the four tiers.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Tier is a difficulty level. Each tier maps to exactly one bot.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
	Expert Tier = "expert"
)

// TierInfo is display metadata; none of it affects move choice.
type TierInfo struct {
	Tier        Tier   `json:"tier"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Elo         string `json:"elo"`
}

// Tiers lists every tier from weakest to strongest.
func Tiers() []Tier {
	return []Tier{Easy, Medium, Hard, Expert}
}

// ParseTier accepts a tier name in any case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Easy, Medium, Hard, Expert:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Info returns the display metadata for t.
func (t Tier) Info() TierInfo {
	switch t {
	case Easy:
		return TierInfo{t, "Beginner", "Plays random moves and grabs material now and then.", "~800"}
	case Medium:
		return TierInfo{t, "Casual", "Looks one move ahead and sometimes settles for second best.", "~1200"}
	case Hard:
		return TierInfo{t, "Club", fmt.Sprintf("Searches %d plies deep with alpha-beta pruning.", HardDepth), "~1600"}
	case Expert:
		return TierInfo{t, "Master", "Consults a full-strength analysis engine.", "~2400+"}
	}
	return TierInfo{Tier: t}
}

// ThinkingDelay is how long a UI should pause before revealing a move. It is
// cosmetic; the expert tier is already slowed down by the engine itself.
func ThinkingDelay(t Tier, r Rand) time.Duration {
	between := func(lo, hi int) time.Duration {
		return time.Duration(lo+r.Intn(hi-lo+1)) * time.Millisecond
	}
	switch t {
	case Easy:
		return between(300, 800)
	case Medium:
		return between(500, 1500)
	case Hard:
		return between(800, 2300)
	case Expert:
		return 200 * time.Millisecond
	}
	return 0
}
