package rank

import (
	"sort"

	"github.com/pfrederiksen/scratchrank/internal/game"
)

// TopPrizeThreshold is the minimum top-tier value for a game to appear
// in the "most top prizes remaining" view.
const TopPrizeThreshold = 5000

// Entry pairs a game with its computed ranking figures
type Entry struct {
	Game         *game.Game `json:"game"`
	BottomPct    float64    `json:"bottom_pct"`
	TopPct       float64    `json:"top_pct"`
	Differential float64    `json:"differential"`
}

// Rank computes each game's differential and returns entries ordered
// descending by it. The sort is stable: games with equal differentials
// keep their relative order from the input sequence.
func Rank(games []*game.Game) []Entry {
	entries := make([]Entry, 0, len(games))
	for _, g := range games {
		bottomPct, topPct, diff := g.Differential()
		entries = append(entries, Entry{
			Game:         g,
			BottomPct:    bottomPct,
			TopPct:       topPct,
			Differential: diff,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Differential > entries[j].Differential
	})

	return entries
}

// MostTopPrizes returns the independent "most top prizes remaining"
// ordering: games whose top tier is worth at least TopPrizeThreshold,
// sorted by remaining top-tier count descending, with differential
// descending as the tiebreak.
func MostTopPrizes(entries []Entry) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if top := e.Game.TopTier(); top != nil && top.Value >= TopPrizeThreshold {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ti := filtered[i].Game.TopTier()
		tj := filtered[j].Game.TopTier()
		if ti.Remaining != tj.Remaining {
			return ti.Remaining > tj.Remaining
		}
		return filtered[i].Differential > filtered[j].Differential
	})

	return filtered
}
