package game

import (
	"strconv"
	"strings"
)

// Status represents a game's lifecycle flag on the listing page
type Status string

const (
	StatusNormal    Status = ""
	StatusReordered Status = "Reordered"
)

// PrizeTier represents a single prize level of a scratch-off game.
// Remaining may exceed Total when the source data is inconsistent;
// no clamping is applied.
type PrizeTier struct {
	Value     float64 `json:"value"`
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
}

// PercentRemaining returns the share of this tier still unclaimed,
// as a percentage. Returns 0 when Total is 0.
func (t PrizeTier) PercentRemaining() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Remaining) / float64(t.Total) * 100
}

// Game represents one scratch-off game parsed from the listing page.
// TicketPrice is 0 until the enricher resolves it from the game's
// detail page; a price of 0 means unknown, never free.
type Game struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	TicketPrice float64     `json:"ticket_price"`
	DetailURL   string      `json:"detail_url"`
	Status      Status      `json:"status,omitempty"`
	Tiers       []PrizeTier `json:"tiers"`
}

// TopTier returns the tier with the highest prize value, or nil if the
// game has no tiers. Ties keep the first tier in source order: the scan
// uses a strict > comparison, so a later equal-value tier never
// replaces an earlier one.
func (g *Game) TopTier() *PrizeTier {
	if len(g.Tiers) == 0 {
		return nil
	}
	top := &g.Tiers[0]
	for i := 1; i < len(g.Tiers); i++ {
		if g.Tiers[i].Value > top.Value {
			top = &g.Tiers[i]
		}
	}
	return top
}

// BottomTier returns the tier with the lowest prize value, or nil if
// the game has no tiers. Same first-occurrence tie policy as TopTier,
// under a strict < comparison.
func (g *Game) BottomTier() *PrizeTier {
	if len(g.Tiers) == 0 {
		return nil
	}
	bottom := &g.Tiers[0]
	for i := 1; i < len(g.Tiers); i++ {
		if g.Tiers[i].Value < bottom.Value {
			bottom = &g.Tiers[i]
		}
	}
	return bottom
}

// Differential returns (bottomPct, topPct, differential) for the game,
// where differential = topPct - bottomPct. A game with no tiers yields
// all zeros; the listing parser guarantees surviving games have tiers.
func (g *Game) Differential() (bottomPct, topPct, differential float64) {
	top := g.TopTier()
	bottom := g.BottomTier()
	if top == nil || bottom == nil {
		return 0, 0, 0
	}
	bottomPct = bottom.PercentRemaining()
	topPct = top.PercentRemaining()
	return bottomPct, topPct, topPct - bottomPct
}

// ParseCurrency parses a currency string like "$1,000,000" into a
// float. Returns 0 if the string is not a number.
func ParseCurrency(s string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCount parses an integer count like "12,345". Returns 0 if the
// string is not a number.
func ParseCount(s string) int {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}
