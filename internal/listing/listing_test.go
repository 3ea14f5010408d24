package listing

import (
	"os"
	"strings"
	"testing"

	"github.com/pfrederiksen/scratchrank/internal/claims"
	"github.com/pfrederiksen/scratchrank/internal/game"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/sample_listing.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestParse_Fixture(t *testing.T) {
	games, err := Parse(strings.NewReader(loadFixture(t)), "https://nclottery.com", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// 841 (once), 856 (relabeled 855), 900. The linkless block, the
	// duplicate 841 block, and the zero-tier block yield nothing.
	if len(games) != 3 {
		t.Fatalf("Parse() returned %d games, want 3", len(games))
	}

	byID := make(map[string]*game.Game)
	for _, g := range games {
		byID[g.ID] = g
	}

	cc, ok := byID["841"]
	if !ok {
		t.Fatal("expected game 841 to be parsed")
	}
	if cc.Name != "Carolina Cash" {
		t.Errorf("game 841 name = %q, want Carolina Cash", cc.Name)
	}
	if cc.DetailURL != "https://nclottery.com/scratch-off/841/carolina-cash" {
		t.Errorf("game 841 detail URL = %q", cc.DetailURL)
	}
	if cc.Status != game.StatusNormal {
		t.Errorf("game 841 status = %q, want normal", cc.Status)
	}
	// FREE TICKET row is not a tier
	if len(cc.Tiers) != 3 {
		t.Fatalf("game 841 has %d tiers, want 3", len(cc.Tiers))
	}
	if cc.Tiers[0].Value != 100000 || cc.Tiers[0].Total != 10 || cc.Tiers[0].Remaining != 4 {
		t.Errorf("game 841 top row parsed as %+v", cc.Tiers[0])
	}
	if cc.Tiers[1].Total != 2400 || cc.Tiers[1].Remaining != 1100 {
		t.Errorf("game 841 thousands separators mishandled: %+v", cc.Tiers[1])
	}
	if cc.TicketPrice != 0 {
		t.Errorf("game 841 price = %v, want 0 before enrichment", cc.TicketPrice)
	}

	// The explicit "Game Number: 856" label overrides the URL's 855.
	bm, ok := byID["856"]
	if !ok {
		t.Fatal("expected game 856 (relabeled from URL id 855)")
	}
	if bm.Status != game.StatusReordered {
		t.Errorf("game 856 status = %q, want Reordered", bm.Status)
	}
	if _, exists := byID["855"]; exists {
		t.Error("URL-derived id 855 should have been overridden by the header label")
	}

	if _, exists := byID["910"]; exists {
		t.Error("zero-tier block 910 should yield no game")
	}
	if _, exists := byID["999"]; exists {
		t.Error("linkless block should yield no game")
	}

	// First occurrence of 841 wins over the duplicate block
	if cc.Tiers[0].Value == 999 {
		t.Error("duplicate 841 block replaced the first occurrence")
	}
}

func TestParse_ClaimsExclusion(t *testing.T) {
	exclude := claims.Set{"900": struct{}{}}

	games, err := Parse(strings.NewReader(loadFixture(t)), "https://nclottery.com", exclude)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	for _, g := range games {
		if g.ID == "900" {
			t.Fatal("game 900 is in the claims set and must be excluded")
		}
	}
	if len(games) != 2 {
		t.Errorf("Parse() returned %d games, want 2 with 900 excluded", len(games))
	}
}

func TestParse_OneGoodOneMalformed(t *testing.T) {
	html := `
<html><body>
<table>
  <tr><td><a href="/scratch-off/10/good-game">Good Game</a></td></tr>
  <tr><td>$100</td><td>1 in 10</td><td>50</td><td>25</td></tr>
</table>
<table>
  <tr><td>Malformed block without a detail link</td></tr>
  <tr><td>$100</td><td>1 in 10</td><td>50</td><td>25</td></tr>
</table>
</body></html>`

	games, err := Parse(strings.NewReader(html), "https://nclottery.com", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Parse() returned %d games, want exactly 1", len(games))
	}
	if games[0].ID != "10" || games[0].Name != "Good Game" {
		t.Errorf("parsed game = %+v", games[0])
	}
}

func TestParse_LinkOutsideHeaderRow(t *testing.T) {
	// The detail link must sit in the header row; a link buried in a
	// tier row does not make the block a game.
	html := `
<html><body>
<table>
  <tr><td>No link here</td></tr>
  <tr><td><a href="/scratch-off/77/stray">$100</a></td><td>x</td><td>50</td><td>25</td></tr>
</table>
</body></html>`

	games, err := Parse(strings.NewReader(html), "https://nclottery.com", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("Parse() returned %d games, want 0", len(games))
	}
}

func TestParse_NonPositiveAndZeroTotalTiers(t *testing.T) {
	html := `
<html><body>
<table>
  <tr><td><a href="/scratch-off/20/edge-case">Edge Case</a></td></tr>
  <tr><td>$0</td><td>x</td><td>100</td><td>50</td></tr>
  <tr><td>$-5</td><td>x</td><td>100</td><td>50</td></tr>
  <tr><td>$10</td><td>x</td><td>0</td><td>50</td></tr>
  <tr><td>$10</td><td>x</td><td>100</td><td>150</td></tr>
</table>
</body></html>`

	games, err := Parse(strings.NewReader(html), "https://nclottery.com", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Parse() returned %d games, want 1", len(games))
	}

	g := games[0]
	if len(g.Tiers) != 1 {
		t.Fatalf("game has %d tiers, want only the $10/100/150 row", len(g.Tiers))
	}
	// Remaining beyond total is kept as-is
	if g.Tiers[0].Remaining != 150 || g.Tiers[0].PercentRemaining() != 150 {
		t.Errorf("over-total tier = %+v, pct %v; want remaining 150, pct 150", g.Tiers[0], g.Tiers[0].PercentRemaining())
	}
}

func TestParse_AbsoluteDetailURL(t *testing.T) {
	html := `
<html><body>
<table>
  <tr><td><a href="https://nclottery.com/scratch-off/30/absolute">Absolute</a></td></tr>
  <tr><td>$10</td><td>x</td><td>100</td><td>50</td></tr>
</table>
</body></html>`

	games, err := Parse(strings.NewReader(html), "https://nclottery.com", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Parse() returned %d games, want 1", len(games))
	}
	if games[0].DetailURL != "https://nclottery.com/scratch-off/30/absolute" {
		t.Errorf("absolute href was re-prefixed: %q", games[0].DetailURL)
	}
}
