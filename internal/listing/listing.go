package listing

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/scratchrank/internal/claims"
	"github.com/pfrederiksen/scratchrank/internal/game"
	"github.com/pfrederiksen/scratchrank/internal/logger"
)

var (
	// detailPath matches per-game detail page links like /scratch-off/841/
	detailPath = regexp.MustCompile(`/scratch-off/(\d+)/`)

	// gameNumberLabel matches the explicit "Game Number: 841" header text.
	// When present it overrides the URL-derived id; the pages sometimes
	// show a different number in text than in the link.
	gameNumberLabel = regexp.MustCompile(`Game\s*Number:\s*(\d+)`)
)

// Parse extracts all games from the prizes-remaining page, with
// TicketPrice left at 0 for the enricher. Relative detail links are
// resolved against baseURL. Games in the exclude set are skipped before
// their block is parsed; when the same game id appears in more than one
// block the first occurrence wins.
func Parse(r io.Reader, baseURL string, exclude claims.Set) ([]*game.Game, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	games := make([]*game.Game, 0)
	processed := make(map[string]bool)

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		link := findDetailLink(table)
		if link == nil {
			return // not a game block
		}

		href, _ := link.Attr("href")
		m := detailPath.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id := m[1]

		if processed[id] {
			return // markup artifact, first occurrence already kept
		}

		if exclude.Contains(id) {
			logger.Debug("skipping game in claims period", logger.Fields{"game": id})
			processed[id] = true
			return
		}

		g := parseBlock(table, baseURL)
		if g == nil {
			return
		}

		processed[id] = true
		games = append(games, g)
	})

	return games, nil
}

// findDetailLink returns the first anchor in the table whose href
// matches the per-game detail path, or nil.
func findDetailLink(table *goquery.Selection) *goquery.Selection {
	var found *goquery.Selection
	table.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if detailPath.MatchString(href) {
			found = a
			return false
		}
		return true
	})
	return found
}

// parseBlock parses one game table. Returns nil when the block is not a
// well-formed game: fewer than two rows, no detail link in the header
// row, or no valid prize tiers.
func parseBlock(table *goquery.Selection, baseURL string) *game.Game {
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil
	}

	header := rows.Eq(0)
	link := findDetailLink(header)
	if link == nil {
		return nil
	}

	href, _ := link.Attr("href")
	m := detailPath.FindStringSubmatch(href)
	if m == nil {
		return nil
	}
	id := m[1]
	name := strings.TrimSpace(link.Text())

	headerText := header.Text()
	if lm := gameNumberLabel.FindStringSubmatch(headerText); lm != nil {
		id = lm[1] // the explicit label is authoritative
	}

	status := game.StatusNormal
	if strings.Contains(headerText, string(game.StatusReordered)) {
		status = game.StatusReordered
	}

	detailURL := href
	if !strings.HasPrefix(href, "http") {
		detailURL = baseURL + href
	}

	tiers := parseTiers(rows)
	if len(tiers) == 0 {
		return nil
	}

	return &game.Game{
		ID:        id,
		Name:      name,
		DetailURL: detailURL,
		Status:    status,
		Tiers:     tiers,
	}
}

// parseTiers collects prize tiers from the rows after the header.
// A tier row has at least four cells and starts with a dollar amount;
// anything else is a header, footer, or decoration. Tiers with a
// non-positive value or a zero total print run are discarded.
func parseTiers(rows *goquery.Selection) []game.PrizeTier {
	tiers := make([]game.PrizeTier, 0)

	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		valueText := strings.TrimSpace(cells.Eq(0).Text())
		if !strings.HasPrefix(valueText, "$") {
			return
		}

		value := game.ParseCurrency(valueText)
		if value <= 0 {
			return
		}

		total := game.ParseCount(cells.Eq(2).Text())
		remaining := game.ParseCount(cells.Eq(3).Text())
		if total <= 0 {
			return
		}

		tiers = append(tiers, game.PrizeTier{
			Value:     value,
			Total:     total,
			Remaining: remaining,
		})
	})

	return tiers
}
