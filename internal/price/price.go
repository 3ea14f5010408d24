package price

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/scratchrank/internal/fetch"
)

var (
	// ticketPricePattern matches "Ticket Price $5" with loose whitespace
	ticketPricePattern = regexp.MustCompile(`(?i)Ticket\s*Price\s*\$(\d+)`)

	// dollarAmount pulls the first bare "$N" out of a text node
	dollarAmount = regexp.MustCompile(`\$(\d+)`)
)

// Enricher resolves ticket prices by fetching per-game detail pages,
// one at a time, with a fixed pacing delay before each request.
type Enricher struct {
	client *fetch.Client
	delay  time.Duration
}

// NewEnricher creates an Enricher using the given fetch client and
// inter-request pacing delay.
func NewEnricher(client *fetch.Client, delay time.Duration) *Enricher {
	return &Enricher{client: client, delay: delay}
}

// Price fetches the game's detail page and extracts its ticket price.
// Returns 0 with a nil error when the page has no recognizable price;
// a non-nil error means the page could not be fetched at all.
func (e *Enricher) Price(ctx context.Context, detailURL string) (float64, error) {
	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	body, err := e.client.Get(ctx, detailURL)
	if err != nil {
		return 0, err
	}

	return Extract(strings.NewReader(body))
}

// Extract parses a detail page and returns the ticket price, or 0 when
// no price can be found. The primary pattern runs over the full page
// text; if it misses, block-level nodes containing the literal phrase
// "Ticket Price" are scanned for the first dollar amount.
func Extract(r io.Reader) (float64, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("parsing HTML: %w", err)
	}

	if m := ticketPricePattern.FindStringSubmatch(doc.Text()); m != nil {
		return parseDollars(m[1]), nil
	}

	var found float64
	doc.Find("div, span, p, td").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.Contains(text, "Ticket Price") {
			return true
		}
		if m := dollarAmount.FindStringSubmatch(text); m != nil {
			found = parseDollars(m[1])
			return false
		}
		return true
	})

	return found, nil
}

func parseDollars(digits string) float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}
