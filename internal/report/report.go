package report

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/pfrederiksen/scratchrank/internal/game"
	"github.com/pfrederiksen/scratchrank/internal/rank"
)

const (
	// HighPriceFloor divides the two price bands
	HighPriceFloor = 10

	// BandLimit is how many rows each view shows
	BandLimit = 10
)

// Row is one rendered table row
type Row struct {
	Rank         int
	Name         string
	Number       string
	URL          string
	Reordered    bool
	Price        string
	TopPrize     string
	TopPct       string
	TopRemaining int
	Diff         string
	DiffClass    string
}

// Page is the data handed to the HTML template
type Page struct {
	UpdateTime string
	HighBand   []Row
	HighTotal  int
	LowBand    []Row
	LowTotal   int
	TopPrizes  []Row
	TopTotal   int
}

// Render produces the full HTML document for the ranked entries.
// Entries without a resolved ticket price are never rendered. The two
// price bands preserve the primary differential order; the top-prizes
// view is computed independently by rank.MostTopPrizes.
func Render(entries []rank.Entry, generatedAt time.Time) (string, error) {
	priced := make([]rank.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Game.TicketPrice > 0 {
			priced = append(priced, e)
		}
	}

	var high, low []rank.Entry
	for _, e := range priced {
		if e.Game.TicketPrice >= HighPriceFloor {
			high = append(high, e)
		} else {
			low = append(low, e)
		}
	}
	topPrizes := rank.MostTopPrizes(priced)

	page := Page{
		UpdateTime: generatedAt.Format("January 02, 2006 at 03:04 PM") + " UTC",
		HighBand:   buildRows(high, BandLimit),
		HighTotal:  len(high),
		LowBand:    buildRows(low, BandLimit),
		LowTotal:   len(low),
		TopPrizes:  buildRows(topPrizes, BandLimit),
		TopTotal:   len(topPrizes),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return buf.String(), nil
}

func buildRows(entries []rank.Entry, limit int) []Row {
	if len(entries) > limit {
		entries = entries[:limit]
	}

	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		top := e.Game.TopTier()

		diffClass := "neutral"
		switch {
		case e.Differential > 0:
			diffClass = "positive"
		case e.Differential < 0:
			diffClass = "negative"
		}

		row := Row{
			Rank:      i + 1,
			Name:      e.Game.Name,
			Number:    e.Game.ID,
			URL:       e.Game.DetailURL,
			Reordered: e.Game.Status == game.StatusReordered,
			Price:     FormatPrice(e.Game.TicketPrice),
			TopPct:    fmt.Sprintf("%.1f%%", e.TopPct),
			Diff:      fmt.Sprintf("%+.1f%%", e.Differential),
			DiffClass: diffClass,
		}
		if top != nil {
			row.TopPrize = FormatPrize(top.Value)
			row.TopRemaining = top.Remaining
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatPrice renders a ticket price as "$5" for whole-dollar amounts
// and "$2.50" otherwise.
func FormatPrice(price float64) string {
	if price == math.Trunc(price) {
		return fmt.Sprintf("$%d", int64(price))
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatPrize abbreviates large prize values: $1.5M at a million and
// up, $50K at a thousand and up, $500 below that.
func FormatPrize(value float64) string {
	switch {
	case value >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case value >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

var pageTemplate = template.Must(template.New("report").Parse(pageHTML))
