package claims

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Set holds the game ids currently between their sale end date and
// claim deadline. Valid for a single run.
type Set map[string]struct{}

// Contains reports whether the game id is in the claims period.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Parse extracts the claims-period set from the games-ending page.
// Every table row with at least five cells is considered: cell 0 is
// the game id, cell 3 the sale end date, cell 4 the claim deadline,
// both in "Jan 02, 2006" form. A game is in the set when
// end < now <= claim. Rows with missing cells or unparseable dates are
// decorative markup and are skipped.
func Parse(r io.Reader, now time.Time) (Set, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	set := make(Set)
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 5 {
				return
			}

			id := strings.TrimSpace(cells.Eq(0).Text())

			endDate := parseDate(cells.Eq(3).Text())
			claimDate := parseDate(cells.Eq(4).Text())
			if endDate.IsZero() || claimDate.IsZero() {
				return
			}

			if endDate.Before(now) && !now.After(claimDate) {
				set[id] = struct{}{}
			}
		})
	})

	return set, nil
}

// parseDate parses dates like "Jan 01, 2024" or "Jan 1, 2024".
// Returns the zero time when the text is not a date.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse("Jan 02, 2006", s)
	if err == nil {
		return t
	}

	t, err = time.Parse("Jan 2, 2006", s)
	if err == nil {
		return t
	}

	return time.Time{}
}
