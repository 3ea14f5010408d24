package claims

import (
	"os"
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, html string, now time.Time) Set {
	t.Helper()
	set, err := Parse(strings.NewReader(html), now)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return set
}

const claimsRow = `
<html><body>
<table>
  <tr><th>Game</th><th>Name</th><th>Price</th><th>End Date</th><th>Claim Deadline</th></tr>
  <tr><td>841</td><td>Carolina Cash</td><td>$5</td><td>Jan 01, 2024</td><td>Jan 31, 2024</td></tr>
</table>
</body></html>`

func TestParse_ClaimsWindow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"after claim deadline", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"on claim deadline inclusive", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), true},
		{"on end date exclusive", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"before end date", time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustParse(t, claimsRow, tt.now)
			if got := set.Contains("841"); got != tt.want {
				t.Errorf("Contains(841) = %v, want %v (now=%s)", got, tt.want, tt.now.Format("Jan 02, 2006"))
			}
		})
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	html := `
<html><body>
<table>
  <tr><td>100</td><td>Too Few Cells</td><td>$5</td><td>Jan 01, 2024</td></tr>
  <tr><td>200</td><td>Bad Dates</td><td>$5</td><td>soon</td><td>later</td></tr>
  <tr><td>300</td><td>Good Row</td><td>$5</td><td>Jan 01, 2024</td><td>Jan 31, 2024</td></tr>
</table>
<table>
  <tr><td>400</td><td>Second Table</td><td>$10</td><td>Jan 05, 2024</td><td>Feb 05, 2024</td></tr>
</table>
</body></html>`

	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	set := mustParse(t, html, now)

	if len(set) != 2 {
		t.Fatalf("Parse() set size = %d, want 2 (%v)", len(set), set)
	}
	for _, id := range []string{"300", "400"} {
		if !set.Contains(id) {
			t.Errorf("Contains(%s) = false, want true", id)
		}
	}
	for _, id := range []string{"100", "200"} {
		if set.Contains(id) {
			t.Errorf("Contains(%q) = true, want false", id)
		}
	}
}

func TestParse_KeepsBlankIDRow(t *testing.T) {
	// A row with an empty id cell but valid in-window dates still counts;
	// only cell shape and date parsing gate acceptance.
	html := `
<html><body>
<table>
  <tr><td></td><td>No ID</td><td>$5</td><td>Jan 01, 2024</td><td>Jan 31, 2024</td></tr>
</table>
</body></html>`

	set := mustParse(t, html, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if !set.Contains("") {
		t.Error("Contains(\"\") = false, want true")
	}
}

func TestParse_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_ending.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	// 812 is mid-window, 790 has not ended yet, 765's deadline passed,
	// and the colspan footer row is skipped.
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	set := mustParse(t, string(data), now)

	if len(set) != 1 {
		t.Fatalf("Parse() set size = %d, want 1 (%v)", len(set), set)
	}
	if !set.Contains("812") {
		t.Error("Contains(812) = false, want true")
	}
}

func TestParse_NoTables(t *testing.T) {
	set := mustParse(t, `<html><body><p>Nothing ending.</p></body></html>`, time.Now())
	if len(set) != 0 {
		t.Errorf("Parse() set size = %d, want 0", len(set))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"Jan 01, 2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Jan 1, 2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{" Dec 25, 2025 ", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01", time.Time{}},
		{"", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseDate(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
