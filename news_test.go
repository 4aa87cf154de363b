package finbrief

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

var testWeights = keywordWeights{
	High:   []string{"RBA", "rate cut"},
	Medium: []string{"ASX", "inflation"},
	Low:    []string{"shares"},
}

func TestScoreItem(t *testing.T) {
	tests := []struct {
		title, summary string
		want           int
	}{
		{"RBA announces rate cut", "", 6},
		{"rba holds steady", "", 3}, // matching is case-insensitive
		{"ASX closes higher", "bank shares rally", 3},
		{"Inflation eases", "", 2},
		{"Weather report", "sunny tomorrow", 0},
	}
	for _, tt := range tests {
		if got := scoreItem(tt.title, tt.summary, testWeights); got != tt.want {
			t.Errorf("scoreItem(%q, %q) = %d, want %d", tt.title, tt.summary, got, tt.want)
		}
	}
}

func TestDedupeNews(t *testing.T) {
	long := "RBA keeps cash rate on hold at 3.60% as inflation continues easing"
	items := []NewsItem{
		{Title: "ASX rallies", Source: "A"},
		{Title: "asx RALLIES", Source: "B"}, // case-folded duplicate
		{Title: long, Source: "A"},
		{Title: long + " across the board", Source: "B"}, // same first 60 chars
		{Title: "Iron ore slides", Source: "A"},
	}
	got := dedupeNews(items)
	if len(got) != 3 {
		t.Fatalf("dedupeNews() kept %d items, want 3: %v", len(got), got)
	}
	// first occurrence wins
	if got[0].Source != "A" || got[1].Source != "A" {
		t.Errorf("dedupeNews() did not keep first occurrences: %v", got)
	}
}

func TestRankNews(t *testing.T) {
	items := []NewsItem{
		{Title: "low prio", Score: 2, Priority: "low"},
		{Title: "big", Score: 5, Priority: "medium"},
		{Title: "high prio", Score: 2, Priority: "high"},
	}
	rankNews(items)
	if items[0].Title != "big" {
		t.Errorf("items[0] = %q, want highest score first", items[0].Title)
	}
	// equal scores fall back to feed priority
	if items[1].Title != "high prio" || items[2].Title != "low prio" {
		t.Errorf("priority tiebreak wrong: %v, %v", items[1].Title, items[2].Title)
	}
}

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title>
<item><title>RBA announces rate cut</title><description>Cash rate lowered</description><link>http://x/1</link></item>
<item><title>Weather report</title><description>sunny</description><link>http://x/2</link></item>
</channel></rss>`

// testScanner serves one RSS document from an httptest server.
func testScanner(t *testing.T) *NewsScanner {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDoc)
	}))
	t.Cleanup(srv.Close)

	s, err := NewNewsScanner(NewCache(NewMemStore(), nil, "news"))
	if err != nil {
		t.Fatalf("NewNewsScanner() error = %v", err)
	}
	s.ref.Feeds = map[string]feedInfo{
		"test": {Name: "Test Feed", URL: srv.URL, Category: "markets", Priority: "high"},
	}
	return s
}

func TestNewsScanner_Scan(t *testing.T) {
	s := testScanner(t)

	items, err := s.Scan("", 10)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Scan() = %d items, want 2", len(items))
	}
	// the keyword-heavy headline ranks first
	if items[0].Title != "RBA announces rate cut" {
		t.Errorf("items[0] = %q, want scored headline first", items[0].Title)
	}
	if items[0].Score == 0 {
		t.Error("scored headline has zero score")
	}
	if items[0].Source != "Test Feed" || items[0].Category != "markets" {
		t.Errorf("item metadata = %q/%q, want feed name and category", items[0].Source, items[0].Category)
	}
}

func TestNewsScanner_ScanCategoryFilter(t *testing.T) {
	s := testScanner(t)

	items, err := s.Scan("australia", 10)
	if err == nil {
		t.Errorf("Scan() of empty category = %v, want error (no items from any feed)", items)
	}
}

func TestNewsScanner_ScanForKeywords(t *testing.T) {
	s := testScanner(t)

	matched, err := s.ScanForKeywords([]string{"weather"}, 10)
	if err != nil {
		t.Fatalf("ScanForKeywords() error = %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Weather report" {
		t.Fatalf("ScanForKeywords() = %v, want the weather headline", matched)
	}
	if matched[0].MatchedKeyword != "weather" {
		t.Errorf("MatchedKeyword = %q, want %q", matched[0].MatchedKeyword, "weather")
	}

	none, err := s.ScanForKeywords([]string{"bitcoin"}, 10)
	if err != nil {
		t.Fatalf("ScanForKeywords() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ScanForKeywords() = %v, want no matches", none)
	}
}
