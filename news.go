package finbrief

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// NewsItem is one scored headline from the configured RSS feeds.
type NewsItem struct {
	Title          string    `json:"title"`
	Summary        string    `json:"summary,omitempty"`
	Link           string    `json:"link,omitempty"`
	Published      time.Time `json:"published,omitzero"`
	Source         string    `json:"source"`
	Category       string    `json:"category"`
	Priority       string    `json:"priority"`
	Score          int       `json:"score"`
	MatchedKeyword string    `json:"matched_keyword,omitempty"`
	Stale          bool      `json:"-"`
}

type feedInfo struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

type keywordWeights struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

type feedsReference struct {
	Feeds           map[string]feedInfo `json:"feeds"`
	KeywordWeights  keywordWeights      `json:"keyword_weights"`
	MaxItemsPerFeed int                 `json:"max_items_per_feed"`
	MaxTotalItems   int                 `json:"max_total_items"`
}

// NewsScanner aggregates the configured RSS feeds, scores items by keyword
// relevance and caches the scored list under NewsTTL. Feed fetching is not
// rate limited (each feed is polled at most once per TTL window anyway).
type NewsScanner struct {
	cache  *Cache
	parser *gofeed.Parser
	ref    feedsReference
}

func NewNewsScanner(cache *Cache) (*NewsScanner, error) {
	s := &NewsScanner{cache: cache, parser: gofeed.NewParser()}
	s.parser.Client = &http.Client{Timeout: 10 * time.Second}
	if err := loadReference("rss_feeds.json", &s.ref); err != nil {
		return nil, err
	}
	return s, nil
}

// scoreItem weighs keyword hits in title+summary: 3 per high keyword, 2 per
// medium, 1 per low. Matching is case-insensitive containment.
func scoreItem(title, summary string, w keywordWeights) int {
	text := strings.ToUpper(title + " " + summary)
	score := 0
	for _, word := range w.High {
		if strings.Contains(text, strings.ToUpper(word)) {
			score += 3
		}
	}
	for _, word := range w.Medium {
		if strings.Contains(text, strings.ToUpper(word)) {
			score += 2
		}
	}
	for _, word := range w.Low {
		if strings.Contains(text, strings.ToUpper(word)) {
			score += 1
		}
	}
	return score
}

// parseFeed fetches one feed; failures yield an empty slice so a dead feed
// never takes the whole scan down.
func (s *NewsScanner) parseFeed(info feedInfo, maxItems int) []NewsItem {
	feed, err := s.parser.ParseURL(info.URL)
	if err != nil {
		return nil
	}
	var items []NewsItem
	for i, entry := range feed.Items {
		if i >= maxItems {
			break
		}
		item := NewsItem{
			Title:    entry.Title,
			Summary:  entry.Description,
			Link:     entry.Link,
			Source:   info.Name,
			Category: info.Category,
			Priority: info.Priority,
		}
		if entry.PublishedParsed != nil {
			item.Published = entry.PublishedParsed.UTC()
		}
		item.Score = scoreItem(item.Title, item.Summary, s.ref.KeywordWeights)
		items = append(items, item)
	}
	return items
}

// dedupeNews drops items whose first 60 title characters (case folded)
// repeat an earlier item. Keeps first occurrence, preserves order.
func dedupeNews(items []NewsItem) []NewsItem {
	seen := make(map[string]bool)
	unique := items[:0:0]
	for _, item := range items {
		key := strings.ToLower(item.Title)
		if len(key) > 60 {
			key = key[:60]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique
}

var priorityOrder = map[string]int{"high": 0, "medium": 1, "low": 2}

// rankNews sorts by score descending, then feed priority.
func rankNews(items []NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		pi, ok := priorityOrder[items[i].Priority]
		if !ok {
			pi = 1
		}
		pj, ok := priorityOrder[items[j].Priority]
		if !ok {
			pj = 1
		}
		return pi < pj
	})
}

// Scan returns the top limit items across all feeds, optionally filtered by
// category, by relevance. The full scored list is cached for NewsTTL;
// stale results are marked per item.
func (s *NewsScanner) Scan(category string, limit int) ([]NewsItem, error) {
	key := "news_all"
	if category != "" {
		key = "news_" + category
	}
	items, freshness, err := GetOrFetch(s.cache, key, NewsTTL, func() ([]NewsItem, error) {
		maxPerFeed := s.ref.MaxItemsPerFeed
		if maxPerFeed <= 0 {
			maxPerFeed = 10
		}
		var all []NewsItem
		for _, id := range sortedFeedIDs(s.ref.Feeds) {
			info := s.ref.Feeds[id]
			if category != "" && info.Category != category {
				continue
			}
			all = append(all, s.parseFeed(info, maxPerFeed)...)
		}
		all = dedupeNews(all)
		rankNews(all)
		if n := s.ref.MaxTotalItems; n > 0 && len(all) > n {
			all = all[:n]
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("no news items from any feed")
		}
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	if freshness == Stale {
		for i := range items {
			items[i].Stale = true
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ScanForKeywords returns cached news items mentioning any of the keywords,
// for the news alert rules. Matching is case-insensitive on title+summary.
func (s *NewsScanner) ScanForKeywords(keywords []string, limit int) ([]NewsItem, error) {
	all, err := s.Scan("", 50)
	if err != nil {
		return nil, err
	}
	var matched []NewsItem
	for _, item := range all {
		text := strings.ToUpper(item.Title + " " + item.Summary)
		for _, kw := range keywords {
			if strings.Contains(text, strings.ToUpper(kw)) {
				item.MatchedKeyword = kw
				matched = append(matched, item)
				break
			}
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func sortedFeedIDs(feeds map[string]feedInfo) []string {
	ids := make([]string, 0, len(feeds))
	for id := range feeds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
