package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/oakleyfin/finbrief"
	"github.com/shopspring/decimal"
)

func TestBriefingMarkdown(t *testing.T) {
	r := &finbrief.BriefingReport{
		Date: time.Date(2026, time.September, 1, 7, 0, 0, 0, time.UTC),
		Forex: []finbrief.Quote{
			{Symbol: "AUDUSD=X", Name: "AUD/USD", Price: 0.6543, ChangePct: 0.66},
			{Symbol: "EURUSD=X", Name: "EUR/USD", Price: 1.0840, ChangePct: -0.12},
		},
		Indices: []finbrief.Quote{{Symbol: "^AXJO", Name: "ASX 200", Price: 8100.5, ChangePct: 0.3}},
		News:    []finbrief.NewsItem{{Title: "RBA holds cash rate", Source: "ABC News Business", Category: "australia"}},
		Events:  []finbrief.Event{{Date: "2026-09-02", Name: "RBA Interest Rate Decision", Country: "AU", Impact: "high"}},
		Notices: []string{"Commodities unavailable: rate limit exceeded"},
	}

	got := BriefingMarkdown(r)

	wants := []string{
		"# Morning Finance Brief — Tuesday 01 Sep 2026",
		"## AUD/USD",
		"## Forex", // the rest of the dashboard, without the lead pair
		"EUR/USD",
		"## Global Indices",
		"RBA holds cash rate",
		"## Economic Calendar (next 3 days)",
		"RBA Interest Rate Decision",
		"[Commodities unavailable: rate limit exceeded]",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("BriefingMarkdown() missing %q", want)
		}
	}
	// empty sections leave no heading behind
	for _, absent := range []string{"## Commodities", "## Portfolio", "## Alerts Triggered"} {
		if strings.Contains(got, absent) {
			t.Errorf("BriefingMarkdown() contains %q for an empty section", absent)
		}
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	positions := []finbrief.Position{
		{
			Holding:      finbrief.Holding{Symbol: "BHP.AX", Shares: decimal.NewFromInt(100)},
			CostBasis:    decimal.NewFromInt(4000),
			Priced:       true,
			CurrentPrice: decimal.NewFromInt(42),
			MarketValue:  decimal.NewFromInt(4200),
			PnL:          decimal.NewFromInt(200),
			PnLPct:       5,
			DayChangePct: 1.2,
		},
		{
			Holding:   finbrief.Holding{Symbol: "GONE.AX", Shares: decimal.NewFromInt(10)},
			CostBasis: decimal.NewFromInt(50),
		},
	}
	cost := finbrief.M(4050, "AUD")
	value := finbrief.M(4200, "AUD")
	pnl := finbrief.M(150, "AUD")

	got := PortfolioMarkdown(positions, cost, value, pnl, 3.7)

	for _, want := range []string{"## Portfolio", "BHP.AX", "+200.00 (+5.00%)", "N/A", "Total Cost:", "Total P&L: +"} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestPortfolioMarkdown_Empty(t *testing.T) {
	got := PortfolioMarkdown(nil, finbrief.Money{}, finbrief.Money{}, finbrief.Money{}, 0)
	if !strings.Contains(got, "Portfolio is empty") {
		t.Errorf("PortfolioMarkdown(nil) = %q", got)
	}
}

func TestSectorsMarkdown(t *testing.T) {
	got := SectorsMarkdown([]finbrief.SectorWeight{
		{Sector: "Materials", Pct: 70},
		{Sector: "Financials", Pct: 30},
	})
	if !strings.Contains(got, "Materials") || !strings.Contains(got, "70.0%") {
		t.Errorf("SectorsMarkdown() = %q", got)
	}
	// one # per 5 percent
	if !strings.Contains(got, strings.Repeat("#", 14)) {
		t.Errorf("SectorsMarkdown() missing bar for 70%%:\n%s", got)
	}
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []finbrief.Alert{
		{ID: 1, Kind: finbrief.PriceAlert, Symbol: "BHP.AX", Condition: "below", Target: 40},
		{ID: 2, Kind: finbrief.NewsAlert, Keywords: []string{"RBA", "RATE CUT"}, Triggered: true},
		{ID: 3, Kind: finbrief.VolatilityAlert, Symbol: "CBA.AX", Threshold: 2.5},
	}
	got := AlertsMarkdown(alerts)

	for _, want := range []string{"#1 [active] BHP.AX below 40.00", "#2 [TRIGGERED] keywords: RBA, RATE CUT", "#3 [active] CBA.AX >2.50% move"} {
		if !strings.Contains(got, want) {
			t.Errorf("AlertsMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestTriggeredMarkdown(t *testing.T) {
	triggered := []finbrief.Alert{
		{ID: 1, Kind: finbrief.PriceAlert, Symbol: "BHP.AX", Condition: "below", Target: 40, TriggerPrice: 39.5},
		{ID: 2, Kind: finbrief.NewsAlert, Keywords: []string{"RBA"}, MatchedHeadlines: []string{"RBA holds cash rate"}},
	}
	got := TriggeredMarkdown(triggered)

	for _, want := range []string{"## Alerts Triggered", "#1 BHP.AX hit 39.50", "RBA holds cash rate"} {
		if !strings.Contains(got, want) {
			t.Errorf("TriggeredMarkdown() missing %q:\n%s", want, got)
		}
	}
	if TriggeredMarkdown(nil) != "" {
		t.Error("TriggeredMarkdown(nil) not empty")
	}
}

func TestCalendarMarkdown_GroupsByDay(t *testing.T) {
	events := []finbrief.Event{
		{Date: "2026-09-01", Name: "RBA Interest Rate Decision", Country: "AU", Impact: "high", TimeLocal: "14:30 AEST"},
		{Date: "2026-09-01", Name: "Caixin Manufacturing PMI", Country: "CN", Impact: "medium"},
		{Date: "2026-09-05", Name: "US Non-Farm Payrolls", Country: "US", Impact: "high"},
	}
	got := CalendarMarkdown(events)

	for _, want := range []string{"### Tue 01 Sep 2026", "[HIGH] AU RBA Interest Rate Decision (14:30 AEST)", "### Sat 05 Sep 2026", "[HIGH] US US Non-Farm Payrolls"} {
		if !strings.Contains(got, want) {
			t.Errorf("CalendarMarkdown() missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "### Tue 01 Sep 2026") != 1 {
		t.Error("CalendarMarkdown() repeats the day heading")
	}
}

func TestNewsMarkdown_Verbose(t *testing.T) {
	items := []finbrief.NewsItem{
		{Title: "RBA holds cash rate", Source: "ABC News Business", Category: "australia", Score: 3, Link: "http://x/1"},
	}

	plain := NewsMarkdown(items, false)
	if strings.Contains(plain, "[score:") || strings.Contains(plain, "http://x/1") {
		t.Errorf("NewsMarkdown(verbose=false) leaks detail:\n%s", plain)
	}

	verbose := NewsMarkdown(items, true)
	for _, want := range []string{"1. RBA holds cash rate [score:3]", "ABC News Business | australia", "http://x/1"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("NewsMarkdown(verbose) missing %q:\n%s", want, verbose)
		}
	}

	stale := NewsMarkdown([]finbrief.NewsItem{{Title: "t", Stale: true}}, false)
	if !strings.Contains(stale, "(cached)") {
		t.Errorf("NewsMarkdown() of stale item missing marker:\n%s", stale)
	}
}
