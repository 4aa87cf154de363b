package finbrief

import (
	"fmt"
	"time"
)

// BriefingReport is the assembled data for the morning brief. Sections that
// could not be built carry a notice instead of aborting the report; empty
// sections are simply omitted by the renderer.
type BriefingReport struct {
	Date time.Time

	Triggered   []Alert
	Forex       []Quote // default pair first, then the rest of the dashboard
	Indices     []Quote
	Commodities []Quote
	News        []NewsItem
	Events      []Event
	Positions   []Position
	TotalCost   Money
	TotalValue  Money
	TotalPnL    Money
	TotalPnLPct float64

	Notices []string
}

// Briefing assembles the full morning report from the individual services.
type Briefing struct {
	Market    *MarketService
	News      *NewsScanner
	Calendar  *Calendar
	Portfolio *Portfolio
	Alerts    *AlertBook

	now func() time.Time
}

func NewBriefing(app *App) *Briefing {
	return &Briefing{
		Market:    app.Market,
		News:      app.News,
		Calendar:  app.Calendar,
		Portfolio: app.Portfolio,
		Alerts:    app.Alerts,
		now:       time.Now,
	}
}

func (b *Briefing) notice(r *BriefingReport, section string, err error) {
	r.Notices = append(r.Notices, fmt.Sprintf("%s unavailable: %v", section, err))
}

// Build gathers every section. Each one is independent: a failure turns
// into a notice and the rest of the brief still renders.
func (b *Briefing) Build() *BriefingReport {
	r := &BriefingReport{Date: b.now()}

	if triggered, err := b.Alerts.Check(b.Market, b.News); err != nil {
		b.notice(r, "Alerts", err)
	} else {
		r.Triggered = triggered
	}

	if q, err := b.Market.Forex("", ""); err != nil {
		b.notice(r, "Forex", err)
	} else {
		r.Forex = append(r.Forex, q)
		for _, pair := range b.Market.ForexDashboard() {
			if pair.Symbol == q.Symbol {
				continue
			}
			r.Forex = append(r.Forex, pair)
			if len(r.Forex) == 5 {
				break
			}
		}
	}

	r.Indices = b.Market.Indices()
	r.Commodities = b.Market.Commodities()

	if news, err := b.News.Scan("", 5); err != nil {
		b.notice(r, "News", err)
	} else {
		r.News = news
	}

	if events, err := b.Calendar.Upcoming(3, ""); err != nil {
		b.notice(r, "Calendar", err)
	} else {
		r.Events = events
	}

	r.Positions = b.Portfolio.Valuation(b.Market)
	r.TotalCost, r.TotalValue, r.TotalPnL, r.TotalPnLPct = b.Portfolio.Totals(r.Positions)

	return r
}
