package finbrief

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"strings"
	"time"
)

const alertsDoc = "alerts"

// AlertKind discriminates the rule types.
type AlertKind string

const (
	PriceAlert      AlertKind = "price"
	NewsAlert       AlertKind = "news"
	VolatilityAlert AlertKind = "volatility"
)

// Alert is one notification rule. A rule is evaluated on every check cycle
// until it fires; a fired rule is kept, marked triggered, and skipped on
// later cycles until the user removes it.
type Alert struct {
	ID        int       `json:"id"`
	Kind      AlertKind `json:"type"`
	Symbol    string    `json:"symbol,omitempty"`
	Condition string    `json:"condition,omitempty"` // "above" or "below"
	Target    float64   `json:"target,omitempty"`
	Keywords  []string  `json:"keywords,omitempty"`
	Threshold float64   `json:"threshold_pct,omitempty"`
	Created   time.Time `json:"created"`

	Triggered        bool      `json:"triggered"`
	TriggerTime      time.Time `json:"trigger_time,omitzero"`
	TriggerPrice     float64   `json:"trigger_price,omitempty"`
	TriggerChangePct float64   `json:"trigger_change_pct,omitempty"`
	MatchedHeadlines []string  `json:"matched_headlines,omitempty"`
}

// HeadlineSource is what news alerts need from the news side.
type HeadlineSource interface {
	ScanForKeywords(keywords []string, limit int) ([]NewsItem, error)
}

// AlertBook is the JSON-persisted set of alert rules.
type AlertBook struct {
	store Store
	now   func() time.Time
}

func NewAlertBook(store Store) *AlertBook {
	return &AlertBook{store: store, now: time.Now}
}

// List returns all rules, triggered ones included. A missing or corrupt
// file is an empty book.
func (b *AlertBook) List() []Alert {
	var alerts []Alert
	if err := b.store.Load(alertsDoc, &alerts); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, alerts unreadable, starting empty: %v", err)
		}
		return nil
	}
	return alerts
}

func (b *AlertBook) save(alerts []Alert) error {
	return b.store.Save(alertsDoc, alerts)
}

func nextID(alerts []Alert) int {
	id := 0
	for _, a := range alerts {
		if a.ID > id {
			id = a.ID
		}
	}
	return id + 1
}

// AddPrice registers a rule firing when symbol trades at or past target in
// the given direction ("above" or "below").
func (b *AlertBook) AddPrice(symbol, condition string, target float64) (Alert, error) {
	if condition != "above" && condition != "below" {
		return Alert{}, fmt.Errorf("condition must be %q or %q, got %q", "above", "below", condition)
	}
	alerts := b.List()
	a := Alert{
		ID:        nextID(alerts),
		Kind:      PriceAlert,
		Symbol:    strings.ToUpper(symbol),
		Condition: condition,
		Target:    target,
		Created:   b.now(),
	}
	return a, b.save(append(alerts, a))
}

// AddNews registers a rule firing when any headline mentions one of the
// keywords.
func (b *AlertBook) AddNews(keywords []string) (Alert, error) {
	if len(keywords) == 0 {
		return Alert{}, errors.New("at least one keyword is required")
	}
	upper := make([]string, len(keywords))
	for i, kw := range keywords {
		upper[i] = strings.ToUpper(kw)
	}
	alerts := b.List()
	a := Alert{
		ID:       nextID(alerts),
		Kind:     NewsAlert,
		Keywords: upper,
		Created:  b.now(),
	}
	return a, b.save(append(alerts, a))
}

// AddVolatility registers a rule firing when symbol moves at least
// threshold percent (either direction) in a day.
func (b *AlertBook) AddVolatility(symbol string, threshold float64) (Alert, error) {
	if threshold <= 0 {
		return Alert{}, fmt.Errorf("threshold must be positive, got %v", threshold)
	}
	alerts := b.List()
	a := Alert{
		ID:        nextID(alerts),
		Kind:      VolatilityAlert,
		Symbol:    strings.ToUpper(symbol),
		Threshold: threshold,
		Created:   b.now(),
	}
	return a, b.save(append(alerts, a))
}

// Remove deletes the rule with the given id.
func (b *AlertBook) Remove(id int) error {
	alerts := b.List()
	for i, a := range alerts {
		if a.ID == id {
			return b.save(append(alerts[:i], alerts[i+1:]...))
		}
	}
	return fmt.Errorf("alert #%d not found", id)
}

// priceSatisfied: the threshold itself triggers (inclusive comparison).
func priceSatisfied(condition string, price, target float64) bool {
	switch condition {
	case "above":
		return price >= target
	case "below":
		return price <= target
	}
	return false
}

// volatilitySatisfied: a move of exactly the threshold triggers.
func volatilitySatisfied(changePct, threshold float64) bool {
	return math.Abs(changePct) >= threshold
}

// Check evaluates every active rule against live data and returns the rules
// that fired this cycle, already marked triggered and persisted. Each rule
// is evaluated independently: a quote or news failure skips that rule only.
func (b *AlertBook) Check(quotes QuoteSource, headlines HeadlineSource) ([]Alert, error) {
	alerts := b.List()
	var triggered []Alert

	for i := range alerts {
		a := &alerts[i]
		if a.Triggered {
			continue
		}
		switch a.Kind {
		case PriceAlert:
			q, err := quotes.Stock(a.Symbol)
			if err != nil {
				continue
			}
			if priceSatisfied(a.Condition, q.Price, a.Target) {
				a.Triggered = true
				a.TriggerTime = b.now()
				a.TriggerPrice = q.Price
				triggered = append(triggered, *a)
			}

		case VolatilityAlert:
			q, err := quotes.Stock(a.Symbol)
			if err != nil {
				continue
			}
			if volatilitySatisfied(q.ChangePct, a.Threshold) {
				a.Triggered = true
				a.TriggerTime = b.now()
				a.TriggerChangePct = q.ChangePct
				triggered = append(triggered, *a)
			}

		case NewsAlert:
			matches, err := headlines.ScanForKeywords(a.Keywords, 3)
			if err != nil || len(matches) == 0 {
				continue
			}
			a.Triggered = true
			a.TriggerTime = b.now()
			for _, m := range matches {
				a.MatchedHeadlines = append(a.MatchedHeadlines, m.Title)
			}
			triggered = append(triggered, *a)
		}
	}

	if len(triggered) > 0 {
		if err := b.save(alerts); err != nil {
			return triggered, fmt.Errorf("saving triggered alerts: %w", err)
		}
	}
	return triggered, nil
}
