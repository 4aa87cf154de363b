package finbrief

import (
	"fmt"
	"sort"
	"time"
)

// Event is one economic calendar entry from the shipped template.
type Event struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Name      string `json:"name"`
	Country   string `json:"country"`
	Impact    string `json:"impact"`
	TimeLocal string `json:"time_local,omitempty"`
}

// RecurringEvent describes a regularly scheduled release, for reference.
type RecurringEvent struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Frequency string `json:"frequency"`
	Impact    string `json:"impact"`
}

type calendarReference struct {
	UpcomingEvents  []Event          `json:"upcoming_events"`
	RecurringEvents []RecurringEvent `json:"recurring_events"`
}

// Calendar serves economic events from the embedded template, cached under
// CalendarTTL (the template never changes within a run, but the cached form
// keeps the briefing path uniform).
type Calendar struct {
	cache *Cache
	ref   calendarReference
	now   func() time.Time
}

func NewCalendar(cache *Cache) (*Calendar, error) {
	c := &Calendar{cache: cache, now: time.Now}
	if err := loadReference("economic_calendar_template.json", &c.ref); err != nil {
		return nil, err
	}
	return c, nil
}

// upcomingFrom filters events to [today, today+days], optionally by
// country, sorted by date. Both bounds are inclusive. Events with a
// malformed date are skipped.
func upcomingFrom(events []Event, today time.Time, days int, country string) []Event {
	start := today.Truncate(24 * time.Hour)
	cutoff := start.AddDate(0, 0, days)

	var out []Event
	for _, e := range events {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(cutoff) {
			continue
		}
		if country != "" && e.Country != country {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Upcoming returns events within the next days, optionally filtered by
// country code (AU, US, EU, CN).
func (c *Calendar) Upcoming(days int, country string) ([]Event, error) {
	key := fmt.Sprintf("calendar_%d_%s", days, orAll(country))
	events, _, err := GetOrFetch(c.cache, key, CalendarTTL, func() ([]Event, error) {
		return upcomingFrom(c.ref.UpcomingEvents, c.now(), days, country), nil
	})
	return events, err
}

// Recurring returns the recurring event descriptions, optionally by
// country.
func (c *Calendar) Recurring(country string) []RecurringEvent {
	if country == "" {
		return c.ref.RecurringEvents
	}
	var out []RecurringEvent
	for _, e := range c.ref.RecurringEvents {
		if e.Country == country {
			out = append(out, e)
		}
	}
	return out
}

func orAll(country string) string {
	if country == "" {
		return "all"
	}
	return country
}
