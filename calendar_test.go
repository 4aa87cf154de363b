package finbrief

import (
	"testing"
	"time"
)

var calendarFixture = []Event{
	{Date: "2026-09-01", Name: "RBA Interest Rate Decision", Country: "AU", Impact: "high"},
	{Date: "2026-09-01", Name: "Caixin Manufacturing PMI", Country: "CN", Impact: "medium"},
	{Date: "2026-09-05", Name: "US Non-Farm Payrolls", Country: "US", Impact: "high"},
	{Date: "2026-09-15", Name: "AU Employment Change", Country: "AU", Impact: "high"},
	{Date: "not-a-date", Name: "Broken", Country: "AU", Impact: "low"},
}

func TestUpcomingFrom_Window(t *testing.T) {
	today := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

	got := upcomingFrom(calendarFixture, today, 7, "")
	if len(got) != 3 {
		t.Fatalf("upcomingFrom(7d) = %d events, want 3: %v", len(got), got)
	}
	// today's events are included even though the clock is past midnight
	if got[0].Date != "2026-09-01" {
		t.Errorf("got[0].Date = %s, want today included", got[0].Date)
	}

	// the last window day is inclusive
	got = upcomingFrom(calendarFixture, today, 14, "")
	if len(got) != 4 {
		t.Errorf("upcomingFrom(14d) = %d events, want 4 (boundary day included)", len(got))
	}
}

func TestUpcomingFrom_CountryFilter(t *testing.T) {
	today := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	got := upcomingFrom(calendarFixture, today, 30, "AU")
	if len(got) != 2 {
		t.Fatalf("upcomingFrom(AU) = %d events, want 2: %v", len(got), got)
	}
	for _, e := range got {
		if e.Country != "AU" {
			t.Errorf("event %q has country %s, want AU", e.Name, e.Country)
		}
	}
}

func TestUpcomingFrom_PastEventsExcluded(t *testing.T) {
	today := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	got := upcomingFrom(calendarFixture, today, 30, "")
	if len(got) != 1 || got[0].Name != "AU Employment Change" {
		t.Errorf("upcomingFrom() = %v, want only the future event", got)
	}
}

func TestCalendar_Upcoming(t *testing.T) {
	cal, err := NewCalendar(NewCache(NewMemStore(), nil, "calendar"))
	if err != nil {
		t.Fatalf("NewCalendar() error = %v", err)
	}
	cal.ref.UpcomingEvents = calendarFixture
	cal.now = func() time.Time { return time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC) }

	events, err := cal.Upcoming(7, "AU")
	if err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}
	if len(events) != 1 || events[0].Name != "RBA Interest Rate Decision" {
		t.Errorf("Upcoming() = %v, want the RBA decision", events)
	}
}

func TestCalendar_Recurring(t *testing.T) {
	cal, err := NewCalendar(NewCache(NewMemStore(), nil, "calendar"))
	if err != nil {
		t.Fatalf("NewCalendar() error = %v", err)
	}

	all := cal.Recurring("")
	if len(all) == 0 {
		t.Fatal("Recurring() empty, want shipped schedule")
	}
	for _, e := range cal.Recurring("AU") {
		if e.Country != "AU" {
			t.Errorf("Recurring(AU) returned %s event %q", e.Country, e.Name)
		}
	}
}
