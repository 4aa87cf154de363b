package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// CalendarMarkdown renders upcoming events grouped by day.
func CalendarMarkdown(events []finbrief.Event) string {
	if len(events) == 0 {
		return "No upcoming events in the specified period.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	currentDate := ""
	var lines []string
	flush := func() {
		if len(lines) > 0 {
			doc.BulletList(lines...)
			lines = nil
		}
	}
	for _, e := range events {
		if e.Date != currentDate {
			flush()
			currentDate = e.Date
			heading := e.Date
			if d, err := time.Parse("2006-01-02", e.Date); err == nil {
				heading = d.Format("Mon 02 Jan 2006")
			}
			doc.H3(heading)
		}
		line := fmt.Sprintf("[%s] %s %s", strings.ToUpper(e.Impact), e.Country, e.Name)
		if e.TimeLocal != "" {
			line += fmt.Sprintf(" (%s)", e.TimeLocal)
		}
		lines = append(lines, line)
	}
	flush()

	return doc.String()
}

// RecurringMarkdown renders the recurring event reference list.
func RecurringMarkdown(events []finbrief.RecurringEvent) string {
	if len(events) == 0 {
		return "No recurring events.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Recurring Events")

	var lines []string
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("%s %s - %s (%s impact)",
			e.Country, e.Name, e.Frequency, e.Impact))
	}
	doc.BulletList(lines...)

	return doc.String()
}
