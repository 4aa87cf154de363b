package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// BriefingMarkdown assembles the morning brief from the report. Sections
// without data are omitted; notices for failed sections come last. The
// caller applies Truncate for channels with a length ceiling.
func BriefingMarkdown(r *finbrief.BriefingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Morning Finance Brief — %s", r.Date.Format("Monday 02 Jan 2006")))

	var sections []string

	if len(r.Triggered) > 0 {
		sections = append(sections, TriggeredMarkdown(r.Triggered))
	}
	if len(r.Forex) > 0 {
		sections = append(sections, ForexMarkdown(r.Forex[0]))
		if len(r.Forex) > 1 {
			sections = append(sections, QuotesMarkdown("Forex", r.Forex[1:]))
		}
	}
	if len(r.Indices) > 0 {
		sections = append(sections, QuotesMarkdown("Global Indices", r.Indices))
	}
	if len(r.Commodities) > 0 {
		sections = append(sections, QuotesMarkdown("Commodities", r.Commodities))
	}
	if len(r.News) > 0 {
		sections = append(sections, NewsMarkdown(r.News, false))
	}
	if len(r.Events) > 0 {
		var cal bytes.Buffer
		calDoc := md.NewMarkdown(&cal)
		calDoc.H2("Economic Calendar (next 3 days)")
		sections = append(sections, calDoc.String(), CalendarMarkdown(r.Events))
	}
	if len(r.Positions) > 0 {
		sections = append(sections, PortfolioMarkdown(r.Positions, r.TotalCost, r.TotalValue, r.TotalPnL, r.TotalPnLPct))
	}
	for _, notice := range r.Notices {
		sections = append(sections, fmt.Sprintf("[%s]", notice))
	}

	return doc.String() + "\n" + strings.Join(sections, "\n")
}
