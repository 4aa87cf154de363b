package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// AlertsMarkdown renders the configured rules.
func AlertsMarkdown(alerts []finbrief.Alert) string {
	if len(alerts) == 0 {
		return "No active alerts. Use 'fin alerts add' to create one.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Alerts")

	var lines []string
	for _, a := range alerts {
		status := "active"
		if a.Triggered {
			status = "TRIGGERED"
		}
		switch a.Kind {
		case finbrief.PriceAlert:
			lines = append(lines, fmt.Sprintf("#%d [%s] %s %s %s (price alert)",
				a.ID, status, a.Symbol, a.Condition, formatPrice(a.Target, priceDecimals(a.Target))))
		case finbrief.NewsAlert:
			lines = append(lines, fmt.Sprintf("#%d [%s] keywords: %s (news alert)",
				a.ID, status, strings.Join(a.Keywords, ", ")))
		case finbrief.VolatilityAlert:
			lines = append(lines, fmt.Sprintf("#%d [%s] %s >%.2f%% move (volatility alert)",
				a.ID, status, a.Symbol, a.Threshold))
		}
	}
	doc.BulletList(lines...)

	return doc.String()
}

// TriggeredMarkdown renders the rules that fired in a check cycle.
func TriggeredMarkdown(triggered []finbrief.Alert) string {
	if len(triggered) == 0 {
		return ""
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Alerts Triggered")

	for _, a := range triggered {
		switch a.Kind {
		case finbrief.PriceAlert:
			doc.PlainText(fmt.Sprintf("#%d %s hit %s (target: %s %s)",
				a.ID, a.Symbol, formatPrice(a.TriggerPrice, priceDecimals(a.TriggerPrice)),
				a.Condition, formatPrice(a.Target, priceDecimals(a.Target))))
		case finbrief.VolatilityAlert:
			doc.PlainText(fmt.Sprintf("#%d %s moved %s (threshold: %.2f%%)",
				a.ID, a.Symbol, formatChange(a.TriggerChangePct), a.Threshold))
		case finbrief.NewsAlert:
			doc.PlainText(fmt.Sprintf("#%d news match for: %s", a.ID, strings.Join(a.Keywords, ", ")))
			if len(a.MatchedHeadlines) > 0 {
				doc.BulletList(a.MatchedHeadlines...)
			}
		}
	}

	return doc.String()
}
