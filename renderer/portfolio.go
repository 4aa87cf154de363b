package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// PortfolioMarkdown renders the holdings with live P&L and the totals.
func PortfolioMarkdown(positions []finbrief.Position, cost, value, pnl finbrief.Money, pnlPct float64) string {
	if len(positions) == 0 {
		return "Portfolio is empty. Use 'fin portfolio add <symbol> <shares> <price>' to add holdings.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Portfolio")

	t := md.TableSet{
		Header: []string{"Stock", "Shares", "Price", "Value", "P&L", "Day"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
	}
	for _, pos := range positions {
		if !pos.Priced {
			t.Rows = append(t.Rows, []string{
				pos.Symbol, pos.Shares.String(), "N/A", "N/A", "N/A", "N/A",
			})
			continue
		}
		t.Rows = append(t.Rows, []string{
			pos.Symbol + staleMark(pos.Stale),
			pos.Shares.String(),
			formatPrice(pos.CurrentPrice.InexactFloat64(), 2),
			formatPrice(pos.MarketValue.InexactFloat64(), 2),
			fmt.Sprintf("%s (%s)", signedAmount(pos.PnL.InexactFloat64()), formatChange(pos.PnLPct)),
			formatChange(pos.DayChangePct),
		})
	}
	doc.Table(t)

	doc.PlainText(fmt.Sprintf("Total Cost: %s", cost))
	doc.PlainText(fmt.Sprintf("Total Value: %s", value))
	doc.PlainText(fmt.Sprintf("Total P&L: %s (%s)", pnl.SignedString(), formatChange(pnlPct)))

	return doc.String()
}

func signedAmount(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// SectorsMarkdown renders the allocation breakdown with a crude bar per
// sector (one # per 5%).
func SectorsMarkdown(weights []finbrief.SectorWeight) string {
	if len(weights) == 0 {
		return "No sector data available.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Sector Allocation")

	for _, w := range weights {
		bar := strings.Repeat("#", int(w.Pct/5))
		doc.PlainText(fmt.Sprintf("%-30s %5.1f%% %s", w.Sector, w.Pct, bar))
	}

	return doc.String()
}
