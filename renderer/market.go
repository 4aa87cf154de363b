package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/oakleyfin/finbrief"
)

// ForexMarkdown renders a single pair with its day range.
func ForexMarkdown(q finbrief.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	doc.H2(name)
	doc.PlainText(fmt.Sprintf("%s (%s)%s",
		formatPrice(q.Price, 4), formatChange(q.ChangePct), staleMark(q.Stale)))
	doc.PlainText(fmt.Sprintf("High: %s | Low: %s",
		formatPrice(q.High, 4), formatPrice(q.Low, 4)))

	return doc.String()
}

// QuoteMarkdown renders a single quote with decimals adapted to its
// magnitude.
func QuoteMarkdown(q finbrief.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := q.Name
	if name == "" {
		name = q.Symbol
	}
	d := priceDecimals(q.Price)
	doc.H2(fmt.Sprintf("%s (%s)", name, q.Symbol))
	doc.PlainText(fmt.Sprintf("%s (%s)%s",
		formatPrice(q.Price, d), formatChange(q.ChangePct), staleMark(q.Stale)))
	doc.PlainText(fmt.Sprintf("High: %s | Low: %s | Volume: %d",
		formatPrice(q.High, d), formatPrice(q.Low, d), q.Volume))
	if q.Sector != "" {
		doc.PlainText("Sector: " + q.Sector)
	}

	return doc.String()
}

// QuotesMarkdown renders a titled table of quotes (indices, commodities,
// forex dashboard).
func QuotesMarkdown(title string, quotes []finbrief.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	doc.Table(quotesTable(quotes))

	return doc.String()
}

func quotesTable(quotes []finbrief.Quote) md.TableSet {
	t := md.TableSet{
		Header: []string{"Instrument", "Price", "Day"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
	}
	for _, q := range quotes {
		name := q.Name
		if name == "" {
			name = q.Symbol
		}
		t.Rows = append(t.Rows, []string{
			name + staleMark(q.Stale),
			formatPrice(q.Price, priceDecimals(q.Price)),
			formatChange(q.ChangePct),
		})
	}
	return t
}

// MoversMarkdown renders the top gainers and losers tables.
func MoversMarkdown(m finbrief.Movers) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Top Gainers")
	doc.Table(moversTable(m.Gainers))
	doc.H2("Top Losers")
	doc.Table(moversTable(m.Losers))

	return doc.String()
}

func moversTable(quotes []finbrief.Quote) md.TableSet {
	t := md.TableSet{
		Header: []string{"Stock", "Price", "Day"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
	}
	for _, q := range quotes {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%s (%s)", q.Name, q.Symbol),
			formatPrice(q.Price, 2),
			formatChange(q.ChangePct),
		})
	}
	return t
}
