package finbrief

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const portfolioDoc = "portfolio"

// Holding is one position as entered by the user: a symbol, a share count
// and the average cost per share.
type Holding struct {
	Symbol    string          `json:"symbol"`
	Shares    decimal.Decimal `json:"shares"`
	CostPrice decimal.Decimal `json:"cost_price"`
}

// Position is a holding joined with its live quote. Priced is false when no
// quote could be obtained; the cost side is still populated.
type Position struct {
	Holding
	CostBasis    decimal.Decimal
	Priced       bool
	CurrentPrice decimal.Decimal
	MarketValue  decimal.Decimal
	PnL          decimal.Decimal
	PnLPct       float64
	DayChangePct float64
	Stale        bool
}

// Portfolio is the JSON-persisted set of holdings.
type Portfolio struct {
	store    Store
	currency string
}

func NewPortfolio(store Store, currency string) *Portfolio {
	return &Portfolio{store: store, currency: currency}
}

// Currency is the reporting currency for totals.
func (p *Portfolio) Currency() string { return p.currency }

type portfolioDocument struct {
	Holdings []Holding `json:"holdings"`
}

// Holdings returns the stored holdings. A missing file is an empty
// portfolio; a corrupt file is treated the same way, with a warning.
func (p *Portfolio) Holdings() []Holding {
	var doc portfolioDocument
	if err := p.store.Load(portfolioDoc, &doc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, portfolio unreadable, starting empty: %v", err)
		}
		return nil
	}
	return doc.Holdings
}

func (p *Portfolio) save(holdings []Holding) error {
	return p.store.Save(portfolioDoc, portfolioDocument{Holdings: holdings})
}

// Add creates a holding, or merges into an existing one with an
// average-cost update. Returns the resulting holding and whether it merged.
func (p *Portfolio) Add(symbol string, shares, costPrice decimal.Decimal) (Holding, bool, error) {
	symbol = strings.ToUpper(symbol)
	if !shares.IsPositive() {
		return Holding{}, false, fmt.Errorf("shares must be positive, got %s", shares)
	}
	if costPrice.IsNegative() {
		return Holding{}, false, fmt.Errorf("cost price cannot be negative, got %s", costPrice)
	}

	holdings := p.Holdings()
	for i, h := range holdings {
		if h.Symbol != symbol {
			continue
		}
		totalCost := h.Shares.Mul(h.CostPrice).Add(shares.Mul(costPrice))
		h.Shares = h.Shares.Add(shares)
		h.CostPrice = totalCost.Div(h.Shares)
		holdings[i] = h
		return h, true, p.save(holdings)
	}

	h := Holding{Symbol: symbol, Shares: shares, CostPrice: costPrice}
	holdings = append(holdings, h)
	return h, false, p.save(holdings)
}

// Remove deletes shares from a holding. A zero or negative share count, or
// one at least as large as the position, removes the holding entirely.
// Returns the remaining holding; removedAll reports whether the position is
// gone.
func (p *Portfolio) Remove(symbol string, shares decimal.Decimal) (remaining Holding, removedAll bool, err error) {
	symbol = strings.ToUpper(symbol)
	holdings := p.Holdings()
	for i, h := range holdings {
		if h.Symbol != symbol {
			continue
		}
		if !shares.IsPositive() || shares.GreaterThanOrEqual(h.Shares) {
			holdings = append(holdings[:i], holdings[i+1:]...)
			return Holding{Symbol: symbol}, true, p.save(holdings)
		}
		h.Shares = h.Shares.Sub(shares)
		holdings[i] = h
		return h, false, p.save(holdings)
	}
	return Holding{}, false, fmt.Errorf("%s not found in portfolio", symbol)
}

// Valuation joins every holding with its live quote. Quote failures leave
// the position unpriced rather than failing the valuation.
func (p *Portfolio) Valuation(quotes QuoteSource) []Position {
	holdings := p.Holdings()
	positions := make([]Position, 0, len(holdings))
	for _, h := range holdings {
		pos := Position{Holding: h, CostBasis: h.Shares.Mul(h.CostPrice)}
		if q, err := quotes.Stock(h.Symbol); err == nil {
			pos.Priced = true
			pos.Stale = q.Stale
			pos.CurrentPrice = decimal.NewFromFloat(q.Price)
			pos.MarketValue = h.Shares.Mul(pos.CurrentPrice)
			pos.PnL = pos.MarketValue.Sub(pos.CostBasis)
			if !pos.CostBasis.IsZero() {
				pos.PnLPct = pos.PnL.Div(pos.CostBasis).Mul(decimal.NewFromInt(100)).InexactFloat64()
			}
			pos.DayChangePct = q.ChangePct
		}
		positions = append(positions, pos)
	}
	return positions
}

// Totals sums the cost and priced market value across positions.
func (p *Portfolio) Totals(positions []Position) (cost, value, pnl Money, pnlPct float64) {
	var costD, valueD decimal.Decimal
	for _, pos := range positions {
		costD = costD.Add(pos.CostBasis)
		if pos.Priced {
			valueD = valueD.Add(pos.MarketValue)
		}
	}
	pnlD := valueD.Sub(costD)
	if !costD.IsZero() {
		pnlPct = pnlD.Div(costD).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return M(costD, p.currency), M(valueD, p.currency), M(pnlD, p.currency), pnlPct
}

// SectorWeight is one slice of the allocation breakdown.
type SectorWeight struct {
	Sector string
	Pct    float64
}

// SectorSource maps a symbol to its sector, satisfied by *MarketService.
type SectorSource interface {
	Sector(symbol string) string
}

// SectorAllocation breaks the priced market value down by sector, as
// percentages, largest first.
func SectorAllocation(positions []Position, sectors SectorSource) []SectorWeight {
	total := decimal.Zero
	bySector := make(map[string]decimal.Decimal)
	for _, pos := range positions {
		if !pos.Priced {
			continue
		}
		sector := sectors.Sector(pos.Symbol)
		bySector[sector] = bySector[sector].Add(pos.MarketValue)
		total = total.Add(pos.MarketValue)
	}
	if total.IsZero() {
		return nil
	}
	weights := make([]SectorWeight, 0, len(bySector))
	for sector, v := range bySector {
		pct := v.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		weights = append(weights, SectorWeight{Sector: sector, Pct: pct})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Pct != weights[j].Pct {
			return weights[i].Pct > weights[j].Pct
		}
		return weights[i].Sector < weights[j].Sector
	})
	return weights
}
