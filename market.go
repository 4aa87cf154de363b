package finbrief

import (
	"fmt"
	"sort"

	"github.com/oakleyfin/finbrief/yahoo"
	"github.com/shopspring/decimal"
)

// Quote is the snapshot of one instrument, computed from the last two daily
// bars. Stale is set when the value came from the cache past its freshness
// window.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name,omitempty"`
	Sector    string  `json:"sector,omitempty"`
	Price     float64 `json:"price"`
	PrevClose float64 `json:"previous_close"`
	ChangePct float64 `json:"change_pct"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    int64   `json:"volume"`
	Stale     bool    `json:"-"`
}

// BarSource is the live quote backend, satisfied by *yahoo.Client.
type BarSource interface {
	History(symbol, rng string) ([]yahoo.Bar, error)
}

// QuoteSource is what alert checking and portfolio valuation need from the
// market side.
type QuoteSource interface {
	Stock(symbol string) (Quote, error)
}

// Movers are the day's biggest gainers and losers from the watched ASX
// list.
type Movers struct {
	Gainers []Quote `json:"gainers"`
	Losers  []Quote `json:"losers"`
}

// MarketService serves quotes through the fetch cache: a cache hit within
// MarketTTL costs nothing, everything else goes through the rate limiter
// with a stale fallback of up to 24h.
type MarketService struct {
	cache  *Cache
	source BarSource
	cfg    Config

	forex forexReference
	asx   asxReference
}

func NewMarketService(cache *Cache, source BarSource, cfg Config) (*MarketService, error) {
	s := &MarketService{cache: cache, source: source, cfg: cfg}
	if err := loadReference("forex_pairs.json", &s.forex); err != nil {
		return nil, err
	}
	if err := loadReference("asx_codes.json", &s.asx); err != nil {
		return nil, err
	}
	return s, nil
}

// quoteFromBars computes price, previous close and day change from the last
// two bars. The change is computed in decimals to avoid float drift on
// small forex moves.
func quoteFromBars(symbol string, bars []yahoo.Bar) Quote {
	last := bars[len(bars)-1]
	prev := last
	if len(bars) > 1 {
		prev = bars[len(bars)-2]
	}
	q := Quote{
		Symbol:    symbol,
		Price:     last.Close,
		PrevClose: prev.Close,
		High:      last.High,
		Low:       last.Low,
		Volume:    last.Volume,
	}
	if prev.Close != 0 {
		change := decimal.NewFromFloat(last.Close).
			Sub(decimal.NewFromFloat(prev.Close)).
			Div(decimal.NewFromFloat(prev.Close)).
			Mul(decimal.NewFromInt(100))
		q.ChangePct = change.InexactFloat64()
	}
	return q
}

// fetch returns the quote for symbol, cached under "<symbol>_<period>".
func (s *MarketService) fetch(symbol, period string) (Quote, error) {
	key := fmt.Sprintf("%s_%s", symbol, period)
	q, freshness, err := GetOrFetch(s.cache, key, MarketTTL, func() (Quote, error) {
		bars, err := s.source.History(symbol, period)
		if err != nil {
			return Quote{}, err
		}
		return quoteFromBars(symbol, bars), nil
	})
	if err != nil {
		return Quote{}, err
	}
	q.Stale = freshness == Stale
	return q, nil
}

// Forex returns the quote for a currency pair; empty pair means the
// configured default (AUD/USD).
func (s *MarketService) Forex(pair, period string) (Quote, error) {
	if pair == "" {
		pair = s.cfg.DefaultForexPair
	}
	if period == "" {
		period = "5d"
	}
	q, err := s.fetch(pair, period)
	if err != nil {
		return Quote{}, err
	}
	if info, ok := s.forex.Primary[pair]; ok {
		q.Name = info.Name
	} else if info, ok := s.forex.Crosses[pair]; ok {
		q.Name = info.Name
	}
	return q, nil
}

// ForexDashboard returns all primary AUD pairs and the major crosses.
// Symbols that cannot be quoted right now are dropped.
func (s *MarketService) ForexDashboard() []Quote {
	var quotes []Quote
	for _, group := range []map[string]instrumentInfo{s.forex.Primary, s.forex.Crosses} {
		for _, symbol := range sortedKeys(group) {
			q, err := s.fetch(symbol, "5d")
			if err != nil {
				continue
			}
			q.Name = group[symbol].Name
			quotes = append(quotes, q)
		}
	}
	return quotes
}

var indexNames = map[string]string{
	"^AXJO": "ASX 200",
	"^GSPC": "S&P 500",
	"^DJI":  "Dow Jones",
	"^IXIC": "NASDAQ",
	"^FTSE": "FTSE 100",
	"^N225": "Nikkei 225",
}

var commodityNames = map[string]string{
	"GC=F": "Gold",
	"SI=F": "Silver",
	"CL=F": "Crude Oil (WTI)",
	"HG=F": "Copper",
}

// Indices returns the watched world indices.
func (s *MarketService) Indices() []Quote {
	return s.watchlist(s.cfg.WatchedIndices, indexNames)
}

// Commodities returns the watched commodity futures.
func (s *MarketService) Commodities() []Quote {
	return s.watchlist(s.cfg.WatchedCommodities, commodityNames)
}

func (s *MarketService) watchlist(symbols []string, names map[string]string) []Quote {
	var quotes []Quote
	for _, symbol := range symbols {
		q, err := s.fetch(symbol, "5d")
		if err != nil {
			continue
		}
		if name, ok := names[symbol]; ok {
			q.Name = name
		} else {
			q.Name = symbol
		}
		quotes = append(quotes, q)
	}
	return quotes
}

// Stock returns the quote for a single symbol, annotated with reference
// name and sector when known.
func (s *MarketService) Stock(symbol string) (Quote, error) {
	q, err := s.fetch(symbol, "5d")
	if err != nil {
		return Quote{}, err
	}
	if info, ok := s.asx.Stocks[symbol]; ok {
		q.Name = info.Name
		q.Sector = info.Sector
	}
	return q, nil
}

// Sector returns the reference sector for symbol, or "Other".
func (s *MarketService) Sector(symbol string) string {
	if info, ok := s.asx.Stocks[symbol]; ok && info.Sector != "" {
		return info.Sector
	}
	return "Other"
}

// Movers scans the ASX reference list and returns the limit biggest
// gainers and losers by day change.
func (s *MarketService) Movers(limit int) Movers {
	var all []Quote
	for _, symbol := range sortedKeys(s.asx.Stocks) {
		q, err := s.Stock(symbol)
		if err != nil {
			continue
		}
		all = append(all, q)
	}
	return rankMovers(all, limit)
}

// rankMovers splits quotes into top gainers and losers, each sorted by day
// change.
func rankMovers(all []Quote, limit int) Movers {
	var m Movers
	for _, q := range all {
		switch {
		case q.ChangePct > 0:
			m.Gainers = append(m.Gainers, q)
		case q.ChangePct < 0:
			m.Losers = append(m.Losers, q)
		}
	}
	sort.Slice(m.Gainers, func(i, j int) bool { return m.Gainers[i].ChangePct > m.Gainers[j].ChangePct })
	sort.Slice(m.Losers, func(i, j int) bool { return m.Losers[i].ChangePct < m.Losers[j].ChangePct })
	if limit > 0 && len(m.Gainers) > limit {
		m.Gainers = m.Gainers[:limit]
	}
	if limit > 0 && len(m.Losers) > limit {
		m.Losers = m.Losers[:limit]
	}
	return m
}

// SpotSource is optionally implemented by quote backends that can serve a
// bare latest price without history.
type SpotSource interface {
	Spot(symbol string) (float64, error)
}

// Live returns the latest market price for symbol, bypassing the cache but
// not the rate limiter. Backends without spot support fall back to the
// cached quote path.
func (s *MarketService) Live(symbol string) (float64, error) {
	spot, ok := s.source.(SpotSource)
	if !ok {
		q, err := s.Stock(symbol)
		if err != nil {
			return 0, err
		}
		return q.Price, nil
	}
	if s.cache.limiter != nil && !s.cache.limiter.TryAcquire() {
		return 0, fmt.Errorf("live %q: %w", symbol, ErrRateLimited)
	}
	return spot.Spot(symbol)
}

func sortedKeys(m map[string]instrumentInfo) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
