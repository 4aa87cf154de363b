package finbrief

import (
	"github.com/oakleyfin/finbrief/yahoo"
)

// App wires the services together against one data directory. Commands
// build exactly one App per invocation; tests assemble the pieces by hand
// with in-memory stores instead.
type App struct {
	Config    Config
	Store     Store
	Limiter   *Limiter
	Market    *MarketService
	News      *NewsScanner
	Calendar  *Calendar
	Portfolio *Portfolio
	Alerts    *AlertBook
}

// NewApp builds the production wiring: a directory store under
// cfg.DataDir, a file-backed rate limiter shared by all market fetches,
// and one cache document per data class.
func NewApp(cfg Config) (*App, error) {
	store := NewDirStore(cfg.DataDir)
	limiter := NewLimiter(store, cfg.RateLimitCalls, cfg.RateLimitPeriod)

	market, err := NewMarketService(NewCache(store, limiter, "market_cache"), yahoo.NewClient(), cfg)
	if err != nil {
		return nil, err
	}
	news, err := NewNewsScanner(NewCache(store, nil, "news_cache"))
	if err != nil {
		return nil, err
	}
	calendar, err := NewCalendar(NewCache(store, nil, "calendar_cache"))
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Store:     store,
		Limiter:   limiter,
		Market:    market,
		News:      news,
		Calendar:  calendar,
		Portfolio: NewPortfolio(store, cfg.Currency),
		Alerts:    NewAlertBook(store),
	}, nil
}
