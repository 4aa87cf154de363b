// Package finbrief implements the core of a personal-finance notification
// CLI: market data (forex, indices, commodities, stocks) and news fetching
// behind a file-backed cache with stale fallback, a token-bucket rate
// limiter on outbound calls, a small JSON-persisted portfolio, and simple
// price/news/volatility alert rules.
//
// Every data section is evaluated in isolation so that one unreachable
// source degrades its own section of a report instead of aborting the run.
// The package is designed for one-shot synchronous invocations; scheduling
// is left to an external cron-like caller.
package finbrief
