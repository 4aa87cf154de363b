// Package renderer turns finbrief reports into markdown strings. The
// markdown is consumed either by a terminal renderer or verbatim by the
// external messaging agent.
package renderer

import (
	"fmt"
	"strings"
)

// formatPrice renders a price with the given number of decimals.
func formatPrice(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

// priceDecimals picks 4 decimals for small (forex-like) values, 2
// otherwise.
func priceDecimals(v float64) int {
	if v != 0 && v < 10 {
		return 4
	}
	return 2
}

// formatChange renders a percent change with an explicit sign.
func formatChange(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// staleMark appends the stale marker used across the reports.
func staleMark(stale bool) string {
	if stale {
		return " *"
	}
	return ""
}

// Truncate caps text at max characters, cutting on a newline boundary when
// one lies in the second half, and appends a truncation marker.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	const marker = "\n\n... (truncated)"
	cut := text[:max-len(marker)]
	if i := strings.LastIndexByte(cut, '\n'); i > max/2 {
		cut = cut[:i]
	}
	return cut + marker
}
