package yahoo

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Spot returns the latest regular-market price for symbol, reading only the
// chart metadata. Cheaper than History when no change computation is
// needed.
func (c *Client) Spot(symbol string) (float64, error) {
	var jobj any
	if err := c.jwget(c.chartURL(symbol, "1d"), &jobj); err != nil {
		return 0, fmt.Errorf("spot %q: %w", symbol, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("spot %q: parsing %q: %w", symbol, path, err)
	}
	// jsonpath may hand back a single-element list rather than the scalar.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	price, ok := jval.(float64)
	if !ok || price == 0 {
		return 0, fmt.Errorf("spot %q: no price in response", symbol)
	}
	return price, nil
}
