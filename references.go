package finbrief

import (
	"embed"
	"encoding/json"
	"fmt"
)

// Reference data shipped with the binary: instrument watchlists, RSS feed
// definitions and the economic calendar template.
//
//go:embed references/*.json
var referencesFS embed.FS

func loadReference(name string, v any) error {
	b, err := referencesFS.ReadFile("references/" + name)
	if err != nil {
		return fmt.Errorf("reference %q: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("reference %q: %w", name, err)
	}
	return nil
}

// instrumentInfo is the per-symbol metadata in the reference files.
type instrumentInfo struct {
	Name   string `json:"name"`
	Sector string `json:"sector,omitempty"`
}

type forexReference struct {
	Primary map[string]instrumentInfo `json:"primary"`
	Crosses map[string]instrumentInfo `json:"crosses"`
}

type asxReference struct {
	Stocks map[string]instrumentInfo `json:"stocks"`
}
