package renderer

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 4096); got != "short" {
		t.Errorf("Truncate() changed text under the limit: %q", got)
	}

	long := strings.Repeat("line of briefing text\n", 400)
	got := Truncate(long, 4096)
	if len(got) > 4096 {
		t.Errorf("Truncate() = %d chars, want <= 4096", len(got))
	}
	if !strings.HasSuffix(got, "... (truncated)") {
		t.Errorf("Truncate() missing marker: %q", got[len(got)-30:])
	}
	// the cut must land on a line boundary, not mid-word
	body := strings.TrimSuffix(got, "\n\n... (truncated)")
	if !strings.HasSuffix(body, "line of briefing text") {
		t.Errorf("Truncate() cut mid-line: %q", body[len(body)-30:])
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatPrice(0.6543, 4); got != "0.6543" {
		t.Errorf("formatPrice() = %q", got)
	}
	if got := priceDecimals(0.6543); got != 4 {
		t.Errorf("priceDecimals(0.6543) = %d, want 4", got)
	}
	if got := priceDecimals(2400); got != 2 {
		t.Errorf("priceDecimals(2400) = %d, want 2", got)
	}
	if got := formatChange(1.5); got != "+1.50%" {
		t.Errorf("formatChange(1.5) = %q", got)
	}
	if got := formatChange(-0.25); got != "-0.25%" {
		t.Errorf("formatChange(-0.25) = %q", got)
	}
}
