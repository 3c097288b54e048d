package tui

import (
	"strings"
	"testing"
)

func TestBadge(t *testing.T) {
	if out := Badge(defaultTheme, "Job Seeker"); !strings.Contains(out, "Job Seeker") {
		t.Errorf("badge output %q missing label", out)
	}
	if out := Badge(defaultTheme, ""); out != "" {
		t.Errorf("empty label should render nothing, got %q", out)
	}
}

func TestChipRowRendersAllChips(t *testing.T) {
	chips := []string{
		"Analyze my current resume",
		"Help with professional summary",
		"Optimize for specific job",
		"Review skills section",
	}

	out := ChipRow(defaultTheme, chips, 1)
	for _, chip := range chips {
		if !strings.Contains(out, chip) {
			t.Errorf("chip %q missing from row", chip)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 2 {
		t.Errorf("expected 4 chips over 2 lines, got %d lines", lines)
	}

	if out := ChipRow(defaultTheme, nil, -1); out != "" {
		t.Errorf("no chips should render nothing, got %q", out)
	}
}

func TestTabBar(t *testing.T) {
	out := TabBar(defaultTheme, []string{"chat", "suggestions"}, 0)
	for _, tab := range []string{"chat", "suggestions"} {
		if !strings.Contains(out, tab) {
			t.Errorf("tab %q missing from bar", tab)
		}
	}
}

func TestKeyHints(t *testing.T) {
	out := KeyHints(defaultTheme, "enter send", "esc quit")
	if !strings.Contains(out, "enter send") || !strings.Contains(out, "esc quit") {
		t.Errorf("hints missing from %q", out)
	}
	if !strings.Contains(out, "•") {
		t.Errorf("expected separator in %q", out)
	}
}
