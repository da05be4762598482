package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vovakirdan/road-rush/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "red", core.ColorRed)
	s.DrawTextColor(4, 0, "blue", core.ColorBlue)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	for _, want := range []string{"red", "blue", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("got %d newlines, want 1", lines)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]table.Column{{Title: "Name", Width: 8}, {Title: "Size", Width: 8}},
		[]table.Row{{"sedan", "50x80"}, {"truck", "60x100"}},
	)

	for _, want := range []string{"Name", "Size", "sedan", "truck", "60x100"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
