package tui

import (
	"strings"
	"testing"
)

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits exactly", "hello", 5, "hello"},
		{"fits with room", "hi", 10, "hi"},
		{"truncated", "hello world", 8, "hello..."},
		{"truncated to 4", "abcdef", 4, "a..."},
		{"maxLen 3 no ellipsis", "abcdef", 3, "abc"},
		{"maxLen 0", "abcdef", 0, ""},
		{"empty string", "", 5, ""},
		{"accented name", "Révolution Chimique", 10, "Révolut..."},
		{"multibyte runes fit", "Moyen-Âge", 9, "Moyen-Âge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateWithEllipsis(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestCompactWidthBreakpoint(t *testing.T) {
	t.Parallel()
	if CompactWidth <= MinWidth {
		t.Errorf("CompactWidth (%d) should be greater than MinWidth (%d)", CompactWidth, MinWidth)
	}
}

func TestCardsPerLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow keeps one", 10, 1},
		{"two cards", CardWidth*2 + 3, 2},
		{"capped at row size", 500, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := cardsPerLine(tt.width, 6); got != tt.want {
				t.Errorf("cardsPerLine(%d, 6) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestViewTooSmall(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", MinWidth - 1, 24},
		{"short", 80, MinHeight - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			m.Width = tt.width
			m.Height = tt.height

			view := m.View()
			if !strings.Contains(view, "Terminal too small") {
				t.Errorf("expected 'Terminal too small' message, got: %q", view)
			}
			if !strings.Contains(view, "Minimum:") {
				t.Error("expected minimum dimensions in message")
			}
		})
	}
}
