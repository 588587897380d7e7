package ansi

import "testing"

func TestPaint(t *testing.T) {
	t.Parallel()

	got := Paint(255, 215, 0, "Au")
	want := "\033[38;2;255;215;0mAu\033[0m"
	if got != want {
		t.Errorf("Paint() = %q, want %q", got, want)
	}
}
