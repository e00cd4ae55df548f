package life

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderSpinner(t *testing.T) {
	u := spinner()

	var want strings.Builder
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if col == 1 && row >= 1 && row <= 3 {
				want.WriteRune(GlyphAlive)
			} else {
				want.WriteRune(GlyphDead)
			}
		}
		want.WriteByte('\n')
	}

	if diff := cmp.Diff(want.String(), u.String()); diff != "" {
		t.Fatalf("rendered board mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTracksState(t *testing.T) {
	u := NewEmpty(3, 2)
	if got, want := u.String(), "◻◻◻\n◻◻◻\n"; got != want {
		t.Fatalf("empty board rendered as %q, want %q", got, want)
	}

	u.Toggle(1, 2)
	if got, want := u.String(), "◻◻◻\n◻◻◼\n"; got != want {
		t.Fatalf("board rendered as %q, want %q", got, want)
	}
}
