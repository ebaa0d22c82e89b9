package uttt

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestStartingPosition(t *testing.T) {
	b, err := FromNotation(StartingPosition)
	if err != nil {
		t.Fatal(err)
	}

	if b != NewBoard() {
		t.Errorf("starting notation differs from NewBoard: %s", b.Notation())
	}

	want := "9/9/9/9/9/9/9/9/9 ......... x -"
	if n := NewBoard().Notation(); n != want {
		t.Errorf("Notation()=%q, want %q", n, want)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		b := NewBoard()
		plies := r.Intn(60)
		for j := 0; j < plies && !b.IsGameOver(); j++ {
			moves := b.LegalMoves()
			b = b.Apply(moves[r.Intn(len(moves))])
		}

		t.Run(fmt.Sprintf("Notation-%s", strings.ReplaceAll(b.Notation(), "/", "|")), func(t *testing.T) {
			parsed, err := FromNotation(b.Notation())
			if err != nil {
				t.Fatal(err)
			}
			if parsed != b {
				t.Errorf("round trip mismatch:\n got %s\nwant %s", parsed.Notation(), b.Notation())
			}
		})
	}
}

func TestNotationDerivesMeta(t *testing.T) {
	b, err := FromNotation("xxx6/ooo6/xoxxoxoxo/9/9/9/9/9/9 - x -")
	if err != nil {
		t.Fatal(err)
	}

	expected := []PositionState{PositionCrossWon, PositionCircleWon, PositionDraw}
	for i, state := range expected {
		if got := b.Meta(0, i); got != state {
			t.Errorf("meta(0,%d)=%v, want %v", i, got, state)
		}
	}

	if b.Turn() != 6+9 {
		t.Errorf("turn=%d, want %d", b.Turn(), 15)
	}
}

func TestInvalidNotation(t *testing.T) {
	invalid := []string{
		"",
		"9/9/9/9/9/9/9/9 - x -",
		"9/9/9/9/9/9/9/9/9 - z -",
		"9/9/9/9/9/9/9/9/8 - x -",
		"9/9/9/9/9/9/9/9/9x - x -",
		"9/9/9/9/9/9/9/9/q8 - x -",
		"9/9/9/9/9/9/9/9/9 ....... x -",
		"9/9/9/9/9/9/9/9/9 ........? x -",
		"9/9/9/9/9/9/9/9/9 - x 4,1,1,1",
		"9/9/9/9/9/9/9/9/9 - x 1,1,1",
	}

	for _, n := range invalid {
		b := NewBoard().Apply(NewMove(1, 1, 1, 1))
		before := b
		err := b.FromNotation(n)
		if err == nil {
			t.Errorf("expected error for %q", n)
			continue
		}
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("error for %q does not wrap ErrInvalidNotation: %v", n, err)
		}
		if b != before {
			t.Errorf("board modified by failed FromNotation(%q)", n)
		}
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		str  string
		move Move
	}{
		{"1,1,1,1", NewMove(0, 0, 0, 0)},
		{"1,2,2,3", NewMove(0, 1, 1, 2)},
		{" 3, 3, 3, 3 ", NewMove(2, 2, 2, 2)},
	}

	for _, c := range cases {
		m, err := ParseMove(c.str)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", c.str, err)
		}
		if m != c.move {
			t.Errorf("ParseMove(%q)=%v, want %v", c.str, m, c.move)
		}
		if back, _ := ParseMove(m.String()); back != m {
			t.Errorf("String() of %v does not parse back", m)
		}
	}

	for _, str := range []string{"", "1,1,1", "0,1,1,1", "1,1,1,4", "a,b,c,d", "1,1,1,1,1"} {
		if _, err := ParseMove(str); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) err=%v, want ErrInvalidMove", str, err)
		}
	}

	if MoveNone.String() != "(none)" {
		t.Errorf("MoveNone.String()=%q", MoveNone.String())
	}
}
