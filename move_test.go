package cubelab

import "testing"

func TestMoveNotationRoundTrip(t *testing.T) {
	cases := []struct {
		move Move
		s    string
	}{
		{Move{AxisX, 0, 1}, "x0+"},
		{Move{AxisY, 2, -1}, "y2-"},
		{Move{AxisZ, 9, 1}, "z9+"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.s {
			t.Errorf("%v.Notation() = %q, want %q", c.move, got, c.s)
		}
		parsed, err := ParseMove(c.s)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", c.s, err)
			continue
		}
		if parsed != c.move {
			t.Errorf("ParseMove(%q) = %v, want %v", c.s, parsed, c.move)
		}
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "x", "x0", "w0+", "x-1+", "xa+", "y2*"} {
		if _, err := ParseMove(s); err != ErrInvalidNotation {
			t.Errorf("ParseMove(%q) err = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	m := Move{Axis: AxisY, Layer: 3, Dir: 1}
	inv := m.Inverse()
	if inv.Axis != m.Axis || inv.Layer != m.Layer || inv.Dir != -1 {
		t.Errorf("inverse of %v is %v", m, inv)
	}
	if inv.Inverse() != m {
		t.Error("double inverse should be identity")
	}
}

func TestFormatAndParseMoves(t *testing.T) {
	moves := []Move{
		{AxisX, 0, 1},
		{AxisY, 1, -1},
		{AxisZ, 2, 1},
	}
	s := FormatMoves(moves)
	if s != "x0+ y1- z2+" {
		t.Errorf("FormatMoves = %q", s)
	}

	back, err := ParseMoves(s + " junk")
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(moves) {
		t.Fatalf("parsed %d moves, want %d", len(back), len(moves))
	}
	for i := range moves {
		if back[i] != moves[i] {
			t.Errorf("move %d: %v != %v", i, back[i], moves[i])
		}
	}
	if FormatMoves(nil) != "" {
		t.Error("empty move list should format to empty string")
	}
}
