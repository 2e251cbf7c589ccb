package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init screen: %s", err)
	}
	s.SetSize(40, 20)
	return s
}

func TestSquareAt(t *testing.T) {
	tests := []struct {
		x, y int
		flip bool
		want chess.Square
		ok   bool
	}{
		{2, 0, false, chess.A8, true},
		{3, 0, false, chess.A8, true},
		{17, 7, false, chess.H1, true},
		{10, 6, false, chess.E2, true},
		{2, 0, true, chess.H1, true},
		{17, 7, true, chess.A8, true},
		{10, 6, true, chess.D7, true},
		{0, 0, false, 0, false},
		{18, 0, false, 0, false},
		{5, 8, false, 0, false},
	}

	for _, test := range tests {
		got, ok := SquareAt(0, 0, test.x, test.y, test.flip)
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("SquareAt(%d, %d, flip=%v) = %s, %v; want %s, %v", test.x, test.y, test.flip, got, ok, test.want, test.ok)
		}
	}

	// The offset of the board is taken into account
	if got, ok := SquareAt(5, 3, 7, 3, false); !ok || got != chess.A8 {
		t.Errorf("expected a8 at the board origin, got %s", got)
	}
}

func TestDrawBoard(t *testing.T) {
	s := newTestScreen(t)
	game := chess.NewGame()
	board := game.Position().Board()

	DrawBoard(s, 1, 1, board, ThemeBasic, Highlights{}, false)

	checks := []struct {
		x, y int
		want string
	}{
		{1, 1, "8"},
		{1, 8, "1"},
		{3, 9, "a"},
		{17, 9, "h"},
		{3, 1, chess.BlackRook.String()},
		{11, 1, chess.BlackKing.String()},
		{11, 8, chess.WhiteKing.String()},
		{3, 5, " "},
	}
	for _, c := range checks {
		r, _, _, _ := s.GetContent(c.x, c.y)
		if string(r) != c.want {
			t.Errorf("cell %d,%d: expected %q, got %q", c.x, c.y, c.want, string(r))
		}
	}

	DrawBoard(s, 1, 1, board, ThemeBasic, Highlights{}, true)
	if r, _, _, _ := s.GetContent(3, 1); string(r) != chess.WhiteRook.String() {
		t.Errorf("flipped board: expected white rook top left, got %q", string(r))
	}
	if r, _, _, _ := s.GetContent(3, 9); string(r) != "h" {
		t.Errorf("flipped board: expected file h first, got %q", string(r))
	}
}

func TestSquareBg(t *testing.T) {
	th := ThemeBasic
	if squareBg(chess.A1, th, Highlights{}) != th.SquareDark {
		t.Error("a1 should be dark")
	}
	if squareBg(chess.H1, th, Highlights{}) != th.SquareLight {
		t.Error("h1 should be light")
	}

	hl := Highlights{
		Last:     [2]chess.Square{chess.E2, chess.E4},
		HasLast:  true,
		Drag:     chess.E4,
		Dragging: true,
		Check:    chess.E8,
		InCheck:  true,
	}
	if squareBg(chess.E2, th, hl) != th.SquareHigh {
		t.Error("last move square not highlighted")
	}
	if squareBg(chess.E4, th, hl) != th.SquareDrag {
		t.Error("dragged square should win over the last move")
	}
	if squareBg(chess.E8, th, hl) != th.SquareCheck {
		t.Error("king in check not highlighted")
	}
}

func TestHighlightsFor(t *testing.T) {
	game := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	if hl := highlightsFor(game); hl.HasLast || hl.InCheck {
		t.Errorf("unexpected highlights before any move: %+v", hl)
	}

	for _, mv := range []string{"e2e4", "f7f6", "d1h5"} {
		if err := game.MoveStr(mv); err != nil {
			t.Fatalf("failed to play %s: %s", mv, err)
		}
	}
	hl := highlightsFor(game)
	if !hl.HasLast || hl.Last != [2]chess.Square{chess.D1, chess.H5} {
		t.Errorf("unexpected last move %+v", hl.Last)
	}
	if !hl.InCheck || hl.Check != chess.E8 {
		t.Errorf("expected the black king in check on e8, got %+v", hl)
	}
}
