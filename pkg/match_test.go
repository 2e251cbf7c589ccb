package pkg

import (
	"testing"
	"time"

	"github.com/notnil/chess"
)

type recorder chan StatusMessage

func (r recorder) Notify(msg StatusMessage) {
	r <- msg
}

func (r recorder) next(t *testing.T) StatusMessage {
	t.Helper()
	select {
	case msg := <-r:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
	return StatusMessage{}
}

func (r recorder) none(t *testing.T) {
	t.Helper()
	select {
	case msg := <-r:
		t.Fatalf("unexpected notification %q", msg.Text)
	case <-time.After(50 * time.Millisecond):
	}
}

func newTestMatch(t *testing.T, fen string) (*Match, recorder) {
	t.Helper()
	rec := make(recorder, 8)
	m, err := NewMatch(MatchConfig{FEN: fen}, rec)
	if err != nil {
		t.Fatalf("failed to create match: %s", err)
	}
	return m, rec
}

// play drops every move and fails on the first rejected one
func play(t *testing.T, m *Match, rec recorder, moves ...[2]chess.Square) StatusMessage {
	t.Helper()
	var last StatusMessage
	for _, mv := range moves {
		if !m.Drop(mv[0], mv[1]) {
			t.Fatalf("move %s%s rejected", mv[0], mv[1])
		}
		last = rec.next(t)
	}
	return last
}

func TestDropLegalMove(t *testing.T) {
	m, rec := newTestMatch(t, "")
	before := m.FEN()

	if !m.Drop(chess.E2, chess.E4) {
		t.Fatal("e2e4 rejected")
	}
	if m.FEN() == before {
		t.Errorf("position not updated: %s", m.FEN())
	}
	if p := m.Game().Position().Board().Piece(chess.E4); p != chess.WhitePawn {
		t.Errorf("expected white pawn on e4, got %s", p)
	}
	if m.Turn() != Black {
		t.Errorf("expected black to move, got %s", m.Turn())
	}

	msg := rec.next(t)
	if msg.Text != "Black to move" || msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}
}

func TestDropReplacesGameHandle(t *testing.T) {
	m, rec := newTestMatch(t, "")
	old := m.Game()
	oldFEN := old.FEN()

	play(t, m, rec, [2]chess.Square{chess.G1, chess.F3})

	if m.Game() == old {
		t.Error("game handle mutated in place")
	}
	if old.FEN() != oldFEN {
		t.Errorf("previous handle changed: %s", old.FEN())
	}
}

func TestDropIllegalMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Square
	}{
		{"too far", chess.E2, chess.E5},
		{"wrong side", chess.E7, chess.E5},
		{"same square", chess.E2, chess.E2},
		{"own piece", chess.E1, chess.E2},
		{"empty square", chess.D4, chess.D5},
		{"blocked knight", chess.G1, chess.E2},
	}

	m, rec := newTestMatch(t, "")
	before := m.FEN()
	for _, test := range tests {
		if m.Drop(test.from, test.to) {
			t.Errorf("%s: move %s%s accepted", test.name, test.from, test.to)
		}
		if m.FEN() != before {
			t.Errorf("%s: position changed to %s", test.name, m.FEN())
		}
	}
	rec.none(t)
}

func TestDropCheck(t *testing.T) {
	m, rec := newTestMatch(t, "")

	msg := play(t, m, rec,
		[2]chess.Square{chess.E2, chess.E4},
		[2]chess.Square{chess.F7, chess.F6},
		[2]chess.Square{chess.D1, chess.H5},
	)

	if msg.Text != "Check! Black to move" || !msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}
}

func TestDropCheckmate(t *testing.T) {
	m, rec := newTestMatch(t, "")

	msg := play(t, m, rec,
		[2]chess.Square{chess.F2, chess.F3},
		[2]chess.Square{chess.E7, chess.E5},
		[2]chess.Square{chess.G2, chess.G4},
		[2]chess.Square{chess.D8, chess.H4},
	)

	if msg.Text != "Checkmate! Black wins" || !msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}
	if m.Outcome() != chess.BlackWon {
		t.Errorf("expected black to win, got %s", m.Outcome())
	}

	before := m.FEN()
	if m.Drop(chess.A2, chess.A3) {
		t.Error("move accepted after checkmate")
	}
	if m.FEN() != before {
		t.Errorf("position changed after checkmate: %s", m.FEN())
	}
	rec.none(t)
}

func TestDropStalemate(t *testing.T) {
	m, rec := newTestMatch(t, "7k/5K2/8/6Q1/8/8/8/8 w - - 0 1")

	msg := play(t, m, rec, [2]chess.Square{chess.G5, chess.G6})

	if msg.Text != "Draw by stalemate" || !msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}
	if m.Drop(chess.H8, chess.H7) {
		t.Error("move accepted after stalemate")
	}
}

func TestDropPromotion(t *testing.T) {
	const fen = "8/P7/8/8/8/8/8/k6K w - - 0 1"
	tests := []struct {
		promo chess.PieceType
		want  chess.Piece
	}{
		{chess.NoPieceType, chess.WhiteQueen},
		{chess.Queen, chess.WhiteQueen},
		{chess.Knight, chess.WhiteKnight},
		{chess.Rook, chess.WhiteRook},
	}

	for _, test := range tests {
		m, err := NewMatch(MatchConfig{FEN: fen, Promotion: test.promo}, nil)
		if err != nil {
			t.Fatalf("failed to create match: %s", err)
		}
		if !m.Drop(chess.A7, chess.A8) {
			t.Fatalf("promotion to %s rejected", test.promo)
		}
		if p := m.Game().Position().Board().Piece(chess.A8); p != test.want {
			t.Errorf("promotion with %s: expected %s on a8, got %s", test.promo, test.want, p)
		}
	}
}

func TestNotifyDelay(t *testing.T) {
	const delay = 30 * time.Millisecond
	rec := make(recorder, 1)
	m, err := NewMatch(MatchConfig{NotifyDelay: delay}, rec)
	if err != nil {
		t.Fatalf("failed to create match: %s", err)
	}

	start := time.Now()
	if !m.Drop(chess.D2, chess.D4) {
		t.Fatal("d2d4 rejected")
	}
	rec.next(t)
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("notified after %s, want at least %s", elapsed, delay)
	}
}

func TestAnnounceAndReset(t *testing.T) {
	m, rec := newTestMatch(t, "")

	m.Announce()
	if msg := rec.next(t); msg.Text != "White to move" || msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}

	start, id := m.FEN(), m.ID()
	play(t, m, rec, [2]chess.Square{chess.E2, chess.E4})

	if err := m.Reset(); err != nil {
		t.Fatalf("failed to reset: %s", err)
	}
	if m.FEN() != start {
		t.Errorf("expected starting position, got %s", m.FEN())
	}
	if m.ID() == id {
		t.Error("reset kept the match id")
	}
	if msg := rec.next(t); msg.Text != "White to move" {
		t.Errorf("unexpected status %+v", msg)
	}
}

func TestNewMatchInvalidFEN(t *testing.T) {
	if _, err := NewMatch(MatchConfig{FEN: "not a fen"}, nil); err == nil {
		t.Error("expected an error for an invalid FEN")
	}
}

func TestAnnounceSetUpPosition(t *testing.T) {
	m, rec := newTestMatch(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")

	m.Announce()
	if msg := rec.next(t); msg.Text != "Check! White to move" || !msg.Warning {
		t.Errorf("unexpected status %+v", msg)
	}

	if err := m.Reset(); err != nil {
		t.Fatalf("failed to reset: %s", err)
	}
	if msg := rec.next(t); msg.Text != "Check! White to move" {
		t.Errorf("unexpected status after reset %+v", msg)
	}
}
