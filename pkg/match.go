package pkg

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/notnil/chess"
)

const (
	// DefaultNotifyDelay is how long after a move its status is announced
	DefaultNotifyDelay = 100 * time.Millisecond
)

// MatchConfig controls how a Match starts and reacts to moves
type MatchConfig struct {
	FEN         string          // Starting position, standard one when empty
	Promotion   chess.PieceType // Piece a pawn becomes when no choice is made
	NotifyDelay time.Duration
}

// Match owns the single game handle shown on the board. The handle is never
// mutated in place: moves are applied to a clone which replaces it on success.
type Match struct {
	id       string
	cfg      MatchConfig
	game     *chess.Game
	notifier Notifier
	logger   *log.Logger
}

func NewMatch(cfg MatchConfig, n Notifier) (*Match, error) {
	if cfg.Promotion == chess.NoPieceType {
		cfg.Promotion = chess.Queen
	}
	m := &Match{
		cfg:      cfg,
		notifier: n,
	}
	if err := m.newGame(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) newGame() error {
	game, err := GameFromFEN(m.cfg.FEN)
	if err != nil {
		return err
	}
	m.id = uuid.NewString()
	m.logger = log.With("match", m.id)
	m.game = game
	m.logger.Info("new game", "fen", game.FEN())
	return nil
}

func (m *Match) ID() string {
	return m.id
}

// Game returns the current game handle. Callers must treat it as read-only.
func (m *Match) Game() *chess.Game {
	return m.game
}

func (m *Match) FEN() string {
	return m.game.FEN()
}

func (m *Match) Turn() PlayerColor {
	return colorOf(m.game.Position().Turn())
}

func (m *Match) Outcome() chess.Outcome {
	return m.game.Outcome()
}

// Drop tries to move the piece on from to to. It reports whether the move was
// accepted; the board snaps the piece back when it was not.
func (m *Match) Drop(from, to chess.Square) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("move panicked", "from", from, "to", to, "panic", r)
			ok = false
		}
	}()

	if m.game.Outcome() != chess.NoOutcome {
		m.logger.Debug("move after game end", "from", from, "to", to)
		return false
	}

	next := m.game.Clone()
	move := findMove(next.ValidMoves(), from, to, m.cfg.Promotion)
	if move == nil {
		m.logger.Debug("illegal move", "from", from, "to", to)
		return false
	}
	mover := colorOf(next.Position().Turn())
	if err := next.Move(move); err != nil {
		m.logger.Debug("move rejected", "move", move, "err", err)
		return false
	}

	m.game = next
	m.logger.Info("move", "player", mover, "move", move, "fen", next.FEN())
	if o := next.Outcome(); o != chess.NoOutcome {
		m.logger.Info("game over", "outcome", o, "method", next.Method())
	}

	status := StatusFor(next, mover)
	time.AfterFunc(m.cfg.NotifyDelay, func() {
		m.notify(status)
	})
	return true
}

// Announce emits the status of the current position immediately
func (m *Match) Announce() {
	m.notify(PositionStatus(m.game))
}

// Reset starts over from the configured starting position
func (m *Match) Reset() error {
	if err := m.newGame(); err != nil {
		return fmt.Errorf("reset match: %w", err)
	}
	m.Announce()
	return nil
}

func (m *Match) notify(msg StatusMessage) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(msg)
}

// findMove picks the valid move going from s1 to s2. A promotion matches only
// the requested piece.
func findMove(moves []*chess.Move, s1, s2 chess.Square, promo chess.PieceType) *chess.Move {
	for _, mv := range moves {
		if mv.S1() != s1 || mv.S2() != s2 {
			continue
		}
		if mv.Promo() == chess.NoPieceType || mv.Promo() == promo {
			return mv
		}
	}
	return nil
}
