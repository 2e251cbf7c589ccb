package pkg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/notnil/chess"
)

// GameFromFEN builds a game starting at gamefen, or at the standard
// starting position when gamefen is empty
func GameFromFEN(gamefen string) (*chess.Game, error) {
	if gamefen == "" {
		return chess.NewGame(), nil
	}
	fen, err := chess.FEN(gamefen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", gamefen, err)
	}
	return chess.NewGame(fen), nil
}

// ParsePromotion maps a piece letter (q, r, b, n) to its piece type
func ParsePromotion(s string) (chess.PieceType, error) {
	switch strings.ToLower(s) {
	case "", "q":
		return chess.Queen, nil
	case "r":
		return chess.Rook, nil
	case "b":
		return chess.Bishop, nil
	case "n":
		return chess.Knight, nil
	default:
		return chess.NoPieceType, fmt.Errorf("unknown promotion piece %q", s)
	}
}

// InitLog sends the default logger to dest. The terminal belongs to the UI,
// so logs never go to stdout.
func InitLog(dest, prefix string) (io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	log.SetReportTimestamp(true)
	log.SetLevel(log.DebugLevel)
	return f, nil
}
