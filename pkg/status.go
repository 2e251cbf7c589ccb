package pkg

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// StatusMessage is a transient notification describing the game state.
// Warning marks messages that deserve attention (check, game over).
type StatusMessage struct {
	Text    string
	Warning bool
}

// Notifier receives status messages. Implementations must be safe to call
// from a goroutine other than the UI one.
type Notifier interface {
	Notify(msg StatusMessage)
}

// TurnStatus announces whose turn it is
func TurnStatus(toMove PlayerColor) StatusMessage {
	return StatusMessage{Text: fmt.Sprintf("%s to move", toMove)}
}

// StatusFor derives the message shown after mover's move was applied to game
func StatusFor(game *chess.Game, mover PlayerColor) StatusMessage {
	toMove := colorOf(game.Position().Turn())

	switch game.Outcome() {
	case chess.WhiteWon, chess.BlackWon:
		if game.Method() == chess.Checkmate {
			return StatusMessage{Text: fmt.Sprintf("Checkmate! %s wins", mover), Warning: true}
		}
		return StatusMessage{Text: fmt.Sprintf("%s wins", winner(game.Outcome())), Warning: true}
	case chess.Draw:
		return StatusMessage{Text: fmt.Sprintf("Draw by %s", drawReason(game.Method())), Warning: true}
	}

	if inCheck(game) {
		return StatusMessage{Text: fmt.Sprintf("Check! %s to move", toMove), Warning: true}
	}
	return TurnStatus(toMove)
}

// PositionStatus describes the game as it stands, including positions no
// move led to such as a start set up from a FEN
func PositionStatus(game *chess.Game) StatusMessage {
	if moves := game.Moves(); len(moves) > 0 {
		return StatusFor(game, colorOf(game.Positions()[len(moves)-1].Turn()))
	}

	toMove := colorOf(game.Position().Turn())
	if game.Outcome() != chess.NoOutcome {
		return StatusFor(game, toMove.Other())
	}
	switch game.Position().Status() {
	case chess.Checkmate:
		return StatusMessage{Text: fmt.Sprintf("Checkmate! %s wins", toMove.Other()), Warning: true}
	case chess.Stalemate:
		return StatusMessage{Text: fmt.Sprintf("Draw by %s", drawReason(chess.Stalemate)), Warning: true}
	}
	if kingAttacked(game.Position()) {
		return StatusMessage{Text: fmt.Sprintf("Check! %s to move", toMove), Warning: true}
	}
	return TurnStatus(toMove)
}

// kingAttacked reports whether the side to move is in check. The rules engine
// is asked whether the opponent, were it their turn, could take the king.
func kingAttacked(pos *chess.Position) (attacked bool) {
	defer func() {
		if recover() != nil {
			attacked = false
		}
	}()

	fields := strings.Fields(pos.String())
	if len(fields) < 4 {
		return false
	}
	king := chess.WhiteKing
	fields[1] = "b"
	if pos.Turn() == chess.Black {
		king = chess.BlackKing
		fields[1] = "w"
	}
	fields[3] = "-"
	fen, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return false
	}
	board := pos.Board()
	for _, mv := range chess.NewGame(fen).ValidMoves() {
		if board.Piece(mv.S2()) == king {
			return true
		}
	}
	return false
}

// inCheck reports whether the last move gave check
func inCheck(game *chess.Game) bool {
	moves := game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

func winner(o chess.Outcome) PlayerColor {
	switch o {
	case chess.WhiteWon:
		return White
	case chess.BlackWon:
		return Black
	default:
		return Unknown
	}
}

func drawReason(m chess.Method) string {
	switch m {
	case chess.Stalemate:
		return "stalemate"
	case chess.InsufficientMaterial:
		return "insufficient material"
	case chess.FivefoldRepetition:
		return "fivefold repetition"
	case chess.ThreefoldRepetition:
		return "threefold repetition"
	case chess.SeventyFiveMoveRule:
		return "seventy-five move rule"
	case chess.FiftyMoveRule:
		return "fifty move rule"
	case chess.DrawOffer:
		return "agreement"
	default:
		return "rule"
	}
}
