package pkg

import "github.com/notnil/chess"

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Other returns the opponent's color
func (pc PlayerColor) Other() PlayerColor {
	switch pc {
	case White:
		return Black
	case Black:
		return White
	default:
		return Unknown
	}
}

// colorOf converts the rules engine's color to a PlayerColor
func colorOf(c chess.Color) PlayerColor {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return Unknown
	}
}
