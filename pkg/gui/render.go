package gui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
)

const (
	numOfSquaresInRow = 8
	squareWidth       = 2
	rankLabelWidth    = 2
	// BoardWidth and BoardHeight are the cells needed to draw the board
	BoardWidth  = rankLabelWidth + numOfSquaresInRow*squareWidth
	BoardHeight = numOfSquaresInRow + 1
)

// Highlights marks squares drawn with a special background
type Highlights struct {
	Last       [2]chess.Square // Squares of the last move
	HasLast    bool
	Drag       chess.Square
	Dragging   bool
	Cursor     chess.Square
	ShowCursor bool
	Check      chess.Square
	InCheck    bool
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p chess.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)

	if p.Color() == chess.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// squareColor returns the color of the square itself (a1 is dark)
func squareColor(sq chess.Square) chess.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return chess.Black
	}
	return chess.White
}

// squareBg returns the theme's color corresponding to the square
func squareBg(sq chess.Square, t Theme, hl Highlights) tcell.Color {
	switch {
	case hl.InCheck && sq == hl.Check:
		return t.SquareCheck
	case hl.Dragging && sq == hl.Drag:
		return t.SquareDrag
	case hl.ShowCursor && sq == hl.Cursor:
		return t.SquareCursor
	case hl.HasLast && (sq == hl.Last[0] || sq == hl.Last[1]):
		return t.SquareHigh
	}
	if squareColor(sq) == chess.Black {
		return t.SquareDark
	}
	return t.SquareLight
}

// drawSquare draws a board square and its corresponding piece
func drawSquare(s tcell.Screen, col, row int, p chess.Piece, sqBg tcell.Color, t Theme) {
	// Empty square
	if p == chess.NoPiece {
		// Fill two columns wide to make it square
		s.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
		s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
		return
	}
	piece, _ := utf8.DecodeRuneInString(p.String())
	// Fill with the piece and then pad the rest with blank
	s.SetContent(col, row, piece, nil, stylePiece(p, sqBg, t))
	s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
}

// drawRank draws the rank (row indicator)
func drawRank(s tcell.Screen, col, row int, r chess.Rank, t Theme) {
	rank, _ := utf8.DecodeRuneInString(r.String())
	drawRune(s, col, row, tcell.StyleDefault.Foreground(t.Rank), rank)
}

// getSquare converts a file and rank to a square (a1 is 0)
func getSquare(f chess.File, r chess.Rank) chess.Square {
	return chess.Square((int(r) * 8) + int(f))
}

// rankAt returns the rank shown on the idx-th row from the top
func rankAt(idx int, flip bool) chess.Rank {
	if flip {
		return chess.Rank(idx)
	}
	return chess.Rank(numOfSquaresInRow - idx - 1)
}

// fileAt returns the file shown on the idx-th column from the left
func fileAt(idx int, flip bool) chess.File {
	if flip {
		return chess.File(numOfSquaresInRow - idx - 1)
	}
	return chess.File(idx)
}

// DrawBoard draws board at x, y with ranks on the left and files below
func DrawBoard(s tcell.Screen, x, y int, board *chess.Board, t Theme, hl Highlights, flip bool) {
	for row := 0; row < numOfSquaresInRow; row++ {
		r := rankAt(row, flip)
		drawRank(s, x, y+row, r, t)
		col := x + rankLabelWidth
		for i := 0; i < numOfSquaresInRow; i++ {
			sq := getSquare(fileAt(i, flip), r)
			drawSquare(s, col, y+row, board.Piece(sq), squareBg(sq, t, hl), t)
			col += squareWidth
		}
	}
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	for i := 0; i < numOfSquaresInRow; i++ {
		file, _ := utf8.DecodeRuneInString(fileAt(i, flip).String())
		drawRune(s, x+rankLabelWidth+i*squareWidth, y+numOfSquaresInRow, fileStyle, file)
	}
}

// SquareAt maps a cell of a board drawn at x, y back to its square
func SquareAt(x, y, cx, cy int, flip bool) (chess.Square, bool) {
	col := cx - x - rankLabelWidth
	row := cy - y
	if col < 0 || col >= numOfSquaresInRow*squareWidth || row < 0 || row >= numOfSquaresInRow {
		return 0, false
	}
	return getSquare(fileAt(col/squareWidth, flip), rankAt(row, flip)), true
}

// highlightsFor fills the last move and check squares from game
func highlightsFor(game *chess.Game) Highlights {
	var hl Highlights
	moves := game.Moves()
	if len(moves) == 0 {
		return hl
	}
	last := moves[len(moves)-1]
	hl.Last = [2]chess.Square{last.S1(), last.S2()}
	hl.HasLast = true
	if last.HasTag(chess.Check) {
		king := chess.WhiteKing
		if game.Position().Turn() == chess.Black {
			king = chess.BlackKing
		}
		for sq, p := range game.Position().Board().SquareMap() {
			if p == king {
				hl.Check = sq
				hl.InCheck = true
			}
		}
	}
	return hl
}
