package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"
)

// DropFunc is called when a piece is dropped on a square. It returns whether
// the move was accepted; the piece goes back to its square otherwise.
type DropFunc func(from, to chess.Square) bool

// BoardView is a tview primitive showing a chess position. Pieces are moved
// by dragging them with the mouse, or with the arrow keys and Enter.
type BoardView struct {
	*tview.Box
	theme    Theme
	source   func() *chess.Game
	onDrop   DropFunc
	flip     bool
	dragging bool
	dragFrom chess.Square
	cursor   chess.Square
	keyboard bool // Show the cursor once the keyboard was used
}

// NewBoardView draws whatever game source returns at draw time
func NewBoardView(source func() *chess.Game, theme Theme) *BoardView {
	return &BoardView{
		Box:    tview.NewBox(),
		theme:  theme,
		source: source,
		cursor: chess.E2,
	}
}

func (b *BoardView) SetDropFunc(f DropFunc) *BoardView {
	b.onDrop = f
	return b
}

func (b *BoardView) SetTheme(t Theme) *BoardView {
	b.theme = t
	return b
}

// SetFlipped puts black at the bottom when flip is true
func (b *BoardView) SetFlipped(flip bool) *BoardView {
	b.flip = flip
	return b
}

func (b *BoardView) Flipped() bool {
	return b.flip
}

func (b *BoardView) Flip() {
	b.flip = !b.flip
}

// Cancel drops the piece being dragged back on its square
func (b *BoardView) Cancel() {
	b.dragging = false
}

// Dragging returns the square being dragged from, if any
func (b *BoardView) Dragging() (chess.Square, bool) {
	return b.dragFrom, b.dragging
}

func (b *BoardView) Cursor() chess.Square {
	return b.cursor
}

func (b *BoardView) pieceAt(sq chess.Square) chess.Piece {
	return b.source().Position().Board().Piece(sq)
}

func (b *BoardView) pick(sq chess.Square) {
	if b.pieceAt(sq) == chess.NoPiece {
		return
	}
	b.dragging = true
	b.dragFrom = sq
}

// drop ends a drag on sq, releasing on the starting square cancels it
func (b *BoardView) drop(sq chess.Square) bool {
	from := b.dragFrom
	b.dragging = false
	if from == sq || b.onDrop == nil {
		return false
	}
	return b.onDrop(from, sq)
}

// moveCursor moves the cursor by df files and dr ranks as seen on screen
func (b *BoardView) moveCursor(df, dr int) {
	if b.flip {
		df, dr = -df, -dr
	}
	f := int(b.cursor.File()) + df
	r := int(b.cursor.Rank()) + dr
	if f < 0 || f >= numOfSquaresInRow || r < 0 || r >= numOfSquaresInRow {
		return
	}
	b.cursor = getSquare(chess.File(f), chess.Rank(r))
}

func (b *BoardView) Draw(screen tcell.Screen) {
	b.Box.Draw(screen)
	x, y, _, _ := b.GetInnerRect()
	game := b.source()

	hl := highlightsFor(game)
	hl.Drag, hl.Dragging = b.dragFrom, b.dragging
	hl.Cursor, hl.ShowCursor = b.cursor, b.keyboard

	DrawBoard(screen, x, y, game.Position().Board(), b.theme, hl, b.flip)
}

func (b *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		b.keyboard = true
		switch event.Key() {
		case tcell.KeyUp:
			b.moveCursor(0, 1)
		case tcell.KeyDown:
			b.moveCursor(0, -1)
		case tcell.KeyLeft:
			b.moveCursor(-1, 0)
		case tcell.KeyRight:
			b.moveCursor(1, 0)
		case tcell.KeyEnter:
			if b.dragging {
				b.drop(b.cursor)
			} else {
				b.pick(b.cursor)
			}
		case tcell.KeyEscape:
			b.Cancel()
		}
	})
}

func (b *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		cx, cy := event.Position()
		x, y, _, _ := b.GetInnerRect()
		sq, onBoard := SquareAt(x, y, cx, cy, b.flip)

		switch action {
		case tview.MouseLeftDown:
			if !b.InRect(cx, cy) {
				return false, nil
			}
			setFocus(b)
			b.keyboard = false
			if !onBoard {
				return true, nil
			}
			b.pick(sq)
			if b.dragging {
				// Keep receiving events until the button is released,
				// even outside of the board
				return true, b
			}
			return true, nil
		case tview.MouseLeftUp:
			if !b.dragging {
				return false, nil
			}
			if onBoard {
				b.drop(sq)
			} else {
				b.Cancel()
			}
			return true, nil
		}
		return false, nil
	})
}
