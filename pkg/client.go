package pkg

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/chessterm/pkg/gui"
	"github.com/rivo/tview"
)

const (
	numOfMovePairs = 5
	movesWidth     = 24
)

// Client is the interactive board: it renders the match and feeds the
// board's drops to it
type Client struct {
	App    *tview.Application
	Board  *gui.BoardView
	Moves  *tview.TextView
	Pages  *tview.Pages
	Match  *Match
	Toast  *gui.Toaster
	Config Config
}

func NewClient(cfg Config, theme gui.Theme) (*Client, error) {
	app := tview.NewApplication()
	cl := &Client{
		App:    app,
		Config: cfg,
	}

	mcfg, err := cfg.MatchConfig()
	if err != nil {
		return nil, err
	}
	match, err := NewMatch(mcfg, cl)
	if err != nil {
		return nil, err
	}
	cl.Match = match

	cl.Board = gui.NewBoardView(match.Game, theme).
		SetFlipped(cfg.Flip).
		SetDropFunc(cl.drop)

	cl.Moves = tview.NewTextView()
	cl.Moves.SetBorder(true).
		SetTitle(" Moves ").
		SetBorderColor(theme.MoveBox)

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(theme.Header).
		SetText(cfg.Title)

	footer := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(HelpText())

	layout := tview.NewGrid().
		SetRows(3, gui.BoardHeight+2, -1, 1).
		SetColumns(-1, gui.BoardWidth+2, movesWidth, -1).
		AddItem(header, 0, 0, 1, 4, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(cl.Moves, 1, 2, 1, 1, 0, 0, false).
		AddItem(footer, 3, 0, 1, 4, 0, 0, false)
	cl.Board.SetBorderPadding(1, 0, 1, 0)

	cl.Pages = tview.NewPages().
		AddPage("main", layout, true, true)
	cl.Toast = gui.NewToaster(cl.Pages, theme, cfg.ToastDuration, cfg.WarnDuration, func(f func()) {
		app.QueueUpdateDraw(f)
	}).SetFocusFunc(func() {
		app.SetFocus(cl.Board)
	})

	app.SetInputCapture(cl.handleKey)
	cl.refreshMoves()
	return cl, nil
}

// Run blocks until the user quits
func (cl *Client) Run() error {
	cl.Match.Announce()
	if err := cl.App.SetRoot(cl.Pages, true).
		EnableMouse(true).
		SetFocus(cl.Board).
		Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Notify implements Notifier. It never blocks: the UI goroutine itself calls
// it (new game key) and so does Run before the event loop starts.
func (cl *Client) Notify(msg StatusMessage) {
	go cl.App.QueueUpdateDraw(func() {
		cl.Toast.Show(msg.Text, msg.Warning)
	})
}

func (cl *Client) drop(from, to chess.Square) bool {
	ok := cl.Match.Drop(from, to)
	if ok {
		cl.refreshMoves()
	}
	return ok
}

func (cl *Client) refreshMoves() {
	pairs := gui.MovePairs(cl.Match.Game(), numOfMovePairs)
	cl.Moves.SetText(gui.FormatMoves(pairs))
}

func (cl *Client) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}
	action, ok := actionFor(event.Rune())
	if !ok {
		return event
	}
	switch action {
	case ActionNewGame:
		cl.Board.Cancel()
		if err := cl.Match.Reset(); err != nil {
			log.Error("new game", "err", err)
		}
		cl.refreshMoves()
	case ActionFlip:
		cl.Board.Flip()
	case ActionExit:
		cl.App.Stop()
	}
	return nil
}
