package gui

import (
	"time"

	"github.com/rivo/tview"
)

const toastPage = "toast"

// Toaster shows one short-lived message at the top center of its pages. A new
// toast replaces the one on screen.
type Toaster struct {
	view    *tview.TextView
	pages   *tview.Pages
	theme   Theme
	normal  time.Duration
	warning time.Duration
	queue   func(func())
	focus   func()
	seq     int
	visible bool
}

// NewToaster adds the toast page to pages. queue must run its argument on the
// UI goroutine and redraw, like Application.QueueUpdateDraw.
func NewToaster(pages *tview.Pages, theme Theme, normal, warning time.Duration, queue func(func())) *Toaster {
	view := tview.NewTextView().
		SetTextAlign(tview.AlignCenter)
	view.SetBorderPadding(0, 0, 1, 1)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 1, 0, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(view, 36, 0, false).
			AddItem(nil, 0, 1, false), 1, 0, false).
		AddItem(nil, 0, 1, false)
	pages.AddPage(toastPage, layout, true, false)

	return &Toaster{
		view:    view,
		pages:   pages,
		theme:   theme,
		normal:  normal,
		warning: warning,
		queue:   queue,
	}
}

// SetFocusFunc sets the function giving focus back to the rest of the UI
// once the toast page is shown. The toast itself takes no input.
func (t *Toaster) SetFocusFunc(f func()) *Toaster {
	t.focus = f
	return t
}

// Show displays text until its duration elapses. It must be called on the UI
// goroutine.
func (t *Toaster) Show(text string, warning bool) {
	t.seq++
	seq := t.seq

	bg, d := t.theme.ToastBg, t.normal
	if warning {
		bg, d = t.theme.ToastWarnBg, t.warning
	}
	t.view.SetBackgroundColor(bg)
	t.view.SetTextColor(t.theme.ToastFg)
	t.view.SetText(text)
	t.pages.ShowPage(toastPage)
	t.visible = true
	if t.focus != nil {
		t.focus()
	}

	time.AfterFunc(d, func() {
		t.queue(func() {
			// A newer toast owns the page now
			if seq != t.seq {
				return
			}
			t.Hide()
		})
	})
}

// Hide removes the toast. It must be called on the UI goroutine.
func (t *Toaster) Hide() {
	t.pages.HidePage(toastPage)
	t.visible = false
}

func (t *Toaster) Visible() bool {
	return t.visible
}

func (t *Toaster) Text() string {
	return t.view.GetText(true)
}
