package pkg

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionNewGame Action = "New Game"
	ActionFlip           = "Flip"
	ActionExit           = "Exit"
)

// Binding ties a key to an action
type Binding struct {
	Key    rune
	Action Action
}

var Bindings = []Binding{
	{'n', ActionNewGame},
	{'f', ActionFlip},
	{'q', ActionExit},
}

// actionFor returns the action bound to key
func actionFor(key rune) (Action, bool) {
	for _, b := range Bindings {
		if b.Key == key {
			return b.Action, true
		}
	}
	return "", false
}

// HelpText lists the bindings for the footer
func HelpText() string {
	parts := []string{"drag or Enter to move"}
	for _, b := range Bindings {
		parts = append(parts, fmt.Sprintf("%c %s", b.Key, strings.ToLower(string(b.Action))))
	}
	return strings.Join(parts, " | ")
}
