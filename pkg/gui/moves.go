package gui

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// MovePair is one numbered row of the move list
type MovePair struct {
	Index string
	White string
	Black string
}

// MovePairs lists the game's moves in SAN, paired by move number, keeping
// only the last n pairs
func MovePairs(game *chess.Game, n int) []MovePair {
	positions := game.Positions()
	pairs := make([]MovePair, 0)

	// Games set up from a FEN may start with black to move
	offset := 0
	if len(positions) > 0 && positions[0].Turn() == chess.Black {
		offset = 1
	}

	for i, move := range game.Moves() {
		txt := chess.AlgebraicNotation{}.Encode(positions[i], move)
		ply := i + offset
		// Even plies (and the very first one) open a new row
		if ply%2 == 0 || len(pairs) == 0 {
			pair := MovePair{Index: fmt.Sprintf("%v.", (ply/2)+1)}
			if ply%2 == 0 {
				pair.White = txt
			} else {
				pair.White = "..."
				pair.Black = txt
			}
			pairs = append(pairs, pair)
			continue
		}
		pairs[len(pairs)-1].Black = txt
	}

	if n > 0 && len(pairs) > n {
		pairs = pairs[len(pairs)-n:]
	}
	return pairs
}

// FormatMoves renders the pairs one per line
func FormatMoves(pairs []MovePair) string {
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%-4v %-7v %-7v\n", p.Index, p.White, p.Black)
	}
	return b.String()
}
