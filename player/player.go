package player

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"gamearena/game"
	"gamearena/searcher"

	"github.com/pkg/errors"
)

// Human reads moves typed by a person. It shows the position before every
// prompt and keeps asking until the input names a legal move.
type Human[S any, A comparable] struct {
	in      *bufio.Scanner
	out     io.Writer
	parse   func(string) (A, error)
	display func(S) string
}

// NewHuman returns a human player reading from in and writing prompts to out.
// display may be nil when the game cannot render itself.
func NewHuman[S any, A comparable](in io.Reader, out io.Writer, parse func(string) (A, error), display func(S) string) *Human[S, A] {
	return &Human[S, A]{
		in:      bufio.NewScanner(in),
		out:     out,
		parse:   parse,
		display: display,
	}
}

// Strategy adapts the player to the move-selection signature shared with the searches.
func (h *Human[S, A]) Strategy() searcher.Strategy[S, A] {
	return h.TakeTurn
}

// TakeTurn asks for a move until a legal one is entered. It fails once the
// input is exhausted.
func (h *Human[S, A]) TakeTurn(g game.Game[S, A], state S) (A, error) {
	var none A
	actions := g.Actions(state)
	if len(actions) == 0 {
		return none, searcher.ErrTerminalState
	}

	if h.display != nil {
		fmt.Fprint(h.out, h.display(state))
	}
	for {
		fmt.Fprintf(h.out, "%s, enter your move (e.g., 2,3): ", g.ToMove(state))
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return none, errors.Wrap(err, "reading move")
			}
			return none, errors.Wrap(io.ErrUnexpectedEOF, "reading move")
		}
		action, err := h.parse(h.in.Text())
		if err != nil || !slices.Contains(actions, action) {
			fmt.Fprintln(h.out, "invalid action!!")
			continue
		}
		return action, nil
	}
}
