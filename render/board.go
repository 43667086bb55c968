package render

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
)

// Renderer draws boards to a terminal.
type Renderer struct {
	out    *termenv.Output
	au     aurora.Aurora
	colors bool
}

// NewRenderer colours marks only when w is a terminal that supports colour
// and colour has not been disabled.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return newRenderer(termenv.NewOutput(w), noColor)
}

func newRenderer(out *termenv.Output, noColor bool) *Renderer {
	colors := !noColor && out.Profile != termenv.Ascii
	return &Renderer{
		out:    out,
		au:     aurora.NewAurora(colors),
		colors: colors,
	}
}

func (r *Renderer) mark(pos int, m game.Mark) string {
	switch m {
	case game.X:
		return r.au.Bold(r.au.Red("X")).String()
	case game.O:
		return r.au.Bold(r.au.Blue("O")).String()
	default:
		// Show the cell index so the human knows what to type
		return r.au.Faint(fmt.Sprintf("%d", pos)).String()
	}
}

// Format returns the board as three rows separated by rules.
func (r *Renderer) Format(b game.Board) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		i := row * 3
		fmt.Fprintf(&sb, "%s | %s | %s\n", r.mark(i, b.At(i)), r.mark(i+1, b.At(i+1)), r.mark(i+2, b.At(i+2)))
		if row < 2 {
			sb.WriteString("---------\n")
		}
	}
	return sb.String()
}

// Draw clears the screen on colour terminals and prints the board.
func (r *Renderer) Draw(b game.Board) {
	if r.colors {
		r.out.ClearScreen()
	}
	fmt.Fprint(r.out, r.Format(b))
}

// Outcome describes a finished game from the human's side.
func (r *Renderer) Outcome(b game.Board, human game.Mark) string {
	switch b.Winner() {
	case human:
		return r.au.Green("You won the game!").String()
	case human.Opponent():
		return r.au.Red("AI won the game!").String()
	default:
		return r.au.Yellow("The game is a draw!").String()
	}
}
