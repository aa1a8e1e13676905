package console

import (
	"fmt"
	"io"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

const gridBorder = "  +---+---+---+"

// Renderer - draws the board and game messages. It only ever reads
// the board.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderBoard - draws the 3x3 grid with column letters and row digits,
// the human as 'x' and the bot as 'o'.
func (that *Renderer) RenderBoard(board entity.Board) {
	fmt.Fprintln(that.out, "    A   B   C")
	fmt.Fprintln(that.out, gridBorder)

	for row := 0; row < 3; row++ {
		fmt.Fprintf(that.out, "%d ", row)
		for col := 0; col < 3; col++ {
			fmt.Fprintf(that.out, "| %s ", cellRune(board[row][col]))
		}
		fmt.Fprintln(that.out, "|")
		fmt.Fprintln(that.out, gridBorder)
	}
}

// RenderOutcome - prints the end-of-game banner for a finished game.
func (that *Renderer) RenderOutcome(outcome entity.Outcome) {
	switch outcome {
	case entity.OutcomeWonX:
		fmt.Fprintln(that.out, "^.^ Congratulations! You win! ^.^")
	case entity.OutcomeWonO:
		fmt.Fprintln(that.out, "~.~ Sorry! You lose! ~.~")
	case entity.OutcomeDraw:
		fmt.Fprintln(that.out, "O.o Whoa, that was close! You tied! O.o")
	case entity.OutcomeInProgress:
	}
}

// RenderScore - prints the running tally kept across sessions.
func (that *Renderer) RenderScore(wins, losses, draws int) {
	fmt.Fprintf(that.out, "Score so far: %d won / %d lost / %d tied\n", wins, losses, draws)
}

func cellRune(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return "x"
	case entity.MarkO:
		return "o"
	default:
		return " "
	}
}
