package entity

// Mark - the state of a single board cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// The human always plays X, the bot always plays O.
const (
	HumanMark = MarkX
	BotMark   = MarkO
)

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Board - a fixed 3x3 grid indexed by (row, col), both in [0, 2].
type Board [3][3]Mark

// Coordinate - a single board position.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds - reports whether the coordinate addresses a real cell.
func (that Coordinate) InBounds() bool {
	return that.Row >= 0 && that.Row <= 2 && that.Col >= 0 && that.Col <= 2
}

func (that *Board) At(cell Coordinate) Mark {
	return that[cell.Row][cell.Col]
}

func (that *Board) IsEmpty(cell Coordinate) bool {
	return that[cell.Row][cell.Col] == MarkEmpty
}

// EmptyCells - lists every unclaimed cell in row-major order.
func (that *Board) EmptyCells() []Coordinate {
	cells := make([]Coordinate, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if that[row][col] == MarkEmpty {
				cells = append(cells, Coordinate{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (that *Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// Outcome - the terminal classification of a board.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWonX
	OutcomeWonO
	OutcomeDraw
)

// Winner - the winning mark for a won outcome, MarkEmpty otherwise.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeWonX:
		return MarkX
	case OutcomeWonO:
		return MarkO
	default:
		return MarkEmpty
	}
}

// WonBy - maps a winner's mark to its outcome.
func WonBy(mark Mark) Outcome {
	if mark == MarkX {
		return OutcomeWonX
	}
	return OutcomeWonO
}
