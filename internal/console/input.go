package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

var (
	ErrInputClosed   = errors.New("input stream closed")
	ErrMalformedMove = errors.New("malformed move")
	ErrBadColumn     = errors.New("invalid column value")
	ErrBadRow        = errors.New("invalid row value")
)

// MoveReader - reads and validates human moves from a terminal, owning
// the re-prompt loop so the turn controller only ever sees a coordinate
// that is in range and empty.
type MoveReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewMoveReader(in io.Reader, out io.Writer) *MoveReader {
	return &MoveReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadMove - prompts until the player supplies a valid move for the given
// board. A move is a column letter and a row digit separated by a space,
// e.g. "A 1"; letters are accepted in either case. Returns ErrInputClosed
// when the stream ends mid-game.
func (that *MoveReader) ReadMove(board entity.Board) (entity.Coordinate, error) {
	fmt.Fprintln(that.out, "Your turn. Where would you like to move next?")
	fmt.Fprintln(that.out, "Type your move as two characters separated by a space (ex: A 1)")

	for {
		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Coordinate{}, fmt.Errorf("failed to read move: %w", err)
			}
			return entity.Coordinate{}, ErrInputClosed
		}

		cell, err := ParseMove(that.scanner.Text())
		if err != nil {
			that.complain(err)
			continue
		}

		if !board.IsEmpty(cell) {
			fmt.Fprintln(that.out, "! That cell is not empty. Please try a different cell")
			continue
		}

		return cell, nil
	}
}

// ParseMove - turns a raw "<column letter> <row digit>" string into a
// board coordinate.
func ParseMove(raw string) (entity.Coordinate, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", ErrMalformedMove, raw)
	}

	col, err := parseColumn(fields[0])
	if err != nil {
		return entity.Coordinate{}, err
	}

	row, err := parseRow(fields[1])
	if err != nil {
		return entity.Coordinate{}, err
	}

	return entity.Coordinate{Row: row, Col: col}, nil
}

func parseColumn(field string) (int, error) {
	switch strings.ToUpper(field) {
	case "A":
		return 0, nil
	case "B":
		return 1, nil
	case "C":
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadColumn, field)
	}
}

func parseRow(field string) (int, error) {
	switch field {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadRow, field)
	}
}

func (that *MoveReader) complain(err error) {
	switch {
	case errors.Is(err, ErrBadColumn):
		fmt.Fprintln(that.out, "! Invalid column value entered. Your choices are: [A, B, C]")
	case errors.Is(err, ErrBadRow):
		fmt.Fprintln(that.out, "! Invalid row value entered. Your choices are: [0, 1, 2]")
	default:
		fmt.Fprintln(that.out, "! Could not read that move. Type a column and a row (ex: A 1)")
	}
}
