package tictactoe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const Size = 3

var (
	ErrUnknownCell   = errors.New("unknown cell value")
	ErrUnknownPlayer = errors.New("unknown player")
)

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "X", "x":
		*that = MarkX
	case "O", "o":
		*that = MarkO
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// Player is one of the two sides. X always moves first.
type Player uint8

const (
	X Player = iota + 1
	O
)

// ParsePlayer - converts "X" or "O" to a Player.
func ParsePlayer(mark string) (Player, error) {
	switch mark {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, mark)
	}
}

func (that Player) String() string {
	return that.Cell().String()
}

// Cell returns the mark the player puts on the board.
func (that Player) Cell() Cell {
	switch that {
	case X:
		return MarkX
	case O:
		return MarkO
	default:
		return Empty
	}
}

func (that Player) Opponent() Player {
	if that == X {
		return O
	}
	return X
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// Action identifies a square by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Action) inBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board is a row-major 3x3 grid. It is a value type: every transition
// returns a new Board and leaves the receiver untouched.
type Board [Size][Size]Cell

// UnmarshalJSON accepts exactly three rows of three cells.
func (that *Board) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrIllegalBoard, Size, len(rows))
	}

	for i, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrIllegalBoard, i, len(row), Size)
		}
	}

	var board Board
	for i, row := range rows {
		for j, raw := range row {
			if err := json.Unmarshal(raw, &board[i][j]); err != nil {
				return err
			}
		}
	}

	*that = board

	return nil
}

// InitialState - returns the empty board X starts from.
func InitialState() Board {
	return Board{}
}

// Cell returns the content of the square at action, or false when the
// coordinates are off the board.
func (that Board) Cell(action Action) (Cell, bool) {
	if !action.inBounds() {
		return Empty, false
	}

	return that[action.Row][action.Col], true
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

func (that Board) String() string {
	rows := make([]string, 0, Size)
	for _, row := range that {
		var sb strings.Builder
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "/")
}
