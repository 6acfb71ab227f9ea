package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrIllegalBoard  = errors.New("illegal board")
)

// Player returns whose turn it is. It is defined for terminal boards too,
// callers must check Terminal before asking for a move.
func (that Board) Player() Player {
	if that.Count(MarkX) <= that.Count(MarkO) {
		return X
	}
	return O
}

// Actions returns every empty square in row-major order.
func (that Board) Actions() []Action {
	actions := make([]Action, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Result - returns the board after the player to move marks the square at action.
func Result(board Board, action Action) (Board, error) {
	cell, ok := board.Cell(action)
	if !ok {
		return board, fmt.Errorf("%w: %s is off the board", ErrInvalidAction, action)
	}

	if cell != Empty {
		return board, fmt.Errorf("%w: %s is already taken by %s", ErrInvalidAction, action, cell)
	}

	next := board
	next[action.Row][action.Col] = board.Player().Cell()

	return next, nil
}

// Winner scans row i and column i for each i, then both diagonals.
// The first uniform non-empty line decides.
func (that Board) Winner() (Player, bool) {
	for i := range Size {
		if cell := that[i][0]; cell != Empty && cell == that[i][1] && cell == that[i][2] {
			return playerOf(cell), true
		}
		if cell := that[0][i]; cell != Empty && cell == that[1][i] && cell == that[2][i] {
			return playerOf(cell), true
		}
	}

	if cell := that[1][1]; cell != Empty {
		if cell == that[0][0] && cell == that[2][2] {
			return playerOf(cell), true
		}
		if cell == that[0][2] && cell == that[2][0] {
			return playerOf(cell), true
		}
	}

	return 0, false
}

func (that Board) Terminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.Count(Empty) == 0
}

// Utility is +1 when X has won, -1 when O has won and 0 otherwise.
func (that Board) Utility() int {
	winner, ok := that.Winner()
	switch {
	case !ok:
		return 0
	case winner == X:
		return 1
	default:
		return -1
	}
}

// Validate - checks that the board could be reached from InitialState.
func (that Board) Validate() error {
	diff := that.Count(MarkX) - that.Count(MarkO)
	if diff < 0 || diff > 1 {
		return fmt.Errorf("%w: X has %d marks, O has %d", ErrIllegalBoard, that.Count(MarkX), that.Count(MarkO))
	}

	xLine, oLine := that.hasLine(MarkX), that.hasLine(MarkO)
	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both players have three in a row", ErrIllegalBoard)
	case xLine && diff == 0:
		return fmt.Errorf("%w: O moved after X had won", ErrIllegalBoard)
	case oLine && diff == 1:
		return fmt.Errorf("%w: X moved after O had won", ErrIllegalBoard)
	}

	return nil
}

func (that Board) hasLine(cell Cell) bool {
	for i := range Size {
		if that[i][0] == cell && that[i][1] == cell && that[i][2] == cell {
			return true
		}
		if that[0][i] == cell && that[1][i] == cell && that[2][i] == cell {
			return true
		}
	}

	if that[1][1] != cell {
		return false
	}

	return (that[0][0] == cell && that[2][2] == cell) || (that[0][2] == cell && that[2][0] == cell)
}

func playerOf(cell Cell) Player {
	if cell == MarkX {
		return X
	}
	return O
}
