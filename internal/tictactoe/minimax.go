package tictactoe

import "math"

// Minimax returns the optimal action for the player to move, or false when
// the board is terminal. Actions are tried in row-major order and a
// candidate only replaces the best one on a strict improvement, so among
// equally good moves the first in row-major order is chosen.
func Minimax(board Board) (Action, bool) {
	if board.Terminal() {
		return Action{}, false
	}

	current := board.Player()
	bestValue := initialValue(current)

	var (
		bestAction Action
		found      bool
	)

	for _, action := range board.Actions() {
		next, err := Result(board, action)
		if err != nil {
			// Actions only yields empty squares.
			continue
		}

		value := MinimaxValue(next, current.Opponent())
		if (current == X && value > bestValue) || (current == O && value < bestValue) {
			bestValue = value
			bestAction = action
			found = true
		}
	}

	return bestAction, found
}

// MinimaxValue - returns the game value of board from X's point of view,
// with current to move and both sides playing perfectly afterwards.
func MinimaxValue(board Board, current Player) int {
	if board.Terminal() {
		return board.Utility()
	}

	best := initialValue(current)
	for _, action := range board.Actions() {
		next, err := Result(board, action)
		if err != nil {
			continue
		}

		value := MinimaxValue(next, current.Opponent())
		if current == X {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}

	return best
}

func initialValue(player Player) int {
	if player == X {
		return math.MinInt
	}
	return math.MaxInt
}
