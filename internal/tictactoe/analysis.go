package tictactoe

// Analysis is a full report on a position.
type Analysis struct {
	Board    Board   `json:"board"`
	Player   Player  `json:"player"`
	Terminal bool    `json:"terminal"`
	Winner   string  `json:"winner"`
	Utility  int     `json:"utility"`
	Value    int     `json:"value"`
	Action   *Action `json:"action,omitempty"`
}

// Analyze - evaluates board for the player to move. Value equals Utility on
// terminal boards and Action is nil there.
func Analyze(board Board) Analysis {
	analysis := Analysis{
		Board:    board,
		Player:   board.Player(),
		Terminal: board.Terminal(),
		Utility:  board.Utility(),
	}

	if winner, ok := board.Winner(); ok {
		analysis.Winner = winner.String()
	}

	analysis.Value = MinimaxValue(board, analysis.Player)

	if action, ok := Minimax(board); ok {
		analysis.Action = &action
	}

	return analysis
}
