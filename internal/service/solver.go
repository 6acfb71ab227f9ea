package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type SolverService interface {
	Solve(board tictactoe.Board) (tictactoe.Analysis, error)
}

type solverService struct {
	logger *slog.Logger
}

func NewSolverService(logger *slog.Logger) SolverService {
	return &solverService{
		logger: logger.With("component", "solver"),
	}
}

// Solve - rejects boards that cannot come up in a real game and analyzes the rest.
func (that *solverService) Solve(board tictactoe.Board) (tictactoe.Analysis, error) {
	if err := board.Validate(); err != nil {
		return tictactoe.Analysis{}, fmt.Errorf("failed to solve board: %w", err)
	}

	started := time.Now()
	analysis := tictactoe.Analyze(board)

	that.logger.Debug("board solved", "board", board.String(), "value", analysis.Value, "elapsed", time.Since(started))

	return analysis, nil
}
