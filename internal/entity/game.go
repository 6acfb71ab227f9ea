package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a match between a human and the minimax bot.
type Game struct {
	ID      string             `json:"id"`
	Board   tictactoe.Board    `json:"board"`
	Winner  string             `json:"winner"`
	Status  string             `json:"status"`
	Turn    string             `json:"player_turn"`
	BotMark string             `json:"bot_mark"`
	Moves   []tictactoe.Action `json:"moves"`
}

func NewGame(id, botMark string) *Game {
	return &Game{
		ID:      id,
		Board:   tictactoe.InitialState(),
		Turn:    PlayerX,
		Status:  StatusOngoing,
		BotMark: botMark,
		Moves:   []tictactoe.Action{},
	}
}

func (that *Game) HumanMark() string {
	if that.BotMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

// MakeTurn - places mark on the board and moves the game forward.
func (that *Game) MakeTurn(mark string, action tictactoe.Action) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Result(that.Board, action)
	if err != nil {
		return fmt.Errorf("failed to apply turn: %w", err)
	}

	that.Board = next
	that.Moves = append(that.Moves, action)
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner.String()
		that.Status = StatusFinished
		that.Turn = ""

		return
	}

	// the game will continue until all the squares are full
	if that.Board.Terminal() {
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""

		return
	}

	that.Status = StatusOngoing
	that.Turn = that.Board.Player().String()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
