package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.PlayerX
	PlayerO   = engine.PlayerO
	PlayerTie = engine.PlayerTie

	EmptyCell = engine.EmptyCell
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var (
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

type Game struct {
	ID         string       `json:"id"`
	Board      engine.Board `json:"board"`
	Winner     string       `json:"winner,omitempty"`
	Status     string       `json:"status"`
	Turn       string       `json:"player_turn"`
	Players    []*Player    `json:"players,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
}

func NewGame(id, difficulty string) *Game {
	return &Game{
		ID:         id,
		Board:      *engine.NewBoard(),
		Turn:       PlayerX,
		Status:     StatusWaiting,
		Difficulty: difficulty,
	}
}

// MakeTurn applies one mark for the given player and advances the game
// state. Alternation lives here, not on the board: the board only
// validates coordinates and occupancy.
func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if row < 0 || row >= engine.Size || col < 0 || col >= engine.Size {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, row, col)
	}

	if !that.Board.ApplyMove(row, col, playerMark) {
		return apperror.ErrCellOccupied
	}

	that.Turn = ToggleMark(playerMark)
	that.UpdateGameState()

	return nil
}

// UpdateGameState derives winner and status from the board.
func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = outcome
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Restart clears the board for a rematch with the same players and
// marks.
func (that *Game) Restart() {
	that.Board.Reset()
	that.Winner = EmptyCell
	that.Turn = PlayerX
	that.Status = StatusOngoing
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
