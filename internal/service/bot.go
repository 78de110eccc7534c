package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// share of optimal moves on the medium tier
const mediumOptimalRate = 0.7

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn finds the bot player in the game and plays one move through
// the difficulty strategy of the game's tier.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	strategy := strategyFor(game.Difficulty, botPlayer.Mark)

	move, err := strategy.PickMove(&game.Board)
	if err != nil {
		return fmt.Errorf("failed to pick move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Row, move.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// strategyFor maps a difficulty tier onto a move policy over the
// search. The search itself always plays optimally; the tiers only
// decide how often to ask it.
func strategyFor(difficulty, botMark string) engine.Strategy {
	search := engine.NewMinimax(botMark, entity.ToggleMark(botMark))

	switch difficulty {
	case entity.DifficultyEasy:
		return engine.NewRandomStrategy()
	case entity.DifficultyMedium:
		return engine.NewMixedStrategy(search, mediumOptimalRate)
	default:
		return engine.NewOptimalStrategy(search)
	}
}
