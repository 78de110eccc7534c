package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// GetOrCreateGame returns the player's current game or starts a new
// bot game on the given difficulty. Marks are assigned at random; when
// the bot draws X it opens immediately.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error) {
	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.CreateGame(ctx, player, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.addBotToGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to add bot to game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human move and, if the game is still going,
// lets the bot answer in the same call.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("game is not playable: %w", err)
	}

	if err = game.MakeTurn(player.Mark, row, col); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		if err = that.recordScores(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to record scores: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// RestartGame resets the board for a rematch, keeping players, marks
// and score tallies. If it is the bot's turn to open, it does.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.Restart()

	if err = that.letBotOpen(game); err != nil {
		return nil, err
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// CleanupGame deletes a finished game and detaches its players.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.Update(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
	}

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game cleaned up")

	return nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID)

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	playerMark, botMark := game.GetRandomMarks()
	botPlayer.Mark = botMark

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Mark = playerMark
		if err := that.playerService.Update(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
	}

	if err := that.letBotOpen(game); err != nil {
		return err
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gamePlayService) letBotOpen(game *entity.Game) error {
	for _, player := range game.Players {
		if player.IsBot() && player.Mark == game.Turn {
			if err := that.botService.MakeTurn(game); err != nil {
				return fmt.Errorf("bot failed to open: %w", err)
			}
		}
	}

	return nil
}

// recordScores bumps every player's tally once per finished game and
// persists the human ones.
func (that *gamePlayService) recordScores(ctx context.Context, game *entity.Game) error {
	for _, player := range game.Players {
		player.RecordResult(game.Winner)

		if player.IsBot() {
			continue
		}

		if err := that.playerService.Update(ctx, player); err != nil {
			return fmt.Errorf("failed to update player score: %w", err)
		}
	}

	return nil
}
