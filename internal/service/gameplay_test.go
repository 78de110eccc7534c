package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGamePlayService(st *suite.Suite) (GamePlayService, PlayerService) {
	playerService := NewPlayerService(repository.NewPlayerRepository(st.Storage))
	gameService := NewGameService(repository.NewGameRepository(st.Storage))

	return NewGamePlayService(st.Logger, playerService, gameService, NewBotService()), playerService
}

func TestGamePlayService_GetOrCreateGame(t *testing.T) {
	ctx, st := suite.New(t)
	gamePlay, playerService := newGamePlayService(st)

	// Given: a fresh player
	player, err := playerService.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	// When: asking for a game
	game, err := gamePlay.GetOrCreateGame(ctx, player, entity.DifficultyHard)
	require.NoError(t, err)

	// Then: a running bot game with two players and assigned marks
	require.Len(t, game.Players, 2)
	assert.Equal(t, entity.StatusOngoing, game.Status)

	var bot, human *entity.Player
	for _, p := range game.Players {
		if p.IsBot() {
			bot = p
		} else {
			human = p
		}
	}
	require.NotNil(t, bot)
	require.NotNil(t, human)
	assert.NotEqual(t, bot.Mark, human.Mark)

	// And: when the bot drew X it has already opened
	if bot.Mark == entity.PlayerX {
		assert.Len(t, game.Board.AvailableMoves(), 8)
		assert.Equal(t, human.Mark, game.Turn)
	} else {
		assert.True(t, game.Board.IsEmpty())
	}

	// And: asking again returns the same game
	sameGame, err := gamePlay.GetOrCreateGame(ctx, human, entity.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, game.ID, sameGame.ID)
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx, st := suite.New(t)
	gamePlay, playerService := newGamePlayService(st)

	// Given: a player in a hard bot game
	player, err := playerService.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	game, err := gamePlay.GetOrCreateGame(ctx, player, entity.DifficultyHard)
	require.NoError(t, err)

	// When: the human naively plays the first open cell until the end
	for game.IsOngoing() {
		moves := game.Board.AvailableMoves()
		require.NotEmpty(t, moves)

		game, err = gamePlay.MakeTurn(ctx, player.ID, moves[0].Row, moves[0].Col)
		require.NoError(t, err)
	}

	// Then: the game finished and the optimal bot did not lose
	require.True(t, game.IsFinished())

	var human *entity.Player
	for _, p := range game.Players {
		if !p.IsBot() {
			human = p
		}
	}
	require.NotNil(t, human)
	assert.NotEqual(t, human.Mark, game.Winner)

	// And: the human's tally was recorded exactly once
	storedPlayer, err := playerService.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, storedPlayer.Wins+storedPlayer.Losses+storedPlayer.Draws)
}

func TestGamePlayService_RestartGame(t *testing.T) {
	ctx, st := suite.New(t)
	gamePlay, playerService := newGamePlayService(st)

	// Given: a finished game
	player, err := playerService.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	game, err := gamePlay.GetOrCreateGame(ctx, player, entity.DifficultyHard)
	require.NoError(t, err)

	for game.IsOngoing() {
		moves := game.Board.AvailableMoves()
		game, err = gamePlay.MakeTurn(ctx, player.ID, moves[0].Row, moves[0].Col)
		require.NoError(t, err)
	}

	// When: restarting it
	game, err = gamePlay.RestartGame(ctx, player.ID)
	require.NoError(t, err)

	// Then: the board is fresh and the game is running again
	assert.Equal(t, entity.StatusOngoing, game.Status)
	assert.Equal(t, entity.EmptyCell, game.Winner)
	assert.LessOrEqual(t, 8, len(game.Board.AvailableMoves()))
}

func TestGamePlayService_CleanupGame(t *testing.T) {
	ctx, st := suite.New(t)
	gamePlay, playerService := newGamePlayService(st)

	// Given: a player in a game
	player, err := playerService.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	game, err := gamePlay.GetOrCreateGame(ctx, player, entity.DifficultyEasy)
	require.NoError(t, err)

	// When: cleaning the game up
	err = gamePlay.CleanupGame(ctx, game)
	require.NoError(t, err)

	// Then: the player is detached and the game is gone
	storedPlayer, err := playerService.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Empty(t, storedPlayer.GameID)
}
