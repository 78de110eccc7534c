package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	errPlayerRequired = errors.New("player is required")
	errMoveRequired   = errors.New("move is required")
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errPlayerRequired.Error())
	}

	player, err := that.players.GetOrCreate(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{
		Player: player,
	}

	if player.GameID != "" {
		game, gameErr := that.gamePlay.GetOrCreateGame(ctx, player, that.defaultDifficulty)
		if gameErr != nil {
			log.Error("failed to get current game", "gameID", player.GameID, "error", gameErr)
			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
		}
		payloadResp.Game = game
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errPlayerRequired.Error())
	}

	player, err := that.players.GetOrCreate(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	difficulty := payloadReq.Difficulty
	if difficulty == "" {
		difficulty = that.defaultDifficulty
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, difficulty)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new game")
	}

	log.Info("game started", "gameID", game.ID, "difficulty", game.Difficulty)

	return that.sendMessage(bufrw, msg.Action, Payload{Player: player, Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errPlayerRequired.Error())
	}

	if payloadReq.Move == nil {
		log.Error("move is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errMoveRequired.Error())
	}

	game, err := that.gamePlay.MakeTurn(ctx, payloadReq.Player.ID, payloadReq.Move.Row, payloadReq.Move.Col)
	if err != nil {
		log.Error("failed to make turn", "error", err)

		// invalid moves are part of the game, report them to the
		// client with the current state attached
		payloadResp := Payload{Game: game, Error: turnErrorMessage(err)}
		return that.sendMessage(bufrw, msg.Action, payloadResp)
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleRestartGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleRestartGame")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errPlayerRequired.Error())
	}

	game, err := that.gamePlay.RestartGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to restart game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to restart the game")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleLeaveGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleLeaveGame")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, errPlayerRequired.Error())
	}

	player, err := that.players.GetByID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to get the player")
	}

	if player.GameID == "" {
		return that.sendErrorResponse(bufrw, msg.Action, apperror.ErrNoActiveGames.Error())
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, that.defaultDifficulty)
	if err != nil {
		log.Error("failed to get game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
	}

	if err = that.gamePlay.CleanupGame(ctx, game); err != nil {
		log.Error("failed to clean up game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to leave the game")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Player: player})
}

func parsePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

// turnErrorMessage maps domain errors onto client-facing text.
func turnErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNotYourTurn):
		return apperror.ErrNotYourTurn.Error()
	case errors.Is(err, apperror.ErrCellOccupied):
		return apperror.ErrCellOccupied.Error()
	case errors.Is(err, apperror.ErrGameFinished):
		return apperror.ErrGameFinished.Error()
	case errors.Is(err, entity.ErrInvalidCell):
		return entity.ErrInvalidCell.Error()
	default:
		return "failed to make turn"
	}
}
