package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type scoreResponse struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

func (that *Server) pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// scoreHandler returns the win/loss/draw tally for a player.
func (that *Server) scoreHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "scoreHandler")

	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}

	player, err := that.players.GetByID(r.Context(), playerID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get player", "playerID", playerID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := scoreResponse{
		PlayerID: player.ID,
		Wins:     player.Wins,
		Losses:   player.Losses,
		Draws:    player.Draws,
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}
