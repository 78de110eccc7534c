package entity

import "strings"

const botIDPrefix = "bot:"

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

// RecordResult bumps the player's tally for one finished game. The
// winner argument is the winning mark or the tie mark.
func (that *Player) RecordResult(winner string) {
	switch winner {
	case that.Mark:
		that.Wins++
	case PlayerTie:
		that.Draws++
	default:
		that.Losses++
	}
}
