package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Message is one WebSocket exchange: an action name plus its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player     *entity.Player `json:"player,omitempty"`
	Game       *entity.Game   `json:"game,omitempty"`
	Move       *engine.Move   `json:"move,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// frame is one WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	length  uint64
	payload []byte
}
