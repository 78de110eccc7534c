package pkg

import (
	"crypto/rand"
	"crypto/sha1" //nolint: gosec // required by the websocket handshake
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
)

// websocketMagicGUID is fixed by RFC 6455 for the Sec-WebSocket-Accept
// computation.
const websocketMagicGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

const gameIDLength = 6

// GenerateGameID returns a short numeric id for a new game.
func GenerateGameID() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < gameIDLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return fmt.Sprintf("%0*d", gameIDLength, n), nil
}

// GenerateNewSessionID returns a random hex session id.
func GenerateNewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Errorf("failed to generate session id: %w", err))
	}

	return hex.EncodeToString(buf)
}

// GenerateAcceptKey computes the Sec-WebSocket-Accept value for a
// client's Sec-WebSocket-Key.
func GenerateAcceptKey(key string) string {
	hash := sha1.Sum([]byte(key + websocketMagicGUID)) //nolint: gosec // required by the websocket handshake

	return base64.StdEncoding.EncodeToString(hash[:])
}
