package websocket

import (
	"encoding/json"
	"time"

	"github.com/dom/recipe-share/internal/domain"
)

type MessageType string

const (
	// Server to Client
	MessageTypeRecipeCreated MessageType = MessageType(domain.RecipeCreated)
	MessageTypeRecipeUpdated MessageType = MessageType(domain.RecipeUpdated)
	MessageTypeRecipeDeleted MessageType = MessageType(domain.RecipeDeleted)
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// RecipeDeletedPayload identifies a recipe that no longer exists.
type RecipeDeletedPayload struct {
	ID string `json:"_id"`
}

// NewRecipeMessage converts a stored mutation into a feed message. Created
// and updated events carry the full recipe.
func NewRecipeMessage(event domain.RecipeEvent) (*Message, error) {
	if event.Type == domain.RecipeDeleted || event.Recipe == nil {
		return NewMessage(MessageType(event.Type), RecipeDeletedPayload{ID: event.RecipeID.String()})
	}
	return NewMessage(MessageType(event.Type), event.Recipe)
}

func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}
