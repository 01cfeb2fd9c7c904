// Package chat provides the gated conversational assistant. Messages
// pass the topic gate before any enrichment call; every exchange, refused
// or answered, is recorded as an immutable turn.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one user-message/assistant-response pair. Turns are immutable
// once created and deletable only by their owner.
type Turn struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Message   string     `json:"message"`
	Response  string     `json:"response"`
	IsMedical bool       `json:"is_medical"`
	ContextID *uuid.UUID `json:"context_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// SendCommand is an incoming chat message. ContextID optionally pins a
// specific document as conversation context.
type SendCommand struct {
	Message   string     `json:"message"`
	ContextID *uuid.UUID `json:"context_id,omitempty"`
}

// Reply is the assistant's answer to one message.
type Reply struct {
	Response  string `json:"response"`
	IsMedical bool   `json:"is_medical"`
}
