package api

import (
	"context"

	"github.com/diogo/genchat/internal/models"
)

// GenerativeClient is the client surface the TUI and commands depend on.
// The concrete Client talks HTTP; tests substitute a MockClient.
type GenerativeClient interface {
	// GenerateContent sends the full conversation history, oldest first,
	// and returns the reply text.
	GenerateContent(ctx context.Context, history []models.Message) (string, error)

	// Model returns the model identifier used for requests.
	Model() string

	// SetModel changes the model identifier for subsequent requests.
	SetModel(id string)

	// SetAPIKey replaces the API key for subsequent requests.
	SetAPIKey(key string)

	// HasAPIKey reports whether a key is configured.
	HasAPIKey() bool
}
