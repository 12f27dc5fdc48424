package api

import (
	"context"
	"sync"

	"github.com/diogo/genchat/internal/config"
	"github.com/diogo/genchat/internal/models"
)

// Greeting seeds every new conversation as the first model message.
const Greeting = "Hi there! How can I help you today?"

// ChatSession owns the conversation transcript. The transcript is ordered
// and append-only: messages are never removed or reordered, and a failed
// request does not roll back the user message that triggered it.
type ChatSession struct {
	client  GenerativeClient
	mu      sync.RWMutex // Protects history, persona
	history []models.Message
	persona config.Persona
}

// NewChatSession creates a session seeded with the greeting
func NewChatSession(client GenerativeClient, persona config.Persona) *ChatSession {
	return &ChatSession{
		client:  client,
		persona: persona,
		history: []models.Message{models.NewModelMessage(Greeting)},
	}
}

// Messages returns a snapshot copy of the transcript
func (s *ChatSession) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of messages in the transcript
func (s *ChatSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// Last returns the newest message, if any
func (s *ChatSession) Last() (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return models.Message{}, false
	}
	return s.history[len(s.history)-1], true
}

// LastReply returns the newest model message, if any
func (s *ChatSession) LastReply() (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Role == models.RoleModel {
			return s.history[i], true
		}
	}
	return models.Message{}, false
}

// Persona returns the active persona
func (s *ChatSession) Persona() config.Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persona
}

// SetPersona switches the active persona. Messages already in the
// transcript keep the preamble they were composed with.
func (s *ChatSession) SetPersona(p config.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
}

// Client returns the underlying API client
func (s *ChatSession) Client() GenerativeClient {
	return s.client
}

// AppendUser composes text with the active persona's preamble, appends the
// composed form as a user message, and returns it. The composed form is
// what the transcript stores and what the API receives.
func (s *ChatSession) AppendUser(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	composed := s.persona.Compose(text)
	s.history = append(s.history, models.NewUserMessage(composed))
	return composed
}

// AppendModel appends a model message verbatim
func (s *ChatSession) AppendModel(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, models.NewModelMessage(content))
}

// Generate sends the current transcript to the API and appends the reply on
// success. On failure nothing is appended; any user message added before
// the call stays in place.
func (s *ChatSession) Generate(ctx context.Context) (string, error) {
	snapshot := s.Messages()

	reply, err := s.client.GenerateContent(ctx, snapshot)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = append(s.history, models.NewModelMessage(reply))
	s.mu.Unlock()

	return reply, nil
}

// Send appends text as a composed user message and completes the exchange.
// Success grows the transcript by exactly two messages, failure by one.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	s.AppendUser(text)
	return s.Generate(ctx)
}
