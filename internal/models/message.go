package models

// Role identifies the author of a conversation message.
type Role string

// Conversation roles recognized by the API
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single entry in the conversation transcript
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage creates a user-authored message
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewModelMessage creates a model-authored message
func NewModelMessage(content string) Message {
	return Message{Role: RoleModel, Content: content}
}

// IsUser reports whether the message was authored by the user
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
