package api

import (
	"context"

	"github.com/diogo/genchat/internal/models"
)

// MockClient is a mock implementation of GenerativeClient for testing
type MockClient struct {
	// Mock return values
	GenerateContentVal string
	GenerateContentErr error
	ModelVal           string
	APIKeyVal          string

	// Call counters/recorders
	GenerateContentCalled int
	LastHistory           []models.Message
	LastCtx               context.Context
}

// Ensure MockClient implements GenerativeClient
var _ GenerativeClient = (*MockClient)(nil)

func (m *MockClient) GenerateContent(ctx context.Context, history []models.Message) (string, error) {
	m.GenerateContentCalled++
	m.LastCtx = ctx
	m.LastHistory = append([]models.Message(nil), history...)
	if m.GenerateContentErr != nil {
		return "", m.GenerateContentErr
	}
	return m.GenerateContentVal, nil
}

func (m *MockClient) Model() string {
	if m.ModelVal == "" {
		return models.DefaultModel.ID
	}
	return m.ModelVal
}

func (m *MockClient) SetModel(id string) {
	m.ModelVal = id
}

func (m *MockClient) SetAPIKey(key string) {
	m.APIKeyVal = key
}

func (m *MockClient) HasAPIKey() bool {
	return m.APIKeyVal != ""
}
