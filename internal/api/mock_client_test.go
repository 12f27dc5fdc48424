package api

import (
	"context"
	"errors"
	"testing"

	"github.com/diogo/genchat/internal/models"
)

func TestMockClientRecordsCalls(t *testing.T) {
	mock := &MockClient{GenerateContentVal: "canned"}
	history := []models.Message{models.NewUserMessage("hi")}

	got, err := mock.GenerateContent(context.Background(), history)
	if err != nil {
		t.Fatalf("GenerateContent() returned error: %v", err)
	}
	if got != "canned" {
		t.Errorf("GenerateContent() = %q, want canned", got)
	}
	if mock.GenerateContentCalled != 1 {
		t.Errorf("GenerateContentCalled = %d, want 1", mock.GenerateContentCalled)
	}
	if len(mock.LastHistory) != 1 || mock.LastHistory[0].Content != "hi" {
		t.Error("LastHistory should record the passed history")
	}
}

func TestMockClientReturnsConfiguredError(t *testing.T) {
	wantErr := errors.New("configured failure")
	mock := &MockClient{GenerateContentErr: wantErr}

	_, err := mock.GenerateContent(context.Background(), []models.Message{models.NewUserMessage("hi")})
	if !errors.Is(err, wantErr) {
		t.Errorf("GenerateContent() error = %v, want configured error", err)
	}
}

func TestMockClientModelFallback(t *testing.T) {
	mock := &MockClient{}
	if mock.Model() != models.DefaultModel.ID {
		t.Errorf("Model() = %q, want default model", mock.Model())
	}

	mock.SetModel("custom-model")
	if mock.Model() != "custom-model" {
		t.Errorf("Model() = %q after SetModel, want custom-model", mock.Model())
	}
}

func TestMockClientAPIKey(t *testing.T) {
	mock := &MockClient{}
	if mock.HasAPIKey() {
		t.Error("HasAPIKey() should be false before SetAPIKey")
	}

	mock.SetAPIKey("secret")
	if !mock.HasAPIKey() {
		t.Error("HasAPIKey() should be true after SetAPIKey")
	}
	if mock.APIKeyVal != "secret" {
		t.Errorf("APIKeyVal = %q, want secret", mock.APIKeyVal)
	}
}
