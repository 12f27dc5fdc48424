// Package models contains data types and constants for the generative
// language API.
package models

import "fmt"

// API surface
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	APIVersion     = "v1beta"
)

// GenerateEndpoint returns the generateContent URL for a model.
func GenerateEndpoint(baseURL, modelID string) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent", baseURL, APIVersion, modelID)
}

// Model represents a known model with its display label
type Model struct {
	ID    string
	Label string
}

// Available models
var (
	ModelFlash = Model{
		ID:    "gemini-2.0-flash",
		Label: "Gemini 2.0 Flash",
	}

	ModelFlashLite = Model{
		ID:    "gemini-2.0-flash-lite",
		Label: "Gemini 2.0 Flash-Lite",
	}

	ModelPro = Model{
		ID:    "gemini-1.5-pro",
		Label: "Gemini 1.5 Pro",
	}

	// DefaultModel is the recommended default
	DefaultModel = ModelFlash
)

// AllModels returns a list of all known models
func AllModels() []Model {
	return []Model{ModelFlash, ModelFlashLite, ModelPro}
}

// ModelFromID returns a Model by its identifier. Unknown identifiers pass
// through unchanged so newly released models can be targeted without a
// client update.
func ModelFromID(id string) Model {
	for _, m := range AllModels() {
		if m.ID == id {
			return m
		}
	}
	return Model{ID: id, Label: id}
}

// DefaultHeaders returns the default headers for generate requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "genchat/0.1",
	}
}
