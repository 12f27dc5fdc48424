// Package api provides the generative language API client implementation.
package api

// GJSON paths for extracting values from generateContent responses.
const (
	// Success response paths
	PathCandidates   = "candidates"
	PathCandParts    = "candidates.0.content.parts"
	PathFinishReason = "candidates.0.finishReason"
	PathBlockReason  = "promptFeedback.blockReason"

	// Error body paths - non-200 responses carry {"error": {...}}
	PathErrorCode    = "error.code"
	PathErrorMessage = "error.message"
	PathErrorStatus  = "error.status"
)
