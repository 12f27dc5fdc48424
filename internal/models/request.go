package models

// Part is a single content fragment inside a conversation turn.
type Part struct {
	Text string `json:"text"`
}

// Content is one conversation turn in API wire format.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// GenerateRequest is the JSON body for a generateContent call. The full
// transcript travels on every request; the API holds no server-side state.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// NewGenerateRequest converts a transcript into wire format, preserving
// message order.
func NewGenerateRequest(history []Message) *GenerateRequest {
	contents := make([]Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, Content{
			Role:  string(msg.Role),
			Parts: []Part{{Text: msg.Content}},
		})
	}
	return &GenerateRequest{Contents: contents}
}
