package llm

// MessagesRequest is the Anthropic messages API request body.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContentBlock is one element of a response's content array. Only "text"
// blocks carry usable output here.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type MessagesResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"` // "message" or "error"
	Role       string         `json:"role"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
