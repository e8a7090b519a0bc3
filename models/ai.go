package models

// AIRequest is the payload coming from the frontend into /api/ai/chat.
type AIRequest struct {
	Text    string `json:"text" binding:"required"` // user's message
	Subject string `json:"subject,omitempty"`       // optional subject the student is working on
	TutorID string `json:"tutorId,omitempty"`       // set when chatting inside a session
}

// AIResponse is what the handler returns to the frontend.
type AIResponse struct {
	ResponseText string `json:"response"`
}

// AITurn is one exchange kept in the rolling per-user context.
type AITurn struct {
	Role string `json:"role"` // "student" or "assistant"
	Text string `json:"text"`
}

// AIContext is the rolling conversation state cached in Redis.
type AIContext struct {
	Subject string   `json:"subject,omitempty"`
	Turns   []AITurn `json:"turns,omitempty"`
}
