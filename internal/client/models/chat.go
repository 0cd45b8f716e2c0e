package models

// ChatMessage is one turn of a chatbot conversation as stored in history.
type ChatMessage struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatReply is the response to a sent message. The backend echoes the
// session id so the client can keep the conversation going.
type ChatReply struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Provider  string `json:"provider,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ChatSession identifies a server-side conversation.
type ChatSession struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// ChatHistory is the stored transcript of a session.
type ChatHistory struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"session_id,omitempty"`
	Messages  []ChatMessage `json:"messages"`
}
