// Package history keeps the conversation between the user and the model for
// the lifetime of one agent run. Nothing is written to disk; each run starts
// with a clean slate.
package history

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// History is an ordered, in-memory conversation transcript.
type History struct {
	messages []Message
}

// New creates a history. If systemPrompt is non-empty it becomes the first
// message, with role "system".
func New(systemPrompt string) *History {
	h := &History{}
	if systemPrompt != "" {
		h.messages = append(h.messages, Message{Role: "system", Content: systemPrompt})
	}
	return h
}

// Add appends a message to the transcript.
func (h *History) Add(msg Message) {
	h.messages = append(h.messages, msg)
}

// AddUser appends a user turn.
func (h *History) AddUser(content string) {
	h.Add(Message{Role: "user", Content: content})
}

// AddAssistant appends an assistant turn.
func (h *History) AddAssistant(content string) {
	h.Add(Message{Role: "assistant", Content: content})
}

// Messages returns the transcript in order. The returned slice is shared;
// callers must not modify it.
func (h *History) Messages() []Message {
	return h.messages
}

// Len reports the number of messages, the system prompt included.
func (h *History) Len() int {
	return len(h.messages)
}

// Reset drops every turn except the system prompt. Used when the active
// project changes and the old conversation no longer applies.
func (h *History) Reset() {
	if len(h.messages) > 0 && h.messages[0].Role == "system" {
		h.messages = h.messages[:1]
		return
	}
	h.messages = nil
}
