package llm

import (
	"context"
	"fmt"

	"github.com/mkarren/codeforge/history"
)

// Client is the interface for one round trip with a Large Language Model.
// The first message may carry role "system"; providers map it to their
// native system-prompt mechanism.
type Client interface {
	Chat(ctx context.Context, messages []history.Message) (*history.Message, error)
}

// MockClient answers without any network access. Useful for tests and for
// trying the terminal without credentials.
type MockClient struct{}

func (m *MockClient) Chat(ctx context.Context, messages []history.Message) (*history.Message, error) {
	var lastUser string
	for _, msg := range messages {
		if msg.Role == "user" {
			lastUser = msg.Content
		}
	}
	return &history.Message{
		Role:    "assistant",
		Content: fmt.Sprintf("I am a mock model with no API access. You said: '%s'.", lastUser),
	}, nil
}
