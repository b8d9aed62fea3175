package llm

import (
	"context"
	"os"

	"github.com/mkarren/codeforge/errors"
	"github.com/mkarren/codeforge/history"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAILLMClient is a client for the OpenAI Chat Completion API.
type OpenAILLMClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAILLMClient creates a new OpenAILLMClient. It requires the
// OPENAI_API_KEY environment variable to be set and honors OPENAI_BASE_URL
// for custom API endpoints.
func NewOpenAILLMClient(ctx context.Context, modelName string, temperature float64) (*OpenAILLMClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	// The v2 SDK uses functional options for configuration.
	c := openai.NewClient(options...)
	return &OpenAILLMClient{client: &c, model: modelName, temperature: temperature}, nil
}

// Chat sends the conversation to OpenAI and returns the assistant's reply.
func (o *OpenAILLMClient) Chat(ctx context.Context, messages []history.Message) (*history.Message, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    convertMessagesToOpenAIContent(messages),
		Temperature: openai.Float(o.temperature),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send message to OpenAI")
	}
	if len(resp.Choices) == 0 {
		return &history.Message{Role: "assistant"}, nil
	}
	return &history.Message{Role: "assistant", Content: resp.Choices[0].Message.Content}, nil
}

// convertMessagesToOpenAIContent converts our internal message format to
// OpenAI's.
func convertMessagesToOpenAIContent(messages []history.Message) []openai.ChatCompletionMessageParamUnion {
	var chatMessages []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			chatMessages = append(chatMessages, openai.SystemMessage(msg.Content))
		case "assistant":
			chatMessages = append(chatMessages, openai.AssistantMessage(msg.Content))
		default:
			chatMessages = append(chatMessages, openai.UserMessage(msg.Content))
		}
	}
	return chatMessages
}
