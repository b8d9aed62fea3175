package llm

import (
	"context"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/mkarren/codeforge/errors"
	"github.com/mkarren/codeforge/history"
	"google.golang.org/api/option"
)

// GeminiLLMClient is a client for the Google Gemini API.
type GeminiLLMClient struct {
	model *genai.GenerativeModel
}

// NewGeminiLLMClient creates a new GeminiLLMClient.
// It requires the GEMINI_API_KEY environment variable to be set.
func NewGeminiLLMClient(ctx context.Context, modelName string, temperature float64) (*GeminiLLMClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create genai client")
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(temperature))
	model.ResponseMIMEType = "text/plain"

	return &GeminiLLMClient{model: model}, nil
}

// Chat sends the conversation to the Gemini API and returns the assistant's
// reply as a single message.
func (g *GeminiLLMClient) Chat(ctx context.Context, messages []history.Message) (*history.Message, error) {
	contents, system := convertMessagesToGeminiContent(messages)
	if len(contents) == 0 {
		return nil, errors.New("no user message to send")
	}

	if system != "" {
		g.model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	// The last message is the new prompt, the rest is chat history.
	last := contents[len(contents)-1]
	chat := g.model.StartChat()
	chat.History = contents[:len(contents)-1]

	resp, err := chat.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send message to Gemini")
	}
	return processGeminiResponse(resp)
}

// convertMessagesToGeminiContent converts our internal message format to
// Gemini's, splitting off the system prompt (Gemini carries it as a model
// setting, not a turn).
func convertMessagesToGeminiContent(messages []history.Message) ([]*genai.Content, string) {
	var contents []*genai.Content
	var system string
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			system = msg.Content
		case "assistant":
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}
	}
	return contents, system
}

// processGeminiResponse flattens a Gemini response into one assistant
// message.
func processGeminiResponse(resp *genai.GenerateContentResponse) (*history.Message, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("received an empty response from Gemini")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content += string(text)
		}
	}
	return &history.Message{Role: "assistant", Content: content}, nil
}
