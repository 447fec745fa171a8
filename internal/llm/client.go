package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Message is a role-tagged chat message sent upstream.
// Role must be one of "system", "user", or "assistant".
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatClient sends a message list to a language model and returns the
// rendered text. Implementations must be safe for concurrent use.
type ChatClient interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// groqClient implements ChatClient against Groq's OpenAI-compatible
// chat completions API.
type groqClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewGroqClient creates a ChatClient for the given endpoint and model.
// An empty baseURL uses the library default (api.openai.com).
func NewGroqClient(apiKey, baseURL, model string, temperature float64) ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &groqClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(temperature),
	}
}

func (c *groqClient) Chat(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		switch role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			role = RoleUser
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
