package llm

import (
	"context"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements domain.ChatClient on the OpenAI chat-completion
// API. The completion API is stateless, so the client keeps a per-session
// transcript and replays it on each call; callers only re-supply the
// session id. The transcript lives in process memory and is lost on
// restart, matching the "provider owns continuity" contract.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int

	mu       sync.Mutex
	sessions map[string][]openai.ChatCompletionMessage
}

func NewOpenAIClient(apiKey, model string, maxTokens int) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
		sessions:  make(map[string][]openai.ChatCompletionMessage),
	}, nil
}

// Reply implements domain.ChatClient.
func (c *OpenAIClient) Reply(ctx context.Context, sessionID, message string) (string, error) {
	history := c.sessionHistory(sessionID)

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt,
	})
	msgs = append(msgs, history...)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  msgs,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	reply := resp.Choices[0].Message.Content

	c.mu.Lock()
	c.sessions[sessionID] = append(c.sessions[sessionID],
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
	)
	c.mu.Unlock()

	return reply, nil
}

func (c *OpenAIClient) sessionHistory(sessionID string) []openai.ChatCompletionMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]openai.ChatCompletionMessage, len(c.sessions[sessionID]))
	copy(history, c.sessions[sessionID])
	return history
}
