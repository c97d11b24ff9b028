package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// VertexClient implements domain.ChatClient on Vertex AI (Gemini). Like
// the OpenAI adapter it keeps a per-session transcript so the model sees
// prior turns when the same session id comes back.
type VertexClient struct {
	client    *genai.Client
	modelName string

	mu       sync.Mutex
	sessions map[string][]*genai.Content
}

func NewVertexClient(ctx context.Context, projectID, location, modelName string) (*VertexClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("project and location are required for the vertex provider")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:    client,
		modelName: modelName,
		sessions:  make(map[string][]*genai.Content),
	}, nil
}

// Reply implements domain.ChatClient.
func (v *VertexClient) Reply(ctx context.Context, sessionID, message string) (string, error) {
	v.mu.Lock()
	prior := v.sessions[sessionID]
	contents := make([]*genai.Content, 0, len(prior)+1)
	contents = append(contents, prior...)
	v.mu.Unlock()

	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	temp := float32(0.7)
	topP := float32(0.9)
	outputTokens := int32(1000)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}

	v.mu.Lock()
	v.sessions[sessionID] = append(contents, genai.NewContentFromText(text, genai.RoleModel))
	v.mu.Unlock()

	return text, nil
}
