package llm

import (
	"context"
	"fmt"
)

// MockClient is a deterministic domain.ChatClient for dev and tests.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reply implements domain.ChatClient.
func (m *MockClient) Reply(_ context.Context, _ string, message string) (string, error) {
	return fmt.Sprintf("I hear you. You said %q. Tell me a little more about how that feels.", message), nil
}
