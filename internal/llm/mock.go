package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	Calls            int
	LastSystemPrompt string
	LastUserPrompt   string
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls++
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt
	return m.Response, m.Err
}
