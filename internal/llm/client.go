package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client generates a completion for the given system prompt and
// conversation messages. Implementations do not retry on failure.
type Client interface {
	Generate(ctx context.Context, systemPrompt string, messages []Message) (Response, error)
}
