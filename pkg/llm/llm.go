package llm

import "context"

// ChatModel is the minimal abstraction for chat-based LLMs the scoring
// layer depends on. Concrete providers stay behind this interface.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
