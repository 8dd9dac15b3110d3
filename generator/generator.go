package generator

import "context"

type Message struct {
	Role    string
	Content string
}

// Generator is the outbound model call surface. Chat handles general
// completion (optionally constrained to a single JSON object); Reason uses
// a deeper model where the provider offers one, falling back to Chat.
type Generator interface {
	Chat(ctx context.Context, messages []Message, opts ...ChatOption) (string, error)
	Reason(ctx context.Context, prompt string) (string, error)
}
