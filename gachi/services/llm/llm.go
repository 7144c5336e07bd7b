package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the upstream model boundary. Implementations return the
// whole answer text or an error; there is no partial result.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
