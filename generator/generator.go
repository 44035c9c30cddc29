package generator

import "context"

const (
	RoleHuman     = "human"
	RoleAssistant = "assistant"
)

// Message is a single prior conversation turn half, tagged with its role.
type Message struct {
	Role    string
	Content string
}

type Generator interface {
	Generate(ctx context.Context, system string, history []Message, input string) (string, error)
}
