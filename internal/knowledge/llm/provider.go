package llm

import "context"

// Provider is a single synchronous generation call - no streaming, no
// multi-turn state, no transparent retries. A transient provider failure is
// surfaced to the caller, classified, and left to them.
type Provider interface {
	Generate(ctx context.Context, systemInstruction string, question string) (string, error)
}
