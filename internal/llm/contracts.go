package llm

import "context"

// Completer is the completion capability the pipeline depends on: one plain
// string in, one free-form reply out. No structured-output or function-calling
// contract is assumed, so any provider that can echo JSON in prose satisfies
// it. Determinism and sampling settings are the implementation's concern.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
