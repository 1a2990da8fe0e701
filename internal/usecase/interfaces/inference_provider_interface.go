package interfaces

import "context"

// IInferenceProvider abstracts a language-model invocation. The core builds
// the prompt and is responsible for parsing/validating whatever comes back;
// providers only move text.
//
// Both extraction strategies and the conversational-reply capability satisfy
// this contract.

type IInferenceProvider interface {
	Infer(ctx context.Context, prompt string) (string, error)
}
