package port

import "context"

// AnswerProvider abstracts the remote language model. The API key is the
// caller's own credential, forwarded per request and never stored.
type AnswerProvider interface {
	GenerateAnswer(ctx context.Context, prompt, apiKey string) (string, error)
}
