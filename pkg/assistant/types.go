package assistant

import "context"

// Responder answers a free-form portal question. It backs the assistant's
// fallback branch; the keyword branches never consult it.
type Responder interface {
	Reply(ctx context.Context, question string) (string, error)
}
