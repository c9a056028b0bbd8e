package driven

import "context"

// URLOpener dispatches a URL to whatever the host registers for its scheme.
// Dispatch is fire-and-forget: implementations report failure to launch
// the handler, never the handler's own outcome.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
