package ports

import "context"

// Requester performs one JSON request against the dashboard API. A nil body
// sends no payload; a nil out discards the response body.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
