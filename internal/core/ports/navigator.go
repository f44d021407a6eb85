package ports

import "context"

// Navigator moves the operator to another page of the dashboard.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// ChangeNotifier is told whenever a piece of client state changes, keyed by
// resource name ("admins", "stats", "session", ...).
type ChangeNotifier interface {
	Changed(resource string)
}
