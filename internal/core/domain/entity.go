package domain

// Keyed is implemented by every record the dashboard API identifies by a
// numeric id.
type Keyed interface {
	Key() int64
}

// Entity is a Keyed record that can be copied with a new identity. The mock
// API repositories use WithKey when assigning ids on insert.
type Entity[T any] interface {
	Keyed
	WithKey(id int64) T
}

// Input is a write payload that produces a T from an existing record.
// For creates, current is the zero value.
type Input[T any] interface {
	Apply(current T, now Time) T
}

// Envelope is the response wrapper used by every resource endpoint.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
