package domain

import "errors"

// Boundary error kinds. Services wrap the underlying cause with these so
// the HTTP adapter can pick a status code with errors.Is without looking
// at the cause itself.
var (
	// ErrUpstreamChat marks any failure from the external LLM provider.
	ErrUpstreamChat = errors.New("upstream chat failure")

	// ErrStorage marks any failure from the document store.
	ErrStorage = errors.New("storage failure")
)
