// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the durable string-keyed store the budgeting state is
// persisted to. The core assumes nothing about the backend beyond
// get/set semantics; sqlite, postgres and redis implementations live in
// the integration layer.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Ping reports backend availability for health checks.
	Ping(ctx context.Context) error
}
