package ports

import "context"

// KeyValueStore is the opaque string persistence every store is built on.
// A missing key is reported with found == false, never as an error; errors
// are reserved for I/O failures of the backend.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}
