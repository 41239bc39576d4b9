// Package store provides the shared durable key-value store that user
// preferences persist to. The store is a single sqlite file under the
// application's shared data directory, readable and writable by both the
// main app process and the extension process.
package store

// Backing is a string-keyed, string-valued durable store. Typed encoding
// is the settings layer's job; the backing store only moves raw values.
//
// The store is shared between cooperating processes. No locking is layered
// on top of what the engine provides: concurrent writers to the same key
// race, last write wins.
type Backing interface {
	// Get returns the raw value for key. ok is false when no value is
	// stored under key.
	Get(key string) (value string, ok bool, err error)

	// Set writes the raw value for key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the value for key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Flush forces pending writes to durable storage. Used before an
	// anticipated process termination.
	Flush() error
}
