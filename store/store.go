package store

import "errors"

// ErrNotFound is returned when a logical key has never been written.
var ErrNotFound = errors.New("not found")

// Fixed logical keys. Each key holds one whole JSON-encoded collection.
const (
	KeyProducts = "products"
	KeyUsers    = "users"
	KeySales    = "sales"
	KeySettings = "settings"
)

// Store is the persisted key-value surface. Read decodes the last-written
// value for key into out; Write replaces it wholesale.
type Store interface {
	Read(key string, out any) error
	Write(key string, v any) error
	Close() error
}
