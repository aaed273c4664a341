// Package product holds the product record and the ordered tree that stores it.
package product

import "errors"

// Product is a catalogue entry addressed by an integer key.
type Product struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
}

var (
	// ErrNotFound indicates the requested product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateKey is returned when inserting a key that is already present.
	ErrDuplicateKey = errors.New("duplicate product key")
)
