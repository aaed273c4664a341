// Package order holds the order record and its error values.
package order

import (
	"errors"
	"fmt"

	"shopflow/pkg/product"
)

// Order is a purchase order with the products it referenced, captured at the
// time the order was written.
type Order struct {
	ID       int               `json:"id"`
	Products []product.Product `json:"products"`
}

// Clone returns a copy of o that shares no memory with it.
func (o Order) Clone() Order {
	ps := make([]product.Product, len(o.Products))
	copy(ps, o.Products)
	return Order{ID: o.ID, Products: ps}
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateID is returned when an order with the assigned id already exists.
	ErrDuplicateID = errors.New("order id already exists")
)

// ProductNotFoundError reports a product key an order referenced that could
// not be resolved.
type ProductNotFoundError struct {
	Key int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with key=%d does not exist", e.Key)
}

// Unwrap lets errors.Is match product.ErrNotFound.
func (e *ProductNotFoundError) Unwrap() error {
	return product.ErrNotFound
}
