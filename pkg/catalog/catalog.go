// Package catalog owns the product tree, the order list and the counters
// that assign their keys, and resolves the products referenced by orders.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"

	"shopflow/pkg/logger"
	"shopflow/pkg/order"
	"shopflow/pkg/order/memory"
	"shopflow/pkg/otel"
	"shopflow/pkg/product"
)

// Service is the process-wide state behind the HTTP API. Each store has its
// own lock; order writes hold the product read lock while resolving keys.
type Service struct {
	log *logger.Logger

	productMu  sync.RWMutex
	products   *product.Tree
	productSeq atomic.Int64

	orderMu  sync.RWMutex
	orders   *memory.List
	orderSeq atomic.Int64
}

// New returns a Service with empty stores and both counters at zero.
func New(log *logger.Logger) *Service {
	return &Service{
		log:      log,
		products: product.NewTree(),
		orders:   memory.New(),
	}
}

// CreateProduct stores value under the next product key.
func (s *Service) CreateProduct(ctx context.Context, value string) (product.Product, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.CreateProduct")
	defer span.End()

	key := int(s.productSeq.Add(1))
	span.SetAttributes(attribute.Int("product.key", key))

	s.productMu.Lock()
	err := s.products.Insert(key, value)
	s.productMu.Unlock()
	if err != nil {
		return product.Product{}, fmt.Errorf("insert product %d: %w", key, err)
	}

	s.log.Debug(ctx, "product created", "key", key)
	return product.Product{Key: key, Value: value}, nil
}

// GetProduct looks up a product by key.
func (s *Service) GetProduct(ctx context.Context, key int) (product.Product, error) {
	_, span := otel.AddSpan(ctx, "catalog.GetProduct", attribute.Int("product.key", key))
	defer span.End()

	s.productMu.RLock()
	defer s.productMu.RUnlock()
	v, ok := s.products.Search(key)
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	return product.Product{Key: key, Value: v}, nil
}

// UpdateProduct replaces the value of an existing product.
func (s *Service) UpdateProduct(ctx context.Context, key int, value string) (product.Product, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.UpdateProduct", attribute.Int("product.key", key))
	defer span.End()

	s.productMu.Lock()
	ok := s.products.Update(key, value)
	s.productMu.Unlock()
	if !ok {
		return product.Product{}, product.ErrNotFound
	}

	s.log.Debug(ctx, "product updated", "key", key)
	return product.Product{Key: key, Value: value}, nil
}

// DeleteProduct removes a product. Orders that already captured it keep
// their copy.
func (s *Service) DeleteProduct(ctx context.Context, key int) error {
	ctx, span := otel.AddSpan(ctx, "catalog.DeleteProduct", attribute.Int("product.key", key))
	defer span.End()

	s.productMu.Lock()
	ok := s.products.Delete(key)
	s.productMu.Unlock()
	if !ok {
		return product.ErrNotFound
	}

	s.log.Debug(ctx, "product deleted", "key", key)
	return nil
}

// ListProducts returns all products in ascending key order.
func (s *Service) ListProducts(ctx context.Context) []product.Product {
	_, span := otel.AddSpan(ctx, "catalog.ListProducts")
	defer span.End()

	s.productMu.RLock()
	defer s.productMu.RUnlock()
	return s.products.List()
}

// resolve snapshots every referenced product. The whole loop runs under one
// read lock so an order never mixes product states.
func (s *Service) resolve(keys []int) ([]product.Product, error) {
	s.productMu.RLock()
	defer s.productMu.RUnlock()

	out := make([]product.Product, 0, len(keys))
	for _, k := range keys {
		v, ok := s.products.Search(k)
		if !ok {
			return nil, &order.ProductNotFoundError{Key: k}
		}
		out = append(out, product.Product{Key: k, Value: v})
	}
	return out, nil
}

// CreateOrder assigns the next order id and stores an order for the given
// product keys. The id is consumed even when a key fails to resolve.
func (s *Service) CreateOrder(ctx context.Context, productKeys []int) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.CreateOrder")
	defer span.End()

	id := int(s.orderSeq.Add(1))
	span.SetAttributes(attribute.Int("order.id", id), attribute.Int("order.products", len(productKeys)))

	s.orderMu.Lock()
	defer s.orderMu.Unlock()

	if _, exists := s.orders.Find(id); exists {
		return order.Order{}, fmt.Errorf("create order %d: %w", id, order.ErrDuplicateID)
	}
	ps, err := s.resolve(productKeys)
	if err != nil {
		s.log.Debug(ctx, "order rejected", "id", id, "error", err)
		return order.Order{}, err
	}

	o := order.Order{ID: id, Products: ps}
	s.orders.Add(id, o)
	s.log.Debug(ctx, "order created", "id", id, "products", len(ps))
	return o, nil
}

// GetOrder looks up an order by id.
func (s *Service) GetOrder(ctx context.Context, id int) (order.Order, error) {
	_, span := otel.AddSpan(ctx, "catalog.GetOrder", attribute.Int("order.id", id))
	defer span.End()

	s.orderMu.RLock()
	defer s.orderMu.RUnlock()
	o, ok := s.orders.Find(id)
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return o, nil
}

// UpdateOrder replaces the products of an existing order. Nothing changes
// unless every key resolves.
func (s *Service) UpdateOrder(ctx context.Context, id int, productKeys []int) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.UpdateOrder", attribute.Int("order.id", id))
	defer span.End()

	s.orderMu.Lock()
	defer s.orderMu.Unlock()

	if _, ok := s.orders.Find(id); !ok {
		return order.Order{}, order.ErrNotFound
	}
	ps, err := s.resolve(productKeys)
	if err != nil {
		return order.Order{}, err
	}

	o := order.Order{ID: id, Products: ps}
	if !s.orders.Update(id, o) {
		return order.Order{}, order.ErrNotFound
	}
	s.log.Debug(ctx, "order updated", "id", id, "products", len(ps))
	return o, nil
}

// DeleteOrder removes an order by id.
func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	ctx, span := otel.AddSpan(ctx, "catalog.DeleteOrder", attribute.Int("order.id", id))
	defer span.End()

	s.orderMu.Lock()
	defer s.orderMu.Unlock()
	if !s.orders.Delete(id) {
		return order.ErrNotFound
	}
	s.log.Debug(ctx, "order deleted", "id", id)
	return nil
}

// ListOrders returns all orders in the order they were created.
func (s *Service) ListOrders(ctx context.Context) []order.Order {
	_, span := otel.AddSpan(ctx, "catalog.ListOrders")
	defer span.End()

	s.orderMu.RLock()
	defer s.orderMu.RUnlock()
	return s.orders.List()
}
